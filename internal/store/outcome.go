package store

// Outcome tags whether an upsert created a new record or updated an
// existing one, instead of leaving callers to infer it from id lookups.
type Outcome int

const (
	// Created means the upsert inserted a new record.
	Created Outcome = iota
	// Updated means the upsert modified an existing record.
	Updated
)

// String returns the lowercase tag name.
func (o Outcome) String() string {
	if o == Created {
		return "created"
	}
	return "updated"
}
