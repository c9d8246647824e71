package catalog

import (
	"sort"
	"strings"
)

// Page wraps query options with pagination fields. Offset and Limit are
// accepted on the wire but not applied to results; they are kept so
// existing callers keep a stable request shape.
type Page[T any] struct {
	Offset *int `json:"offset,omitempty"`
	Limit  *int `json:"limit,omitempty"`
	Opts   *T   `json:"opts,omitempty"`
}

// Ordering selects timestamp orderings. Each present flag triggers a full
// stable re-sort of the filtered results: true sorts ascending, false
// descending, comparing timestamp strings lexicographically. When both
// flags are present the last-updated sort runs after the date-added sort
// and therefore decides the final order.
type Ordering struct {
	DateAdded   *bool `json:"date_added,omitempty"`
	LastUpdated *bool `json:"last_updated,omitempty"`
}

// FolderFilter restricts folders by substring match. Absent fields impose
// no restriction.
type FolderFilter struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AssetFilter restricts assets. Size bounds are strict: min keeps assets
// strictly larger, max keeps assets strictly smaller.
type AssetFilter struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	MinSizeMB   *float64 `json:"min_size_mb,omitempty"`
	MaxSizeMB   *float64 `json:"max_size_mb,omitempty"`
}

// FolderQueryOptions bundles folder filtering and ordering.
type FolderQueryOptions struct {
	Filter   *FolderFilter `json:"filter,omitempty"`
	Ordering *Ordering     `json:"ordering,omitempty"`
}

// AssetQueryOptions bundles asset filtering and ordering.
type AssetQueryOptions struct {
	Filter   *AssetFilter `json:"filter,omitempty"`
	Ordering *Ordering    `json:"ordering,omitempty"`
}

// ApplyFolderQuery filters then orders a folder collection snapshot.
// Without options the input comes back unchanged.
func ApplyFolderQuery(folders []Folder, page *Page[FolderQueryOptions]) []Folder {
	if page == nil || page.Opts == nil {
		return folders
	}

	if filter := page.Opts.Filter; filter != nil {
		filtered := folders[:0]
		for _, folder := range folders {
			if filter.Name != nil && !strings.Contains(folder.Name, *filter.Name) {
				continue
			}
			if filter.Description != nil && !strings.Contains(folder.Description, *filter.Description) {
				continue
			}
			filtered = append(filtered, folder)
		}
		folders = filtered
	}

	applyOrdering(folders, page.Opts.Ordering,
		func(f Folder) string { return f.DateAdded },
		func(f Folder) string { return f.LastUpdated },
	)
	return folders
}

// ApplyAssetQuery filters then orders an asset collection snapshot.
func ApplyAssetQuery(assets []Asset, page *Page[AssetQueryOptions]) []Asset {
	if page == nil || page.Opts == nil {
		return assets
	}

	if filter := page.Opts.Filter; filter != nil {
		filtered := assets[:0]
		for _, asset := range assets {
			if filter.Name != nil && !strings.Contains(asset.Name, *filter.Name) {
				continue
			}
			if filter.Description != nil && !strings.Contains(asset.Description, *filter.Description) {
				continue
			}
			if filter.MinSizeMB != nil && !(asset.SizeMB > *filter.MinSizeMB) {
				continue
			}
			if filter.MaxSizeMB != nil && !(asset.SizeMB < *filter.MaxSizeMB) {
				continue
			}
			filtered = append(filtered, asset)
		}
		assets = filtered
	}

	applyOrdering(assets, page.Opts.Ordering,
		func(a Asset) string { return a.DateAdded },
		func(a Asset) string { return a.LastUpdated },
	)
	return assets
}

func applyOrdering[T any](items []T, ord *Ordering, dateAdded, lastUpdated func(T) string) {
	if ord == nil {
		return
	}
	if ord.DateAdded != nil {
		sortByKey(items, dateAdded, *ord.DateAdded)
	}
	if ord.LastUpdated != nil {
		sortByKey(items, lastUpdated, *ord.LastUpdated)
	}
}

func sortByKey[T any](items []T, key func(T) string, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return key(items[i]) < key(items[j])
		}
		return key(items[i]) > key(items[j])
	})
}
