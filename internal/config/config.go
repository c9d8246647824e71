package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the VeeVault API.
type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
	Identity IdentityConfig
	Ledger   LedgerConfig
	Metrics  MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SnapshotConfig selects and parameterizes the snapshot blob store.
// Backend is one of "file", "postgres", "minio" or "badger".
type SnapshotConfig struct {
	Backend  string
	Dir      string
	Postgres PostgresConfig
	MinIO    MinIOConfig
	Badger   BadgerConfig
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// MinIOConfig carries MinIO connection and bucket information.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	Region          string
}

// BadgerConfig locates the badger database directory.
type BadgerConfig struct {
	Dir string
}

// IdentityConfig groups bearer-token validation settings.
type IdentityConfig struct {
	TokenSecret string
}

// LedgerConfig points at the external balance ledger.
type LedgerConfig struct {
	BaseURL        string
	ServiceAccount string
	Timeout        time.Duration
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("VEEVAULT_API_HOST", "0.0.0.0"),
			Port:         getInt("VEEVAULT_API_PORT", 8080),
			ReadTimeout:  getDuration("VEEVAULT_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("VEEVAULT_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("VEEVAULT_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Snapshot: SnapshotConfig{
			Backend: strings.ToLower(getString("VEEVAULT_SNAPSHOT_BACKEND", "file")),
			Dir:     getString("VEEVAULT_SNAPSHOT_DIR", "./data/snapshots"),
			Postgres: PostgresConfig{
				Host:     getString("POSTGRES_HOST", "localhost"),
				Port:     getInt("POSTGRES_PORT", 5432),
				User:     getString("POSTGRES_USER", "veevault_app"),
				Password: getString("POSTGRES_PASSWORD", "change-me"),
				Database: getString("POSTGRES_DB", "veevault"),
				SSLMode:  strings.ToLower(getString("POSTGRES_SSL_MODE", "disable")),
			},
			MinIO: MinIOConfig{
				Endpoint:        getString("MINIO_ENDPOINT", "localhost:9000"),
				AccessKeyID:     getString("MINIO_ROOT_USER", "veevault"),
				SecretAccessKey: getString("MINIO_ROOT_PASSWORD", "change-me-strong-password"),
				Bucket:          getString("MINIO_BUCKET", "veevault-snapshots"),
				UseSSL:          getBool("MINIO_USE_SSL", false),
				Region:          getString("MINIO_REGION", ""),
			},
			Badger: BadgerConfig{
				Dir: getString("VEEVAULT_BADGER_DIR", "./data/badger"),
			},
		},
		Identity: IdentityConfig{
			TokenSecret: getString("VEEVAULT_JWT_SECRET", "change-me-to-a-32-byte-secret"),
		},
		Ledger: LedgerConfig{
			BaseURL:        getString("VEEVAULT_LEDGER_URL", "http://localhost:9090"),
			ServiceAccount: getString("VEEVAULT_LEDGER_SERVICE_ACCOUNT", "veevault-service"),
			Timeout:        getDuration("VEEVAULT_LEDGER_TIMEOUT", 10*time.Second),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("VEEVAULT_METRICS_PATH", "/metrics"),
		},
	}

	switch cfg.Snapshot.Backend {
	case "file", "postgres", "minio", "badger":
	default:
		return Config{}, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
