// Package config provides configuration management for genes.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - General: raw_dir, data_dir
//   - Download: timeout
//   - Process: tax_id, with_synonyms, with_xrefs
//   - Database: host, port, user, password, database, ssl_mode
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Download.Sources (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GENES_ prefix with underscores for nesting:
//
//	GENES_RAW_DIR=download
//	GENES_DATA_DIR=data
//	GENES_PROCESS_WITH_SYNONYMS=false
//	GENES_DATABASE_HOST=localhost
//	GENES_LOG_LEVEL=info
package config

// Config represents the complete genes configuration.
type Config struct {
	// RawDir keeps downloaded files and their version manifest.
	// Relative paths are resolved against the working directory.
	RawDir string `mapstructure:"raw_dir" yaml:"raw_dir"`

	// DataDir receives published tables.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Download contains settings of the download command.
	Download DownloadConfig `mapstructure:"download" yaml:"download"`

	// Process contains settings of the process command.
	Process ProcessConfig `mapstructure:"process" yaml:"process"`

	// Database contains PostgreSQL connection settings used by the
	// load command.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DownloadConfig contains settings of the download command.
type DownloadConfig struct {
	// Timeout of a single file download in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`

	// Sources limits download to sources with these names.
	// Empty slice means all sources from sources.yaml.
	// Runtime-only field.
	Sources []string `mapstructure:"sources" yaml:"sources"`
}

// ProcessConfig contains settings of the process command.
type ProcessConfig struct {
	// TaxID is the NCBI taxonomy ID of the organism to keep.
	TaxID int `mapstructure:"tax_id" yaml:"tax_id"`

	// WithSynonyms adds unambiguous synonyms to the chromosome-symbol map.
	WithSynonyms *bool `mapstructure:"with_synonyms" yaml:"with_synonyms"`

	// WithXrefs publishes genes-xrefs.tsv.
	WithXrefs *bool `mapstructure:"with_xrefs" yaml:"with_xrefs"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		RawDir:  "download",
		DataDir: "data",
		Download: DownloadConfig{
			Timeout: 600,
		},
		Process: ProcessConfig{
			TaxID:        9606,
			WithSynonyms: boolPtr(true),
			WithXrefs:    boolPtr(true),
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "genes",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// WithSynonyms reports the effective synonym setting.
func (c *Config) WithSynonyms() bool {
	return c.Process.WithSynonyms == nil || *c.Process.WithSynonyms
}

// WithXrefs reports the effective xrefs setting.
func (c *Config) WithXrefs() bool {
	return c.Process.WithXrefs == nil || *c.Process.WithXrefs
}

func boolPtr(b bool) *bool {
	return &b
}
