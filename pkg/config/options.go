package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptRawDir sets the directory of downloaded files.
func OptRawDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Raw Dir", s) {
			c.RawDir = s
		}
	}
}

// OptDataDir sets the directory of published tables.
func OptDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Data Dir", s) {
			c.DataDir = s
		}
	}
}

// OptDownloadTimeout sets the timeout of one file download in seconds.
func OptDownloadTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("Download Timeout", i) {
			c.Download.Timeout = i
		}
	}
}

// OptDownloadSources limits download to the named sources.
// Empty slice means download all sources from sources.yaml.
// Runtime-only field - not in ToOptions().
func OptDownloadSources(ss []string) Option {
	var names []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			names = append(names, v)
		}
	}
	return func(c *Config) {
		if len(names) > 0 {
			c.Download.Sources = names
		}
	}
}

// OptProcessTaxID sets the NCBI taxonomy ID of the organism to keep.
func OptProcessTaxID(i int) Option {
	return func(c *Config) {
		if isValidInt("Process TaxID", i) {
			c.Process.TaxID = i
		}
	}
}

// OptProcessWithSynonyms sets whether synonyms take part in the
// chromosome-symbol map.
// Uses pointer to distinguish between unset (nil) and false.
func OptProcessWithSynonyms(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Process.WithSynonyms = b
		}
	}
}

// OptProcessWithXrefs sets whether genes-xrefs.tsv is published.
// Uses pointer to distinguish between unset (nil) and false.
func OptProcessWithXrefs(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Process.WithXrefs = b
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
