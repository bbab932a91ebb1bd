// Package sources provides configuration and validation for raw data
// sources of the genes pipeline.
//
// This package defines the schema for sources.yaml, which lists the
// upstream reference files (NCBI gene_info, gene_history) the downloader
// fetches. It is pure: it does not touch the file system or network.
package sources

type Sources interface {
	Load() (*SourcesConfig, error)
}

// Well-known source names. The processor looks raw files up by these
// names, so they must be present in sources.yaml.
const (
	GeneInfo    = "gene_info"
	GeneHistory = "gene_history"
)

// SourcesConfig represents the complete sources.yaml configuration file.
type SourcesConfig struct {
	// RawSources is the list of files to download.
	RawSources []RawSourceConfig `yaml:"raw_sources"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Source     string // Name of the source
	Field      string // Field name that has the issue
	Message    string // Description of the issue
	Suggestion string // How to fix it
}

// RawSourceConfig describes one upstream file.
type RawSourceConfig struct {
	// Name identifies the source in the version manifest.
	Name string `yaml:"name"`

	// URL is the http(s) location of the file.
	// Example:
	//   https://ftp.ncbi.nih.gov/gene/DATA/gene_history.gz
	URL string `yaml:"url"`

	// File is the stable file name inside the raw directory.
	// Falls back to the last element of the URL path.
	File string `yaml:"file,omitempty"`

	// Description is a free-form note shown in logs.
	Description string `yaml:"description,omitempty"`
}

// ByName returns the source with the given name.
func (c *SourcesConfig) ByName(name string) (RawSourceConfig, bool) {
	for _, v := range c.RawSources {
		if v.Name == name {
			return v, true
		}
	}
	return RawSourceConfig{}, false
}

// Filter returns sources with the given names, in sources.yaml order.
// Empty names means all sources. The second value lists requested names
// that were not found.
func (c *SourcesConfig) Filter(names []string) ([]RawSourceConfig, []string) {
	if len(names) == 0 {
		return c.RawSources, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, v := range names {
		wanted[v] = false
	}

	var res []RawSourceConfig
	for _, v := range c.RawSources {
		if _, ok := wanted[v.Name]; ok {
			wanted[v.Name] = true
			res = append(res, v)
		}
	}

	var missing []string
	for _, v := range names {
		if !wanted[v] {
			missing = append(missing, v)
		}
	}
	return res, missing
}
