// Package genes curates Entrez Gene reference data into versioned
// lookup tables.
package genes

var (
	// Version of the app. Set by build flags.
	Version = "v0.1.0"

	// Build timestamp. Set by build flags.
	Build = "n/a"
)
