package dataset

import (
	_ "embed"
)

//go:embed sample.json
var sampleData []byte

// Sample returns the entries of the small dataset bundled with the binary.
// It is used when no dataset path is configured.
func Sample() ([]Entry, LoadStats, error) {
	return Decode(sampleData, FormatJSON)
}
