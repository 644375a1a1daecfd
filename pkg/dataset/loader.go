package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// LoadStats describes what a load produced.
type LoadStats struct {
	Format  Format
	Records int
	Entries int
	Skipped int
}

// Load reads a dataset file and returns its entries.
// When format is FormatUnknown it is detected from the file extension.
// Records without a key are skipped and only counted in the stats.
func Load(path string, format Format) ([]Entry, LoadStats, error) {
	stats := LoadStats{Format: format}

	if format == FormatUnknown {
		detected, err := DetectFileFormat(path)
		if err != nil {
			return nil, stats, err
		}
		format = detected
		stats.Format = detected
	}

	if err := ValidateFileFormat(path, format); err != nil {
		return nil, stats, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	entries, stats, err := Decode(data, format)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to decode dataset %s: %w", path, err)
	}

	log.Debugf("Loaded dataset %s: format=%s records=%d entries=%d skipped=%d",
		path, stats.Format, stats.Records, stats.Entries, stats.Skipped)
	return entries, stats, nil
}

// Decode parses raw dataset bytes of the given format into entries.
func Decode(data []byte, format Format) ([]Entry, LoadStats, error) {
	stats := LoadStats{Format: format}

	recs, err := decodeRecords(data, format)
	if err != nil {
		return nil, stats, err
	}
	if len(recs) == 0 {
		return nil, stats, ErrEmptyDataset
	}

	entries, skipped := FromRecords(recs)
	stats.Records = len(recs)
	stats.Entries = len(entries)
	stats.Skipped = skipped
	return entries, stats, nil
}

func decodeRecords(data []byte, format Format) ([]map[string]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatScript:
		return decodeScript(data)
	case FormatYAML:
		var items []any
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return toRecords(items), nil
	case FormatTOML:
		return decodeTOML(data)
	case FormatMsgpack:
		var items []any
		if err := msgpack.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("msgpack: %w", err)
		}
		return toRecords(items), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

func decodeJSON(data []byte) ([]map[string]any, error) {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	return toRecords(items), nil
}

// decodeScript extracts the array literal from a `window.X = [...];` data script.
// Only JSON-compatible literals are accepted.
func decodeScript(data []byte) ([]map[string]any, error) {
	start := bytes.IndexByte(data, '[')
	end := bytes.LastIndexByte(data, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("script: no array literal found")
	}
	return decodeJSON(data[start : end+1])
}

// decodeTOML reads records from an [[entry]] (or [[entries]]) array of tables.
func decodeTOML(data []byte) ([]map[string]any, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("toml: %w", err)
	}

	for _, name := range []string{"entry", "entries"} {
		switch v := doc[name].(type) {
		case []map[string]any:
			return v, nil
		case []any:
			return toRecords(v), nil
		}
	}
	return nil, nil
}

// toRecords keeps the position of non-map items as nil records so they are counted as skipped.
func toRecords(items []any) []map[string]any {
	recs := make([]map[string]any, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case map[string]any:
			recs[i] = v
		case map[any]any:
			recs[i] = stringKeys(v)
		}
	}
	return recs
}

func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if s, ok := k.(string); ok {
			out[s] = v
		}
	}
	return out
}
