package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Format represents the supported dataset file formats
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON           // JSON array of records
	FormatScript         // window.CHOSEONG_DATA = [...]; script file
	FormatYAML           // YAML sequence of records
	FormatTOML           // TOML [[entry]] tables
	FormatMsgpack        // MessagePack array of maps
)

var (
	// ErrUnknownFormat is returned when a file's format cannot be determined.
	ErrUnknownFormat = errors.New("unknown dataset format")
	// ErrEmptyDataset is returned when a file holds no records at all.
	ErrEmptyDataset = errors.New("dataset has no records")
)

// FormatInfo contains metadata about a dataset file format
type FormatInfo struct {
	Format      Format
	Name        string
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[Format]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Name:        "json",
		Description: "JSON record array",
		Extensions:  []string{".json"},
		MinSize:     2, // []
	},
	FormatScript: {
		Format:      FormatScript,
		Name:        "js",
		Description: "JavaScript data assignment",
		Extensions:  []string{".js"},
		MinSize:     2,
	},
	FormatYAML: {
		Format:      FormatYAML,
		Name:        "yaml",
		Description: "YAML record sequence",
		Extensions:  []string{".yaml", ".yml"},
		MinSize:     1,
	},
	FormatTOML: {
		Format:      FormatTOML,
		Name:        "toml",
		Description: "TOML entry tables",
		Extensions:  []string{".toml"},
		MinSize:     1,
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Name:        "msgpack",
		Description: "MessagePack record array",
		Extensions:  []string{".msgpack", ".mpk"},
		MinSize:     1, // fixarray header
	},
}

// String returns the short name of the format.
func (f Format) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Name
	}
	return "unknown"
}

// ParseFormat maps a short name such as "json" or "yml" to a Format.
// An empty name yields FormatUnknown without an error so callers can fall back to detection.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatUnknown, nil
	}
	for f, info := range supportedFormats {
		if info.Name == name {
			return f, nil
		}
		for _, ext := range info.Extensions {
			if "."+name == ext {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ValidateFileFormat checks if a file is plausible for the expected format
func ValidateFileFormat(filename string, expected Format) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, exists := supportedFormats[expected]
	if !exists {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, expected)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	log.Debugf("Dataset file %s validated as %s", filename, formatInfo.Description)
	return nil
}

// DetectFileFormat picks the format of a file from its extension
func DetectFileFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for f, info := range supportedFormats {
		for _, candidate := range info.Extensions {
			if ext == candidate {
				return f, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: unable to detect format for file %s", ErrUnknownFormat, filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
