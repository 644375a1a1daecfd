package config

import (
	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// decodeFile strictly decodes the file over cfg.
func decodeFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", path, err)
		return err
	}
	return nil
}

// sections is a config file decoded without a schema, keyed by table name.
type sections map[string]any

func readSections(path string) (sections, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	return sections(raw), nil
}

// table returns the named table, or false when it is missing or not a table.
func (s sections) table(name string) (map[string]any, bool) {
	t, ok := s[name].(map[string]any)
	return t, ok
}

// setField stores data[key] in dst when it holds a T. Mistyped values leave dst alone.
func setField[T any](data map[string]any, key string, dst *T) bool {
	v, ok := data[key].(T)
	if ok {
		*dst = v
	}
	return ok
}

// setInt stores a TOML integer in dst.
func setInt(data map[string]any, key string, dst *int) bool {
	var v int64
	if !setField(data, key, &v) {
		return false
	}
	*dst = int(v)
	return true
}
