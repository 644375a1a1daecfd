package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestSaveAndLoadTOML(t *testing.T) {
	type sample struct {
		Name  string `toml:"name"`
		Limit int    `toml:"limit"`
	}
	path := filepath.Join(t.TempDir(), "out.toml")

	if err := SaveTOMLFile(sample{Name: "ㄱㄴ", Limit: 4}, path); err != nil {
		t.Fatalf("SaveTOMLFile: %v", err)
	}

	var got sample
	if _, err := toml.DecodeFile(path, &got); err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if got.Name != "ㄱㄴ" || got.Limit != 4 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the config file, found %d entries", len(entries))
	}
}

func TestResolveDataset(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	if err := os.WriteFile(file, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	pr := &PathResolver{
		executableDir: filepath.Join(dir, "bin"),
		homeDir:       dir,
		configDir:     filepath.Join(dir, "config"),
		workDir:       dir,
	}

	testCases := []struct {
		path        string
		want        string
		wantErr     bool
		description string
	}{
		{file, file, false, "absolute path"},
		{"data.json", file, false, "relative to working dir"},
		{"missing.json", "", true, "missing file"},
		{"", "", true, "empty path"},
		{".", "", true, "directory is not a dataset"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := pr.ResolveDataset(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestResolveDatasetFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := EnsureDir(filepath.Join(configDir, "data")); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(configDir, "data", "words.yaml")
	if err := os.WriteFile(file, []byte("- key: k\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pr := &PathResolver{executableDir: dir, homeDir: dir, configDir: configDir, workDir: dir}
	got, err := pr.ResolveDataset("words.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != file {
		t.Errorf("got %s, want %s", got, file)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable {
		t.Errorf("expected created writable dir, got %+v", result)
	}
	if !FileExists(dir) {
		t.Error("directory should exist")
	}
	if IsRegularFile(dir) {
		t.Error("directory is not a regular file")
	}
}
