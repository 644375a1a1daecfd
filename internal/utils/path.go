package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppName names the per-user config and data directories.
const AppName = "choseong"

// PathResolver finds config and dataset files relative to the user and the executable
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
	workDir       string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
		workDir:       workDir,
	}

	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s, workDir=%s",
		pr.executableDir, pr.configDir, pr.workDir)
	return pr, nil
}

// configDirFor returns the appropriate config directory for the platform
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", AppName)
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppName)
		}
		return filepath.Join(homeDir, ".config", AppName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppName)
	default:
		return filepath.Join(homeDir, "."+AppName)
	}
}

// DatasetCandidates lists where a dataset path is looked for, in order:
// 1. The path itself when absolute
// 2. Relative to the working directory
// 3. Relative to the executable directory
// 4. Inside <configDir>/data
func (pr *PathResolver) DatasetCandidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	return []string{
		filepath.Join(pr.workDir, path),
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, "data", path),
	}
}

// ResolveDataset returns the first candidate for path that is a regular file
func (pr *PathResolver) ResolveDataset(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty dataset path")
	}
	for _, candidate := range pr.DatasetCandidates(path) {
		if IsRegularFile(candidate) {
			log.Debugf("Found dataset file: %s", candidate)
			return candidate, nil
		}
		log.Debugf("Dataset candidate not found: %s", candidate)
	}
	return "", fmt.Errorf("dataset %s not found: %w", path, os.ErrNotExist)
}

// GetConfigPath returns the full path for a config file,
// falling back to other writable locations when the config dir is read-only
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if pr.ensureConfigDir(pr.configDir) {
		return filepath.Join(pr.configDir, filename), nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, "."+AppName),
		filepath.Join(os.TempDir(), AppName),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir creates the directory if it doesn't exist and tests writability
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Debugf("Cannot create config directory %s: %v", dir, err)
		return false
	}
	return testWriteAccess(dir)
}

// GetConfigDir returns the config directory
func (pr *PathResolver) GetConfigDir() string {
	return pr.configDir
}
