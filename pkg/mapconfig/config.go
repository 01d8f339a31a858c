// Package mapconfig handles loading and validation of versemap's
// configuration: which mapping tables to load, which pair of
// versifications they bridge, and the loader's connection settings.
package mapconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceKind selects where a mapping table's entries are read from.
type SourceKind string

const (
	SourceFlatFile SourceKind = "flatfile"
	SourceSQLite   SourceKind = "sqlite"
	SourceFTP      SourceKind = "ftp"
)

// Config holds versemap's runtime configuration.
type Config struct {
	// Pivot is the fixed reference versification's name, conventionally
	// "KJV".
	Pivot string `yaml:"pivot"`

	// Tables lists the mapping tables to load, one per left versification.
	Tables []TableSource `yaml:"tables"`

	FTP FTPOptions `yaml:"ftp"`
}

// TableSource describes one loadable mapping table.
type TableSource struct {
	Left   string     `yaml:"left"`   // left versification name, e.g. "Vulg"
	Kind   SourceKind `yaml:"kind"`
	Path   string     `yaml:"path"`   // flat-file or sqlite path
	Table  string     `yaml:"table"`  // sqlite table name, if Kind == sqlite
}

// FTPOptions configures the optional FTP-based table fetcher.
type FTPOptions struct {
	Host       string `yaml:"host"`
	RemotePath string `yaml:"remotePath"`
	TimeoutSec int    `yaml:"timeoutSec"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Pivot: "KJV",
		Tables: []TableSource{
			{Left: "Vulg", Kind: SourceFlatFile, Path: filepath.Join(home, ".versemap", "vulg.map")},
		},
		FTP: FTPOptions{TimeoutSec: 60},
	}
}

// Load reads configuration from a YAML file, falling back to defaults if
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Tables {
		cfg.Tables[i].Path = expandPath(cfg.Tables[i].Path)
	}
	return cfg, nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
