package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the default directory for secretenv configuration
	DefaultConfigDir = ".secretenv"

	// GlobalConfigFile is the filename for global configuration
	GlobalConfigFile = "config.yaml"

	// ConfigEnvVar overrides the config file location
	ConfigEnvVar = "SECRETENV_CONFIG"
)

// Store handles reading and writing configuration files
type Store struct {
	configDir  string
	configPath string
}

// NewStore creates a new configuration store rooted at ~/.secretenv
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	configDir := filepath.Join(home, DefaultConfigDir)
	return &Store{configDir: configDir}, nil
}

// NewStoreWithPath creates a store with a custom config directory
func NewStoreWithPath(configDir string) *Store {
	return &Store{configDir: configDir}
}

// NewStoreWithFile creates a store that reads and writes a single config file
func NewStoreWithFile(path string) *Store {
	return &Store{configDir: filepath.Dir(path), configPath: path}
}

// OpenStore picks the config location: explicit path, then $SECRETENV_CONFIG,
// then ~/.secretenv/config.yaml
func OpenStore(path string) (*Store, error) {
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}

	if path == "" {
		return NewStore()
	}

	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	return NewStoreWithFile(resolved), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func (s *Store) EnsureConfigDir() error {
	if err := os.MkdirAll(s.configDir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// GetGlobalConfigPath returns the file path for global config
func (s *Store) GetGlobalConfigPath() string {
	if s.configPath != "" {
		return s.configPath
	}
	return filepath.Join(s.configDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration
func (s *Store) LoadGlobalConfig() (*GlobalConfig, error) {
	path := s.GetGlobalConfigPath()

	// #nosec G304 -- path is constructed from config directory or given by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultGlobalConfig(), nil
		}
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var config GlobalConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse global config: %w", err)
	}

	// Merge with defaults
	defaultConfig := DefaultGlobalConfig()
	defaultConfig.Merge(&config)

	return defaultConfig, nil
}

// SaveGlobalConfig saves the global configuration to disk
func (s *Store) SaveGlobalConfig(config *GlobalConfig) error {
	if err := s.EnsureConfigDir(); err != nil {
		return err
	}

	path := s.GetGlobalConfigPath()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal global config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write global config: %w", err)
	}

	return nil
}

// GlobalConfigExists checks if a config file is present
func (s *Store) GlobalConfigExists() bool {
	_, err := os.Stat(s.GetGlobalConfigPath())
	return err == nil
}
