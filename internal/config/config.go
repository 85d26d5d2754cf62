// Package config provides configuration management for the cancelpoint
// demo host.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Checkpoint contains the cancellation-checkpoint settings
	Checkpoint CheckpointConfig `json:"checkpoint"`

	// General contains general application settings
	General GeneralConfig `json:"general"`
}

// CheckpointConfig controls how the abort checkpoint is gated
type CheckpointConfig struct {
	// GateIntervalMS is the single-shot timer duration in milliseconds;
	// the message queue is only probed after the timer expires
	GateIntervalMS int `json:"gate_interval_ms"`

	// ConfirmAbort asks the user to confirm before actually stopping;
	// on decline the computation resumes where it left off
	ConfirmAbort bool `json:"confirm_abort"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	// TrayEnabled shows computation status in the system tray
	TrayEnabled bool `json:"tray_enabled"`

	// LogProgress logs workload progress at every checkpoint
	LogProgress bool `json:"log_progress"`
}

// GateInterval returns the timer duration for the checkpoint gate.
func (c *Config) GateInterval() time.Duration {
	return time.Duration(c.Checkpoint.GateIntervalMS) * time.Millisecond
}

// DefaultConfig returns a new Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Checkpoint: CheckpointConfig{
			GateIntervalMS: 250,
			ConfirmAbort:   true,
		},
		General: GeneralConfig{
			TrayEnabled: false,
			LogProgress: true,
		},
	}
}

// Manager handles loading and saving configuration
type Manager struct {
	mu         sync.Mutex
	configPath string
	config     *Config
}

// NewManager creates a configuration manager over the per-OS config path
func NewManager() (*Manager, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewManagerAt(configPath), nil
}

// NewManagerAt creates a configuration manager over an explicit file path
func NewManagerAt(path string) *Manager {
	return &Manager{
		configPath: path,
		config:     DefaultConfig(),
	}
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "cancelpoint")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "cancelpoint")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "cancelpoint")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.configPath)
	if os.IsNotExist(err) {
		// No config file, use defaults
		return nil
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(data, m.config)
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	log.Printf("Config: Saving configuration to %s (%d bytes)", m.configPath, len(data))
	return os.WriteFile(m.configPath, data, 0644)
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// Set replaces the configuration
func (m *Manager) Set(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
}
