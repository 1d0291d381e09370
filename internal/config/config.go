package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/fir/pkg/fir"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileName is the project config file looked up in the working directory.
const FileName = ".fir.yaml"

// Environment variables that override config file values.
const (
	EnvMode       = "FIR_MODE"
	EnvFormat     = "FIR_FORMAT"
	EnvIgnoreFile = "FIR_IGNORE_FILE"
	EnvRoot       = "FIR_ROOT"
)

type ProjectConfig struct {
	Root       string   `yaml:"root,omitempty"`
	Mode       string   `yaml:"mode,omitempty"`
	Format     string   `yaml:"format,omitempty"`
	IgnoreFile string   `yaml:"ignore_file,omitempty"`
	Ignore     []string `yaml:"ignore,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`

	// ExtensionMap restricts scanned files by the target's extension,
	// e.g. "js" -> [js, jsx, mjs]. It applies when Extensions is empty.
	ExtensionMap map[string][]string `yaml:"extension_map,omitempty"`
}

// Load reads FileName from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads a config file from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", fir.ErrInvalidConfig, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// LoadDotEnv loads dir/.env into the process environment.
// Variables already set are left alone and a missing file is not an error.
func LoadDotEnv(dir string) error {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("failed to load %s: %w", envPath, err)
	}
	return nil
}

// ApplyEnv overrides fields with the FIR_* environment variables that are set.
func (c *ProjectConfig) ApplyEnv() {
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvIgnoreFile); v != "" {
		c.IgnoreFile = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		c.Root = v
	}
}

// Validate checks values that can be checked without the CLI.
func (c *ProjectConfig) Validate() error {
	if _, err := fir.ParseMatchMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// ExtensionsFor returns the extension allow-list for a target extension.
// An explicit Extensions list wins over ExtensionMap.
func (c *ProjectConfig) ExtensionsFor(targetExt string) []string {
	if len(c.Extensions) > 0 {
		return c.Extensions
	}
	key := strings.TrimPrefix(strings.ToLower(targetExt), ".")
	if key == "" {
		return nil
	}
	return c.ExtensionMap[key]
}
