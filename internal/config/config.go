package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned when a named key sheet is not configured.
var ErrUnknownKey = errors.New("unknown key sheet")

// FileConfig is the on-disk YAML configuration shape for maschine.
type FileConfig struct {
	// Default machine settings, in the same token form as the CLI flags.
	Rotors    *string `yaml:"rotors"`
	Rings     *string `yaml:"rings"`
	Reflector *string `yaml:"reflector"`
	Plugboard *string `yaml:"plugboard"`

	NoColor *bool   `yaml:"no_color"`
	Strict  *bool   `yaml:"strict"`
	Output  *string `yaml:"output"`

	// Keys holds named key sheets selectable with --key.
	Keys map[string]KeySheet `yaml:"keys,omitempty"`
}

// KeySheet is one named set of machine settings.
type KeySheet struct {
	Rotors    *string `yaml:"rotors"`
	Rings     *string `yaml:"rings"`
	Reflector *string `yaml:"reflector"`
	Plugboard *string `yaml:"plugboard"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a local config file in the given directory.
// It supports .maschine.yml/.yaml and maschine.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".maschine.yml", ".maschine.yaml", "maschine.yml", "maschine.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "maschine", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Save writes cfg as YAML to path.
func Save(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Key returns the named key sheet.
func (fc FileConfig) Key(name string) (KeySheet, error) {
	k, ok := fc.Keys[name]
	if !ok {
		return KeySheet{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// KeyNames lists the configured key sheets in sorted order.
func (fc FileConfig) KeyNames() []string {
	names := make([]string, 0, len(fc.Keys))
	for n := range fc.Keys {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sheet returns the top-level machine settings as a KeySheet.
func (fc FileConfig) Sheet() KeySheet {
	return KeySheet{Rotors: fc.Rotors, Rings: fc.Rings, Reflector: fc.Reflector, Plugboard: fc.Plugboard}
}
