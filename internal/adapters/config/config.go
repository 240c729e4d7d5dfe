// Package config loads the optional kmpinstall configuration file.
package config

import (
	"os"

	"go.trai.ch/kmpinstall/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable pointing at an alternate
// configuration file.
const EnvPath = "KMPINSTALL_CONFIG"

// defaultPath is consulted when EnvPath is unset. Its absence is fine.
const defaultPath = "/etc/kmpinstall.yaml"

// Config holds the tunable external collaborator settings. Every field has
// a working default; the file only exists to override them.
type Config struct {
	// Manager is the package manager binary.
	Manager string `yaml:"manager"`

	// RPM is the package database query binary.
	RPM string `yaml:"rpm"`

	// KMPInfix is the substring marking kernel module packages by naming
	// convention.
	KMPInfix string `yaml:"kmpInfix"`

	// LocalRepo is the repository label the manager reports for archives
	// supplied directly on the command line.
	LocalRepo string `yaml:"localRepo"`
}

// Default returns the stock configuration for zypper-managed systems.
func Default() *Config {
	return &Config{
		Manager:   "zypper",
		RPM:       "rpm",
		KMPInfix:  domain.DefaultKMPInfix,
		LocalRepo: "Plain RPM files cache",
	}
}

// Load reads the configuration file. A missing file at the default path
// falls back to defaults; a file named via EnvPath must exist, and any file
// that exists must parse.
func Load() (*Config, error) {
	return load(os.Getenv(EnvPath))
}

func load(explicit string) (*Config, error) {
	path := explicit
	if path == "" {
		path = defaultPath
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, zerr.With(domain.ErrConfigReadFailed, "path", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "path", path), "cause", err.Error())
	}
	fillDefaults(cfg)
	return cfg, nil
}

// fillDefaults restores any field the file left empty.
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Manager == "" {
		cfg.Manager = def.Manager
	}
	if cfg.RPM == "" {
		cfg.RPM = def.RPM
	}
	if cfg.KMPInfix == "" {
		cfg.KMPInfix = def.KMPInfix
	}
	if cfg.LocalRepo == "" {
		cfg.LocalRepo = def.LocalRepo
	}
}
