/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

// Package config loads forgectl settings from
// ~/.config/forgectl/config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	CommandName = "forgectl"

	DefaultForgeService = "fabric8-forge"
	DefaultGitProvider  = "gogs"
	DefaultLogLevel     = "info"
)

type Config struct {
	// ForgeURL overrides the lookup of ForgeService in the cluster.
	ForgeURL     string `yaml:"forgeURL,omitempty"`
	ForgeService string `yaml:"forgeService,omitempty"`
	// Namespace is the user's namespace; empty means the kubeconfig's.
	Namespace  string `yaml:"namespace,omitempty"`
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
	// Strict makes wizard state checks fail the run instead of only
	// logging.
	Strict  bool          `yaml:"strict"`
	BaseDir string        `yaml:"basedir,omitempty"`
	Jenkins JenkinsConfig `yaml:"jenkins"`
	Git     GitConfig     `yaml:"git"`
	Log     LogConfig     `yaml:"log"`
}

type JenkinsConfig struct {
	URL          string        `yaml:"url,omitempty"`
	Namespace    string        `yaml:"namespace,omitempty"`
	PollInterval time.Duration `yaml:"pollInterval,omitempty"`
	StartTimeout time.Duration `yaml:"startTimeout,omitempty"`
	BuildTimeout time.Duration `yaml:"buildTimeout,omitempty"`
}

type GitConfig struct {
	Provider string `yaml:"provider,omitempty"`
	User     string `yaml:"user,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Password string `yaml:"password,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	// File, when set, receives the log instead of stderr.
	File string `yaml:"file,omitempty"`
}

func Default() *Config {
	return &Config{
		ForgeService: DefaultForgeService,
		Strict:       true,
		BaseDir:      ".",
		Jenkins: JenkinsConfig{
			PollInterval: 5 * time.Second,
			StartTimeout: 10 * time.Minute,
			BuildTimeout: 60 * time.Minute,
		},
		Git: GitConfig{
			Provider: DefaultGitProvider,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads path over the defaults and then applies environment
// overrides. A missing file is not an error. An empty path means
// DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("%w %v: %w", ErrFailedToReadConfig, path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w %v: %w", ErrFailedToParseConfig, path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment variables the fabric8
// system tests have always honoured.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("FORGE_URL", &c.ForgeURL)
	str("KUBERNETES_NAMESPACE", &c.Namespace)
	str("KUBECONFIG", &c.Kubeconfig)
	str("JENKINS_URL", &c.Jenkins.URL)
	str("JENKINS_NAMESPACE", &c.Jenkins.Namespace)
	str("GIT_PROVIDER", &c.Git.Provider)
	str("GIT_USER", &c.Git.User)
	str("GIT_EMAIL", &c.Git.Email)
	str("FORGE_BASEDIR", &c.BaseDir)
	str("FORGE_LOG_LEVEL", &c.Log.Level)
	// passwords may legitimately have surrounding spaces
	if v, ok := lookup("GIT_PASSWORD"); ok && v != "" {
		c.Git.Password = v
	}
	if v, ok := lookup("FORGE_STRICT"); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: FORGE_STRICT=%q: %w", ErrInvalidConfig, v, err)
		}
		c.Strict = strict
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Jenkins.PollInterval <= 0 {
		return fmt.Errorf("%w: jenkins.pollInterval must be positive", ErrInvalidConfig)
	}
	if c.Jenkins.StartTimeout <= 0 || c.Jenkins.BuildTimeout <= 0 {
		return fmt.Errorf("%w: jenkins timeouts must be positive", ErrInvalidConfig)
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	return nil
}

// JenkinsNamespace is the namespace jenkins runs in. It defaults to the
// user's namespace.
func (c *Config) JenkinsNamespace() string {
	if c.Jenkins.Namespace != "" {
		return c.Jenkins.Namespace
	}
	return c.Namespace
}

// Save writes c to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
