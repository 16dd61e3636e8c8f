// Package config provides configuration management for the GitLab mirror application.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/gitlab-mirror/pkg/hooks"
	"gopkg.in/yaml.v3"
)

const redactedValue = "***REDACTED***"

var (
	// ErrNoToken is returned when no GitLab token is configured.
	ErrNoToken = errors.New("no gitlab token configured")
	// ErrNoGroup is returned when no group identifier is configured.
	ErrNoGroup = errors.New("no group identifier configured")
)

// Config holds the application configuration.
type Config struct {
	GitlabURI       string      `env:"GITLAB_URI"       env-default:"https://gitlab.com" yaml:"gitlabURI"`
	GitlabToken     string      `env:"GITLAB_TOKEN"     env-default:""                   yaml:"gitlabToken"`
	GroupIDs        []string    `env:"GITLAB_GROUP_IDS" env-separator:","                yaml:"groupIDs"`
	DestDir         string      `env:"DESTDIR"          env-default:"."                  yaml:"destdir"`
	UseSSH          bool        `env:"USE_SSH"          env-default:"false"              yaml:"useSSH"`
	Parallelism     int         `env:"PARALLELISM"      env-default:"1"                  yaml:"parallelism"`
	IncludeArchived bool        `env:"INCLUDE_ARCHIVED" env-default:"false"              yaml:"includeArchived"`
	Hooks           hooks.Hooks `yaml:"hooks"`
	NoLogTime       bool        `env:"NOLOGTIME"        env-default:"false"              yaml:"noLogTime"`
}

// NewConfigFromFile returns a new Config struct from the given file.
func NewConfigFromFile(filePath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file %s: %w", filePath, err)
	}
	return &cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is complete enough to run.
func (c *Config) Validate() error {
	if len(c.GitlabToken) == 0 {
		return ErrNoToken
	}
	if len(c.GroupIDs) == 0 {
		return ErrNoGroup
	}
	return nil
}

func (c *Config) String() string {
	cyaml, err := yaml.Marshal(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Redacted returns a YAML representation of the config with sensitive fields redacted.
func (c *Config) Redacted() string {
	redacted := *c
	if redacted.GitlabToken != "" {
		redacted.GitlabToken = redactedValue
	}
	cyaml, err := yaml.Marshal(redacted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Usage prints the usage of the config.
func (c *Config) Usage() {
	f := cleanenv.Usage(c, nil)
	f()
}
