// Package config contains the configuration of the odesk command.
package config

import (
	"os"
	"path/filepath"

	"github.com/odesk/odesk-go/internal/hujsonx"
	"github.com/odesk/odesk-go/internal/oauthclient"
	"github.com/pkg/errors"
)

// ErrMissingConsumerCredentials indicates that the config lacks the consumer key or secret.
var ErrMissingConsumerCredentials = errors.New("missing consumer_key or consumer_secret")

// Config contains the odesk command configuration. The file is human-readable
// JSON, so it may contain comments and trailing commas.
type Config struct {
	AccessToken    string `json:"access_token"`
	AccessSecret   string `json:"access_secret"`
	BaseURL        string `json:"base_url"`
	ConsumerKey    string `json:"consumer_key"`
	ConsumerSecret string `json:"consumer_secret"`
	MethodOverride bool   `json:"method_override"`
	UserAgent      string `json:"user_agent"`
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".odesk", "config.json"), nil
}

// ReadConfig reads the configuration from the path
func ReadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := ParseConfig(b)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return c, nil
}

// ParseConfig returns config from human-readable JSON bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config

	if err := hujsonx.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parsing json")
	}

	c.Default()

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating")
	}

	return &c, nil
}

// Default fills the empty settings with their defaults.
func (c *Config) Default() {
	if c.BaseURL == "" {
		c.BaseURL = oauthclient.DefaultBaseURL
	}
}

// Validate the config file
func (c *Config) Validate() error {
	if c.ConsumerKey == "" || c.ConsumerSecret == "" {
		return ErrMissingConsumerCredentials
	}
	return nil
}

// ClientConfig returns the [*oauthclient.Config] corresponding to this config.
func (c *Config) ClientConfig() *oauthclient.Config {
	return &oauthclient.Config{
		AccessToken:    c.AccessToken,
		AccessSecret:   c.AccessSecret,
		BaseURL:        c.BaseURL,
		ConsumerKey:    c.ConsumerKey,
		ConsumerSecret: c.ConsumerSecret,
		MethodOverride: c.MethodOverride,
		UserAgent:      c.UserAgent,
	}
}
