package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds storefront server configuration.
type Config struct {
	ListenAddr     string
	MetricsAddr    string
	CatalogPath    string
	CatalogURL     string
	StatePath      string
	RequestTimeout time.Duration
	UserAgent      string
	Verbose        bool
}

// DefaultConfig returns conservative defaults for a local storefront.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:     ":8080",
		MetricsAddr:    "",
		CatalogPath:    "catalog.json",
		CatalogURL:     "",
		StatePath:      "state/storefront.json",
		RequestTimeout: 10 * time.Second,
		UserAgent:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/117.0.0.0 Safari/537.36",
		Verbose:        false,
	}
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if c.CatalogPath == "" && c.CatalogURL == "" {
		return fmt.Errorf("either a catalog path or a catalog URL is required")
	}
	if c.CatalogURL != "" {
		parsedURL, err := url.Parse(c.CatalogURL)
		if err != nil {
			return fmt.Errorf("invalid catalog URL: %w", err)
		}
		if parsedURL.Host == "" {
			return fmt.Errorf("catalog URL must include a host")
		}
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.CatalogURL != "" && c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty when loading a remote catalog")
	}
	return nil
}
