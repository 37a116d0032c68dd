package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeXCatalog()
	c.normalizeCatalog()
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	if c.Paths.APIToken == "" {
		if value, ok := os.LookupEnv("CARMATCH_API_TOKEN"); ok {
			c.Paths.APIToken = value
		}
	}
	return nil
}

func (c *Config) normalizeXCatalog() {
	c.XCatalog.BaseURL = strings.TrimSpace(c.XCatalog.BaseURL)
	if c.XCatalog.BaseURL == "" {
		c.XCatalog.BaseURL = defaultXCatalogBaseURL
	}
	if value, ok := os.LookupEnv("CARMATCH_XCATALOG_URL"); ok && strings.TrimSpace(value) != "" {
		c.XCatalog.BaseURL = strings.TrimSpace(value)
	}
	c.XCatalog.Country = strings.ToLower(strings.TrimSpace(c.XCatalog.Country))
	if c.XCatalog.Country == "" {
		c.XCatalog.Country = defaultXCatalogCountry
	}
	if c.XCatalog.RequestTimeout <= 0 {
		c.XCatalog.RequestTimeout = defaultRequestTimeout
	}
	if c.XCatalog.RequestsPerSecond <= 0 {
		c.XCatalog.RequestsPerSecond = defaultRequestsPerSecond
	}
}

func (c *Config) normalizeCatalog() {
	if c.Catalog.RefreshInterval <= 0 {
		c.Catalog.RefreshInterval = defaultRefreshInterval
	}
}

func (c *Config) normalizeMatching() {
	c.Matching.DefaultProfile = strings.TrimSpace(c.Matching.DefaultProfile)
	if c.Matching.DefaultProfile == "" {
		c.Matching.DefaultProfile = defaultProfileName
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
