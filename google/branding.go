// Package google provides Google API client initialization and configuration.
package google

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// DefaultSiteName is the fallback when no branding config is found
	DefaultSiteName = "Benefits Screener"

	// brandingFileName is the name of the local branding config file
	brandingFileName = "branding.local.json"
)

// configBasePath is the base path for config files. Can be overridden in tests.
var configBasePath = "."

// brandingConfig holds the parsed branding configuration
type brandingConfig struct {
	SiteName      string `json:"site_name"`
	SiteNameShort string `json:"site_name_short"`
}

// Cached branding data
var (
	cachedSiteName string
	brandingOnce   sync.Once
	brandingMu     sync.Mutex
)

// resetBrandingCache clears the cached branding data (for testing)
func resetBrandingCache() {
	brandingMu.Lock()
	defer brandingMu.Unlock()
	cachedSiteName = ""
	brandingOnce = sync.Once{}
}

// GetSiteName returns the site name from branding config, or DefaultSiteName if not found.
// The value is cached after first load.
func GetSiteName() string {
	brandingOnce.Do(func() {
		cachedSiteName = loadSiteName()
	})
	return cachedSiteName
}

// loadSiteName reads the site name from the branding config file.
// Returns DefaultSiteName if the file doesn't exist or is invalid.
func loadSiteName() string {
	configPath := filepath.Join(configBasePath, "config", brandingFileName)

	data, err := os.ReadFile(configPath) //nolint:gosec // G304: path is from trusted config
	if err != nil {
		// File doesn't exist or can't be read - use default
		return DefaultSiteName
	}

	var config brandingConfig
	if err := json.Unmarshal(data, &config); err != nil {
		// Invalid JSON - use default
		return DefaultSiteName
	}

	if config.SiteName == "" {
		// Empty site name - use default
		return DefaultSiteName
	}

	return config.SiteName
}

// FormatWorkbookTitle generates the catalog workbook title, e.g.
// "Benefits Screener Program Catalog - 2026".
func FormatWorkbookTitle(year int) string {
	return fmt.Sprintf("%s Program Catalog - %d", GetSiteName(), year)
}
