package google

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetSiteName_DefaultFallback(t *testing.T) {
	// Reset cache for clean test
	resetBrandingCache()

	// When no branding file exists, should return the default
	got := GetSiteName()
	if got != DefaultSiteName {
		t.Errorf("GetSiteName() without config = %q, want %q", got, DefaultSiteName)
	}
}

func TestGetSiteName_FromConfigFile(t *testing.T) {
	// Create a temporary branding config file
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	brandingFile := filepath.Join(configDir, "branding.local.json")
	content := `{"site_name": "ACCESS NYC", "site_name_short": "ACCESS"}`
	if err := os.WriteFile(brandingFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp branding file: %v", err)
	}

	// Reset cache and set config path
	resetBrandingCache()
	oldConfigPath := configBasePath
	configBasePath = tempDir
	defer func() { configBasePath = oldConfigPath }()

	got := GetSiteName()
	if got != "ACCESS NYC" {
		t.Errorf("GetSiteName() = %q, want %q", got, "ACCESS NYC")
	}
}

func TestGetSiteName_InvalidJSON(t *testing.T) {
	// Create a temporary branding config file with invalid JSON
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	brandingFile := filepath.Join(configDir, "branding.local.json")
	content := `not valid json`
	if err := os.WriteFile(brandingFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp branding file: %v", err)
	}

	// Reset cache and set config path
	resetBrandingCache()
	oldConfigPath := configBasePath
	configBasePath = tempDir
	defer func() { configBasePath = oldConfigPath }()

	// Should fall back to default when JSON is invalid
	got := GetSiteName()
	if got != DefaultSiteName {
		t.Errorf("GetSiteName() with invalid JSON = %q, want %q", got, DefaultSiteName)
	}
}

func TestGetSiteName_EmptySiteName(t *testing.T) {
	// Create a temporary branding config file with empty site_name
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	brandingFile := filepath.Join(configDir, "branding.local.json")
	content := `{"site_name": "", "site_name_short": "Test"}`
	if err := os.WriteFile(brandingFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp branding file: %v", err)
	}

	// Reset cache and set config path
	resetBrandingCache()
	oldConfigPath := configBasePath
	configBasePath = tempDir
	defer func() { configBasePath = oldConfigPath }()

	// Should fall back to default when site_name is empty
	got := GetSiteName()
	if got != DefaultSiteName {
		t.Errorf("GetSiteName() with empty site_name = %q, want %q", got, DefaultSiteName)
	}
}

func TestGetSiteName_Cached(t *testing.T) {
	// Create a temporary branding config file
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	brandingFile := filepath.Join(configDir, "branding.local.json")
	content := `{"site_name": "First Value"}`
	if err := os.WriteFile(brandingFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp branding file: %v", err)
	}

	// Reset cache and set config path
	resetBrandingCache()
	oldConfigPath := configBasePath
	configBasePath = tempDir
	defer func() { configBasePath = oldConfigPath }()

	// First call should load from file
	got1 := GetSiteName()
	if got1 != "First Value" {
		t.Errorf("GetSiteName() first call = %q, want %q", got1, "First Value")
	}

	// Change the file
	content2 := `{"site_name": "Second Value"}`
	if err := os.WriteFile(brandingFile, []byte(content2), 0644); err != nil {
		t.Fatalf("Failed to write second branding file: %v", err)
	}

	// Second call should return cached value (not re-read file)
	got2 := GetSiteName()
	if got2 != "First Value" {
		t.Errorf("GetSiteName() second call (cached) = %q, want %q", got2, "First Value")
	}
}

func TestFormatWorkbookTitle_Default(t *testing.T) {
	// Reset cache for clean test
	resetBrandingCache()

	title := FormatWorkbookTitle(2026)
	expected := DefaultSiteName + " Program Catalog - 2026"
	if title != expected {
		t.Errorf("FormatWorkbookTitle(2026) = %q, want %q", title, expected)
	}
}

func TestFormatWorkbookTitle_WithSiteName(t *testing.T) {
	// Create a temporary branding config file
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create temp config dir: %v", err)
	}

	brandingFile := filepath.Join(configDir, "branding.local.json")
	content := `{"site_name": "ACCESS NYC"}`
	if err := os.WriteFile(brandingFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp branding file: %v", err)
	}

	// Reset cache and set config path
	resetBrandingCache()
	oldConfigPath := configBasePath
	configBasePath = tempDir
	defer func() { configBasePath = oldConfigPath }()

	title := FormatWorkbookTitle(2026)
	if title != "ACCESS NYC Program Catalog - 2026" {
		t.Errorf("FormatWorkbookTitle(2026) = %q, want %q", title, "ACCESS NYC Program Catalog - 2026")
	}
}
