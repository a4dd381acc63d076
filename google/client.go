// Package google provides Google API client initialization for the screener
package google

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	envEnabled     = "GOOGLE_SHEETS_ENABLED"
	envKeyJSON     = "GOOGLE_SERVICE_ACCOUNT_KEY_JSON"
	envKeyFile     = "GOOGLE_SERVICE_ACCOUNT_KEY_FILE"
	envSpreadsheet = "GOOGLE_SHEETS_SPREADSHEET_ID"
	envFolder      = "GOOGLE_DRIVE_FOLDER_ID"
	envShareEmails = "GOOGLE_SHEETS_SHARE_EMAILS"
	defaultKeyFile = "../google_sheets.json" // repo root, alongside .env
)

// IsEnabled returns true if the Google Sheets catalog export is enabled
// via environment variable
func IsEnabled() bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(envEnabled)))
	return val == "true" || val == "1"
}

// GetSpreadsheetID returns the configured catalog spreadsheet ID
func GetSpreadsheetID() string {
	return strings.TrimSpace(os.Getenv(envSpreadsheet))
}

// GetFolderID returns the configured Drive folder for created workbooks
func GetFolderID() string {
	return strings.TrimSpace(os.Getenv(envFolder))
}

// GetShareEmails returns the addresses a newly created workbook is
// shared with, parsed from the comma-separated GOOGLE_SHEETS_SHARE_EMAILS
func GetShareEmails() []string {
	var emails []string
	for _, part := range strings.Split(os.Getenv(envShareEmails), ",") {
		if email := strings.TrimSpace(part); email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// getAuthenticatedHTTPClient builds a client option carrying service
// account credentials for the given scope. enabled is false when the
// export is turned off, which is not an error.
func getAuthenticatedHTTPClient(ctx context.Context, scope string) (option.ClientOption, bool, error) {
	if !IsEnabled() {
		return nil, false, nil
	}

	credJSON, err := getCredentialsJSON()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(credJSON, scope)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse credentials: %w", err)
	}

	return option.WithHTTPClient(config.Client(ctx)), true, nil
}

// NewSheetsClient creates a new Google Sheets API client using service
// account credentials. Returns nil, nil if the export is disabled
// (graceful degradation).
func NewSheetsClient(ctx context.Context) (*sheets.Service, error) {
	opt, enabled, err := getAuthenticatedHTTPClient(ctx, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}

	srv, err := sheets.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return srv, nil
}

// getCredentialsJSON retrieves the service account credentials JSON.
// Inline JSON via GOOGLE_SERVICE_ACCOUNT_KEY_JSON wins; otherwise reads
// from the file specified by GOOGLE_SERVICE_ACCOUNT_KEY_FILE, defaulting
// to "google_sheets.json" at the repo root.
func getCredentialsJSON() ([]byte, error) {
	if inline := strings.TrimSpace(os.Getenv(envKeyJSON)); inline != "" {
		return []byte(inline), nil
	}

	keyFile := strings.TrimSpace(os.Getenv(envKeyFile))
	if keyFile == "" {
		keyFile = defaultKeyFile
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", keyFile, err)
	}
	return data, nil
}
