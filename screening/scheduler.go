package screening

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/accessnyc/screener/pocketbase/google"
	"github.com/accessnyc/screener/pocketbase/ratelimit"
)

// Scheduler runs the recurring catalog jobs: a daily audit of the rule
// registry and a nightly export of the program catalog to Google Sheets.
type Scheduler struct {
	cron    *cron.Cron
	limiter *ratelimit.RateLimiter
	mu      sync.Mutex
	running bool

	// workbookID remembers a workbook created by this process when no
	// spreadsheet is configured, so later exports reuse it.
	workbookID string
}

// NewScheduler creates a new scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		limiter: ratelimit.NewRateLimiter(nil),
	}
}

// Start registers the cron schedules and starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}

	// Daily catalog audit
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		slog.Info("Starting scheduled catalog audit")
		s.runCatalogAudit()
	})
	if err != nil {
		return fmt.Errorf("adding audit schedule: %w", err)
	}

	// Nightly catalog export to Google Sheets
	_, err = s.cron.AddFunc("0 4 * * *", func() {
		slog.Info("Starting scheduled catalog export")
		s.runCatalogExport()
	})
	if err != nil {
		return fmt.Errorf("adding export schedule: %w", err)
	}

	s.cron.Start()
	s.running = true

	slog.Info("Catalog scheduler started")
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	slog.Info("Stopping catalog scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	slog.Info("Catalog scheduler stopped")
}

// runCatalogAudit checks the registry for duplicate program codes and
// logs the catalog shape plus the pipeline counters.
func (s *Scheduler) runCatalogAudit() {
	rules := Rules()

	seen := make(map[string]bool, len(rules))
	duplicates := 0
	for _, r := range rules {
		if seen[r.Code] {
			duplicates++
			slog.Warn("Duplicate program code registered", "program", r.Code)
		}
		seen[r.Code] = true
	}

	stats := GetStats()
	slog.Info("Catalog audit completed",
		"programs", len(rules),
		"duplicates", duplicates,
		"requests", stats.Requests,
		"rule_panics", stats.RulePanics)
}

// runCatalogExport writes the program catalog to the configured Google
// Sheets spreadsheet. A disabled export is skipped silently.
func (s *Scheduler) runCatalogExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.ExportCatalog(ctx); err != nil {
		slog.Error("Catalog export failed", "error", err)
		return
	}
	slog.Info("Catalog export completed")
}

// ExportCatalog writes one row per program to the "Catalog" tab of the
// configured spreadsheet, replacing previous contents.
func (s *Scheduler) ExportCatalog(ctx context.Context) error {
	srv, err := google.NewSheetsClient(ctx)
	if err != nil {
		return fmt.Errorf("creating sheets client: %w", err)
	}
	if srv == nil {
		slog.Info("Google Sheets export disabled, skipping catalog export")
		return nil
	}

	spreadsheetID, err := s.resolveSpreadsheetID(ctx)
	if err != nil {
		return err
	}

	values := catalogRows()

	err = s.limiter.ExecuteWithRetry(ctx, func() error {
		_, err := srv.Spreadsheets.Values.Update(spreadsheetID, "Catalog!A1",
			&sheets.ValueRange{Values: values}).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("writing catalog to %s: %w", spreadsheetID, err)
	}

	slog.Info("Catalog written",
		"spreadsheet", google.FormatSpreadsheetURL(spreadsheetID),
		"rows", len(values))
	return nil
}

// resolveSpreadsheetID returns the configured catalog spreadsheet ID.
// When none is configured it creates a new workbook in the configured
// Drive folder, shares it with the configured addresses, and remembers
// the ID for subsequent exports.
func (s *Scheduler) resolveSpreadsheetID(ctx context.Context) (string, error) {
	if id := google.GetSpreadsheetID(); id != "" {
		return id, nil
	}

	s.mu.Lock()
	id := s.workbookID
	s.mu.Unlock()
	if id != "" {
		return id, nil
	}

	title := google.FormatWorkbookTitle(time.Now().UTC().Year())
	slog.Info("No catalog spreadsheet configured, creating workbook", "title", title)

	id, err := google.CreateSpreadsheet(ctx, title)
	if err != nil {
		return "", fmt.Errorf("creating catalog workbook: %w", err)
	}

	s.shareWorkbook(ctx, id)

	slog.Info("Created catalog workbook",
		"spreadsheet_id", id,
		"url", google.FormatSpreadsheetURL(id))

	s.mu.Lock()
	s.workbookID = id
	s.mu.Unlock()
	return id, nil
}

// shareWorkbook grants commenter access to the configured addresses.
// Sharing failures are logged, not fatal.
func (s *Scheduler) shareWorkbook(ctx context.Context, spreadsheetID string) {
	for _, email := range google.GetShareEmails() {
		if err := google.ShareSpreadsheet(ctx, spreadsheetID, email, "commenter"); err != nil {
			slog.Warn("Failed to share catalog workbook", "email", email, "error", err)
			continue
		}
		slog.Info("Shared catalog workbook", "email", email, "role", "commenter")
	}
}

// catalogRows builds the export rows: a header plus one row per program.
func catalogRows() [][]any {
	rules := Rules()
	rows := make([][]any, 0, len(rules)+1)
	rows = append(rows, []any{"Program", "Description", "Exported At"})

	exportedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range rules {
		rows = append(rows, []any{r.Code, r.Description, exportedAt})
	}
	return rows
}
