package screening

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// ProgramInfo describes one catalog entry for the catalog endpoint.
type ProgramInfo struct {
	Program     string `json:"program"`
	Description string `json:"description"`
}

// requireAuth wraps a handler function to require authentication
func requireAuth(handler func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Auth == nil {
			return apis.NewUnauthorizedError("Authentication required", nil)
		}
		return handler(e)
	}
}

// InitializeService sets up the screening API endpoints
func InitializeService(e *core.ServeEvent) error {
	// Main screening endpoint, public so the frontend can call it
	// without a session. Accepts both the modern payload and the
	// legacy Drools commands format.
	e.Router.POST("/api/custom/screening/eligibility-programs", handleEligibilityPrograms)

	// Program catalog endpoint
	e.Router.GET("/api/custom/screening/catalog", handleCatalog)

	// Status endpoint
	e.Router.GET("/api/custom/screening/status", requireAuth(handleStatus))

	return nil
}

func handleEligibilityPrograms(e *core.RequestEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("screening request panicked", "error", fmt.Sprint(rec))
			err = e.JSON(http.StatusInternalServerError, Failure{
				Success: false,
				Errors:  []string{"Internal server error"},
			})
		}
	}()

	body, readErr := io.ReadAll(e.Request.Body)
	if readErr != nil {
		return e.JSON(http.StatusBadRequest, Failure{
			Success: false,
			Errors:  []string{"Invalid JSON in request body"},
		})
	}

	resp := Screen(body)
	return e.JSON(resp.Status, resp.Body)
}

func handleCatalog(e *core.RequestEvent) error {
	rules := Rules()
	programs := make([]ProgramInfo, 0, len(rules))
	for _, r := range rules {
		programs = append(programs, ProgramInfo{Program: r.Code, Description: r.Description})
	}
	return e.JSON(http.StatusOK, map[string]any{
		"programs": programs,
		"total":    len(programs),
	})
}

func handleStatus(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, map[string]any{
		"programs": len(Rules()),
		"stats":    GetStats(),
	})
}
