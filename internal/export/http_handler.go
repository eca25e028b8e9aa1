package export

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pwallin/corpgraph/internal/auth"
)

// Handler exposes graph exports as an HTTP download endpoint.
type Handler struct {
	service *Service
}

// NewHTTPHandler wraps the service with a GET endpoint.
func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	orgID, err := uuid.Parse(strings.TrimSpace(query.Get("organizationId")))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid organizationId: %v", err), http.StatusBadRequest)
		return
	}
	if err := auth.EnforceOrganizationScope(r.Context(), orgID); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	asOf, err := parseAsOf(query.Get("asOf"))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid asOf: %v", err), http.StatusBadRequest)
		return
	}

	var scenarioID *uuid.UUID
	if raw := strings.TrimSpace(query.Get("scenarioId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid scenarioId: %v", err), http.StatusBadRequest)
			return
		}
		scenarioID = &id
	}

	format, err := ParseFormat(query.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := Request{
		OrganizationID: orgID,
		AsOf:           asOf,
		ScenarioID:     scenarioID,
		Format:         format,
	}

	w.Header().Set("Content-Type", h.service.ContentType(req))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.service.FileName(req)))
	if err := h.service.Render(r.Context(), req, w); err != nil {
		// Headers may already be on the wire; the body error is best effort.
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
}

func parseAsOf(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("asOf is required")
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, raw)
}
