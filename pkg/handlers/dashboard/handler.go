package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
	"github.com/fin-tools/spend-atlas/pkg/services/report"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
)

// Handler serves statement views over one loaded table.
type Handler struct {
	table    domain.Table
	composer *view.Composer
}

// NewHandler creates a handler over the given table.
func NewHandler(table domain.Table, composer *view.Composer) *Handler {
	return &Handler{table: table, composer: composer}
}

// GetDashboard serves the composed view. The optional "date" query
// parameter is a strict "YYYY-MM-DD HH:MM:SS" reference; it defaults
// to now.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.composer.Dashboard(ctx, h.table, refOrNow(r))
	if err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

// GetCategoryReport serves the trailing-window category spend report.
func (h *Handler) GetCategoryReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := r.URL.Query().Get("category")
	if category == "" {
		respondJSON(ctx, w, http.StatusBadRequest, api.Error{Message: "category is required"})
		return
	}

	rows := report.SpendingByCategory(ctx, h.table, category, r.URL.Query().Get("date"))
	response := make([]api.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		response = append(response, api.CategoryTotal{
			Category: row.Category,
			Total:    row.Total.InexactFloat64(),
		})
	}
	respondJSON(ctx, w, http.StatusOK, response)
}

// SearchTransactions serves free-text search over the raw statement.
func (h *Handler) SearchTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		respondJSON(ctx, w, http.StatusBadRequest, api.Error{Message: "q is required"})
		return
	}

	matches, err := report.Search(ctx, h.table, query)
	if err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	respondJSON(ctx, w, http.StatusOK, matches)
}

// Analyze serves the full analysis: search, category report and
// dashboard in one response.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	result, err := h.composer.Analyze(ctx, h.table, refOrNow(r), q.Get("query"), q.Get("category"))
	if err != nil {
		respondJSON(ctx, w, http.StatusBadRequest, api.Error{Message: err.Error()})
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

func refOrNow(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return time.Now().Format(normalize.LayoutISOTime)
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
