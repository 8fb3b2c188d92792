package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/spend-atlas/pkg/handlers/dashboard"
	"github.com/fin-tools/spend-atlas/pkg/models/api"
	"github.com/fin-tools/spend-atlas/pkg/models/domain"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
)

func testWebAPI() *WebAPI {
	table := domain.Table{
		Columns: []string{domain.ColDate, domain.ColCard, domain.ColAmount, domain.ColCategory, domain.ColDescription},
		Rows: []domain.Record{
			{domain.ColDate: "01.07.2024 10:00:00", domain.ColCard: "*7197", domain.ColAmount: "-150,00", domain.ColCategory: "Супермаркеты", domain.ColDescription: "Колхоз"},
		},
	}
	handler := dashboard.NewHandler(table, view.NewComposer(view.Dependencies{}))
	logger := zerolog.New(os.Stderr)
	return NewWebAPI(logger, Config{
		Addr:         "127.0.0.1:0",
		Dependencies: Dependencies{Dashboard: handler},
	})
}

func TestRoutes(t *testing.T) {
	webAPI := testWebAPI()

	t.Run("dashboard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?date=2024-07-23+14:30:00", nil)
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var d api.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
		assert.Equal(t, "Добрый день", d.Greeting)
	})

	t.Run("search", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=колхоз", nil)
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var rows []map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		assert.Len(t, rows, 1)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
		webAPI.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
