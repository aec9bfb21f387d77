package getOffering

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsfest/internal/lib/logger/handlers/slogdiscard"
	"sportsfest/internal/offerings"
)

func newRouter() chi.Router {
	router := chi.NewRouter()
	router.Get("/api/offerings/{key}", New(slogdiscard.NewDiscardLogger()))
	return router
}

func TestGetOfferingHandler(t *testing.T) {
	t.Parallel()

	t.Run("Known offering", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/api/offerings/badminton", nil)
		rr := httptest.NewRecorder()

		newRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp OfferingResponse
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.True(t, resp.Success)
		assert.Equal(t, "badminton", resp.Offering.Key)
		assert.Equal(t, offerings.ModeCategoryPriced, resp.Offering.Mode)
		assert.Equal(t, 200, resp.Offering.CategoryPrices["doubles-boys"])
	})

	t.Run("Unknown offering", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/api/offerings/quidditch", nil)
		rr := httptest.NewRecorder()

		newRouter().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"offering not found"}`, rr.Body.String())
	})

	t.Run("Without router context", func(t *testing.T) {
		t.Parallel()

		handler := New(slogdiscard.NewDiscardLogger())

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "offering key is required")
	})
}
