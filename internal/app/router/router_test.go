package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_compare/internal/app/web"
	"stock_compare/internal/feature/comparison/domain"
	"stock_compare/internal/feature/comparison/domain/entity"
	comparisonhandler "stock_compare/internal/feature/comparison/transport/handler"
	symbolentity "stock_compare/internal/feature/symbollist/domain/entity"
	symbollisthandler "stock_compare/internal/feature/symbollist/transport/handler"
	platformhandler "stock_compare/internal/platform/http/handler"
	"stock_compare/internal/platform/http/middleware"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubComparison struct{}

func (stubComparison) Compare(ctx context.Context, symbol1, symbol2 string) (*entity.Comparison, error) {
	return nil, domain.ErrNoOverlap
}

type stubSymbols struct{}

func (stubSymbols) ListSymbols(ctx context.Context, exchange string) ([]symbolentity.Symbol, error) {
	return []symbolentity.Symbol{{Code: "AAPL", Name: "Apple Inc"}}, nil
}

func newTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()

	tmpl, err := web.Templates()
	require.NoError(t, err)

	return NewRouter(
		Options{Templates: tmpl, CORSOrigins: origins},
		platformhandler.NewHealthHandler(nil),
		comparisonhandler.NewComparisonHandler(stubComparison{}, stubSymbols{}),
		symbollisthandler.NewSymbolHandler(stubSymbols{}),
	)
}

func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodHead, "/healthz", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/symbols", http.StatusOK},
		{http.MethodGet, "/api/compare?symbol1=AAPL&symbol2=MSFT", http.StatusUnprocessableEntity},
		{http.MethodGet, "/api/compare", http.StatusBadRequest},
		{http.MethodGet, "/candles/AAPL", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), "every response carries a request id")
		})
	}
}

func TestNewRouter_IndexRendersSuggestions(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="AAPL">Apple Inc</option>`)
}

func TestNewRouter_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    []string
		wantHeader string
	}{
		{"disabled", nil, ""},
		{"listed origin", []string{"https://app.example.com"}, "https://app.example.com"},
		{"wildcard", []string{"*"}, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestRouter(t, tt.origins)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
			req.Header.Set("Origin", "https://app.example.com")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, []string{"https://app.example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/compare", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig(t *testing.T) {
	t.Parallel()

	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)

	cfg = corsConfig([]string{"https://a.test", "https://b.test"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowOrigins)
}
