package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customer-feedback/internal/data/repository"
	"customer-feedback/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, metricsEnabled bool) *App {
	t.Helper()
	log := zap.NewNop()
	config := &utils.Config{Metrics: utils.MetricsConfig{Enabled: metricsEnabled}}

	app, err := Wiring(repository.NewRepository(log), config, log)
	require.NoError(t, err)
	return app
}

func TestRouter_Routes(t *testing.T) {
	app := newTestApp(t, true)

	tests := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/dashboard", "", http.StatusOK},
		{http.MethodGet, "/dashboard?sort=bogus&dir=sideways", "", http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/feedback", "", http.StatusOK},
		{http.MethodGet, "/api/feedback?sort=sentiment&dir=desc", "", http.StatusOK},
		{http.MethodGet, "/api/feedback/FB010", "", http.StatusOK},
		{http.MethodGet, "/api/feedback/missing", "", http.StatusNotFound},
		{http.MethodGet, "/api/analytics", "", http.StatusOK},
		{http.MethodPost, "/api/feedback", `{"product_name":"Sonic Boom","rating":3,"comment":"fine"}`, http.StatusAccepted},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			w := httptest.NewRecorder()
			app.Router.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRouter_MetricsDisabled(t *testing.T) {
	app := newTestApp(t, false)

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
