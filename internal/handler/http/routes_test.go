package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-link-txt/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Routes(t *testing.T) {
	router := newTestHandler(&service.Services{AppInfoService: &mockAppInfoService{version: "9.9.9"}}).Init()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"version", http.MethodGet, "/api/version", http.StatusOK, "9.9.9"},
		{"health", http.MethodGet, "/health", http.StatusOK, "ok"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "link_txt_"},
		{"wrong method on version", http.MethodPost, "/api/version", http.StatusNotFound, ""},
		{"unknown route", http.MethodGet, "/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_HTTPRequestsAreCounted(t *testing.T) {
	router := newTestHandler(nil).Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `link_txt_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestInit_CompressesResponses(t *testing.T) {
	router := newTestHandler(nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "ok", strings.TrimSpace(string(body)))
}
