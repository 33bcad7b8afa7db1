package server

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SwordForge_Go/internal/forge"
	"github.com/osse101/SwordForge_Go/internal/handler"
	"github.com/osse101/SwordForge_Go/internal/sse"
	"github.com/osse101/SwordForge_Go/mocks"
)

const testAPIKey = "test-key"

func newTestRouter(t *testing.T, svc forge.Service, ready error) http.Handler {
	t.Helper()
	checker := handler.HealthCheckFunc(func(ctx context.Context) error { return ready })
	return NewRouter(Options{APIKey: testAPIKey}, Dependencies{Forge: svc, Readiness: checker})
}

func TestRouter(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		withKey    bool
		ready      error
		setup      func(*mocks.MockForgeService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "player requires api key",
			method:     http.MethodGet,
			path:       "/api/v1/player",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "player with key",
			method:  http.MethodGet,
			path:    "/api/v1/player",
			withKey: true,
			setup: func(m *mocks.MockForgeService) {
				m.On("Status", mock.Anything).Return(&forge.Status{Balance: 1500}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"balance_formatted":"$1.50k"`,
		},
		{
			name:    "odds route passes category",
			method:  http.MethodGet,
			path:    "/api/v1/odds/rarity?compare=true",
			withKey: true,
			setup: func(m *mocks.MockForgeService) {
				m.On("OddsReport", mock.Anything, "rarity", true).Return("Common 1 in 1", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "Common 1 in 1",
		},
		{
			name:    "rack listing",
			method:  http.MethodGet,
			path:    "/api/v1/items",
			withKey: true,
			setup: func(m *mocks.MockForgeService) {
				m.On("Rack", mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v1/nope",
			withKey:    true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "healthz is public",
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name:       "readyz reports failure",
			method:     http.MethodGet,
			path:       "/readyz",
			ready:      errors.New("tables not loaded"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "metrics is public",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockForgeService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.withKey {
				req.Header.Set(HeaderAPIKey, testAPIKey)
			}
			rec := httptest.NewRecorder()

			newTestRouter(t, svc, tt.ready).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer(Options{Port: 9999, APIKey: testAPIKey}, Dependencies{
		Forge:     mocks.NewMockForgeService(t),
		Readiness: handler.HealthCheckFunc(func(context.Context) error { return nil }),
	})

	assert.Equal(t, ":9999", s.httpServer.Addr)
	assert.Equal(t, ReadHeaderTimeout, s.httpServer.ReadHeaderTimeout)
}

func TestRouter_EventStreamThroughMiddleware(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	router := NewRouter(Options{APIKey: testAPIKey}, Dependencies{
		Forge:     mocks.NewMockForgeService(t),
		Readiness: handler.HealthCheckFunc(func(context.Context) error { return nil }),
		Events:    hub,
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/events", nil)
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: "), line)
}
