package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ctfwatch/internal/controllers"
	"ctfwatch/internal/events"
	"ctfwatch/internal/models"
	"ctfwatch/internal/providers"
	"ctfwatch/internal/structures"
	"ctfwatch/internal/testutil"
	"ctfwatch/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- minimal mocks for routes test ---

type routeTestLogger struct{}

func (m *routeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *routeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *routeTestLogger) Close()                                                  {}

type routeTestCache struct{}

func (m *routeTestCache) Get(_ string) ([]byte, bool) { return nil, false }
func (m *routeTestCache) Set(_ string, _ []byte)      {}

type routeTestMockService struct{}

func (m *routeTestMockService) Upcoming(_ context.Context, _ int) ([]models.NormalizedEvent, error) {
	return nil, nil
}
func (m *routeTestMockService) NewEvents(_ context.Context, _ int) (events.Delta, error) {
	return events.Delta{}, nil
}
func (m *routeTestMockService) Details(_ context.Context, _ int) (models.NormalizedEvent, bool, error) {
	return models.NormalizedEvent{}, false, nil
}
func (m *routeTestMockService) Project(_ []models.NormalizedEvent) ([]map[string]any, error) {
	return nil, nil
}
func (m *routeTestMockService) TopTeams(_ context.Context, _ int) ([]models.TopTeam, error) {
	return nil, nil
}
func (m *routeTestMockService) Team(_ context.Context, _ string) (*models.Team, error) {
	return &models.Team{}, nil
}

func newRouteTestController() *controllers.ApiController {
	wl := watch.NewWatchList(&testutil.MockMetrics{})
	return controllers.NewApiController(&routeTestLogger{}, &routeTestMockService{}, wl, &routeTestCache{})
}

func TestInitRoutes_RegistersEightRoutes(t *testing.T) {
	conf := &structures.Config{
		Watch: structures.WatchConfig{SweepInterval: 24 * time.Hour},
	}

	router := InitRoutes(newRouteTestController(), conf)
	routes := router.GetRoutes()

	require.Len(t, routes, 8)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/events")
	assert.Contains(t, urls, "/events/new")
	assert.Contains(t, urls, "/event")
	assert.Contains(t, urls, "/watchlist")
	assert.Contains(t, urls, "/watchlist/add")
	assert.Contains(t, urls, "/watchlist/remove")
	assert.Contains(t, urls, "/top")
	assert.Contains(t, urls, "/team")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	conf := &structures.Config{
		Watch: structures.WatchConfig{SweepInterval: 24 * time.Hour},
	}

	router := InitRoutes(newRouteTestController(), conf)
	routes := router.GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// GET /events with POST should fail
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// POST /watchlist/add with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/watchlist/add", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// DELETE /watchlist/remove with GET should fail
	req = httptest.NewRequest(http.MethodGet, "/watchlist/remove", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
