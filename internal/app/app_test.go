package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/league-manager/internal/config"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		AdminToken:         "token",
		RecalcTimeout:      5 * time.Second,
		RecalcWorkerCount:  2,
		EventsEnabled:      true,
		EventsMaxRetries:   1,
		MetricsEnabled:     true,
	}
}

func TestNew_MemoryDriverServesSeededSeason(t *testing.T) {
	c, err := New(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Nil(t, c.DB())
	require.NotNil(t, c.MemoryStore())
	require.NotNil(t, c.Events)
	require.NotNil(t, c.Metrics)

	result, err := c.Discipline.RecalculateSeason(context.Background(), memory.SeasonIDLiga1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)

	srv, err := c.NewHTTPServer()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `league_manager_discipline_recalculations_total{outcome="success"} 1`)
}

func TestNew_EventsAndMetricsDisabled(t *testing.T) {
	cfg := memoryConfig()
	cfg.EventsEnabled = false
	cfg.MetricsEnabled = false
	cfg.CacheEnabled = false

	c, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Nil(t, c.Events)
	assert.Nil(t, c.Metrics)
	require.NoError(t, c.RunEvents(context.Background()))

	srv, err := c.NewHTTPServer()
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_RejectsUnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	cfg.EventsEnabled = false

	c, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	_, err = c.NewHTTPServer()
	require.Error(t, err)
}
