package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-manager/internal/platform/cache"
	"github.com/riskibarqy/league-manager/internal/platform/logging"
	"github.com/riskibarqy/league-manager/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSeason     = memory.SeasonIDLiga1
	testAdminToken = "admin-secret"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events [][2]string
	err    error
}

func (p *recordingPublisher) PublishMatchFinalized(_ context.Context, seasonID, matchID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, [2]string{seasonID, matchID})
	return nil
}

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, publisher MatchEventPublisher) http.Handler {
	t.Helper()

	store := memory.NewDisciplineStore(memory.SeedDataset())
	logger := logging.NewNop()
	discipline := usecase.NewDisciplineService(store, store, cache.NewStore(time.Minute), nil, nil, logger)
	fixtures := usecase.NewFixtureService(memory.NewFixtureRepository(store))
	handler := NewHandler(discipline, fixtures, usecase.NewLineupGuard(discipline), publisher, logger)

	return NewRouter(handler, logger, RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		AdminToken:         testAdminToken,
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		}),
	})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, admin bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(adminTokenHeader, testAdminToken)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func recalculateSeeded(t *testing.T, router http.Handler) {
	t.Helper()

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/seasons/"+testSeason+"/discipline/recalculate", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope[map[string]string](t, rec)
	assert.Equal(t, "ok", body.Data["status"])
}

func TestHandler_Metrics(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# metrics")
}

func TestHandler_RecalculateSeason(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/seasons/"+testSeason+"/discipline/recalculate", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/seasons/"+testSeason+"/discipline/recalculate", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope[recalculationResultDTO](t, rec)
	assert.Equal(t, testSeason, body.Data.SeasonID)
	assert.Equal(t, 0, body.Data.Archived)
	assert.Equal(t, 3, body.Data.Created)
	assert.Empty(t, body.Data.Errors)

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/seasons/"+testSeason+"/discipline/recalculate", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope[recalculationResultDTO](t, rec)
	assert.Equal(t, 3, body.Data.Archived)
	assert.Equal(t, 3, body.Data.Created)
}

func TestHandler_RecalculateSeasons(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/discipline/recalculate", `{"season_ids":["`+testSeason+`","empty-season"]}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope[[]seasonRecalculationDTO](t, rec)
	require.Len(t, body.Data, 2)
	assert.Equal(t, testSeason, body.Data[0].SeasonID)
	assert.Equal(t, 3, body.Data[0].Created)
	assert.Equal(t, "empty-season", body.Data[1].SeasonID)
	assert.Equal(t, 0, body.Data[1].Created)
	assert.Empty(t, body.Data[1].Error)
}

func TestHandler_RecalculateSeasons_RejectsBadPayload(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `{"season_ids":`},
		{name: "unknown field", body: `{"season_ids":["a"],"force":true}`},
		{name: "empty list", body: `{"season_ids":[]}`},
		{name: "blank id", body: `{"season_ids":[""]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/v1/admin/discipline/recalculate", tt.body, true)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decodeEnvelope[any](t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
		})
	}
}

func TestHandler_ListCardSummary(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/cards", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope[[]cardSummaryDTO](t, rec)
	require.Len(t, body.Data, 5)
	assert.Equal(t, "sp-bu-16", body.Data[0].SeasonPlayerID)
	assert.Equal(t, 2, body.Data[0].YellowCards)
	assert.Equal(t, 1, body.Data[0].RedCards)
	assert.Equal(t, "sp-prb-03", body.Data[1].SeasonPlayerID)
}

func TestHandler_ListSuspensions(t *testing.T) {
	router := newTestRouter(t, nil)
	recalculateSeeded(t, router)
	recalculateSeeded(t, router)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/suspensions?status=active", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decodeEnvelope[[]suspensionDTO](t, rec)
	require.Len(t, active.Data, 3)
	for _, item := range active.Data {
		assert.Equal(t, "active", item.Status)
		assert.NotEmpty(t, item.TriggerMatchInfo)
		assert.NotEmpty(t, item.StartMatchInfo)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/suspensions?status=archived", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	archived := decodeEnvelope[[]suspensionDTO](t, rec)
	assert.Len(t, archived.Data, 3)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/suspensions", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeEnvelope[[]suspensionDTO](t, rec)
	assert.Len(t, all.Data, 6)

	rec = doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/suspensions?status=pending", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ExportSuspensionsCSV(t *testing.T) {
	router := newTestRouter(t, nil)
	recalculateSeeded(t, router)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/suspensions.csv?status=active", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "suspensions-"+testSeason+".csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "suspension_id,"), lines[0])
}

func TestHandler_GetDisciplineOverview(t *testing.T) {
	router := newTestRouter(t, nil)
	recalculateSeeded(t, router)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/discipline/overview", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope[disciplineOverviewDTO](t, rec)
	assert.Equal(t, testSeason, body.Data.SeasonID)
	assert.Equal(t, 6, body.Data.TotalYellowCards)
	assert.Equal(t, 2, body.Data.TotalRedCards)
	assert.Len(t, body.Data.Cards, 5)
	assert.Len(t, body.Data.ActiveSuspensions, 3)
}

func TestHandler_CheckPlayerSuspension(t *testing.T) {
	router := newTestRouter(t, nil)
	recalculateSeeded(t, router)

	tests := []struct {
		name      string
		player    string
		match     string
		suspended bool
		reason    string
	}{
		{name: "red card ban match", player: "sp-prb-03", match: "m04", suspended: true, reason: "RED_CARD"},
		{name: "after ban", player: "sp-prb-03", match: "m05", suspended: false},
		{name: "two yellow ban", player: "sp-psb-23", match: "m07", suspended: true, reason: "TWO_YELLOWS"},
		{name: "trigger match", player: "sp-bu-16", match: "m08", suspended: false},
		{name: "clean player", player: "sp-psj-09", match: "m04", suspended: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/v1/seasons/" + testSeason + "/matches/" + tt.match + "/players/" + tt.player + "/suspension"
			rec := doRequest(t, router, http.MethodGet, path, "", false)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decodeEnvelope[suspensionCheckDTO](t, rec)
			assert.Equal(t, tt.suspended, body.Data.Suspended)
			assert.Equal(t, tt.reason, body.Data.Reason)
			assert.Equal(t, tt.player, body.Data.SeasonPlayerID)
		})
	}
}

func TestHandler_CheckLineup(t *testing.T) {
	router := newTestRouter(t, nil)
	recalculateSeeded(t, router)

	path := "/v1/seasons/" + testSeason + "/matches/m04/lineup/check"
	rec := doRequest(t, router, http.MethodPost, path, `{"season_player_ids":["sp-prb-03","sp-prb-08"]}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeEnvelope[lineupCheckDTO](t, rec)
	assert.False(t, body.Data.Eligible)
	require.Len(t, body.Data.Suspended, 1)
	assert.Equal(t, "sp-prb-03", body.Data.Suspended[0].SeasonPlayerID)
	assert.Equal(t, "RED_CARD", body.Data.Suspended[0].Reason)

	rec = doRequest(t, router, http.MethodPost, "/v1/seasons/"+testSeason+"/matches/m05/lineup/check", `{"season_player_ids":["sp-prb-03"]}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeEnvelope[lineupCheckDTO](t, rec)
	assert.True(t, body.Data.Eligible)
	assert.Empty(t, body.Data.Suspended)

	rec = doRequest(t, router, http.MethodPost, path, `{"season_player_ids":["sp-prb-03","sp-prb-03"]}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ListFixturesBySeason(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/v1/seasons/"+testSeason+"/fixtures", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope[[]fixtureDTO](t, rec)
	require.Len(t, body.Data, 10)
	assert.Equal(t, "m01", body.Data[0].ID)
	assert.Equal(t, "m10", body.Data[9].ID)
	assert.Equal(t, "SCHEDULED", body.Data[9].Status)
	assert.True(t, strings.HasPrefix(body.Data[0].Label, "Matchday 1: "), body.Data[0].Label)
}

func TestHandler_PublishMatchFinalized(t *testing.T) {
	publisher := &recordingPublisher{}
	router := newTestRouter(t, publisher)

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/events/match-finalized", `{"season_id":"`+testSeason+`","match_id":"m08"}`, true)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	assert.Equal(t, [][2]string{{testSeason, "m08"}}, publisher.events)

	rec = doRequest(t, router, http.MethodPost, "/v1/admin/events/match-finalized", `{"season_id":"`+testSeason+`"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	publisher.err = errors.New("bus closed")
	rec = doRequest(t, router, http.MethodPost, "/v1/admin/events/match-finalized", `{"season_id":"`+testSeason+`","match_id":"m09"}`, true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_PublishMatchFinalized_NoPublisher(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/v1/admin/events/match-finalized", `{"season_id":"s","match_id":"m"}`, true)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
