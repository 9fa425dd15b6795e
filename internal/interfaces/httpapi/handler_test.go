package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"github.com/ukpkickball/roster/internal/infrastructure/repository/memory"
	"github.com/ukpkickball/roster/internal/platform/logging"
	"github.com/ukpkickball/roster/internal/usecase"
)

const testOperatorToken = "test-operator-token"

type nullLogoStore struct{}

func (nullLogoStore) Save(context.Context, string, []byte) error { return nil }
func (nullLogoStore) Delete(context.Context, string) error       { return nil }

type fixedIDGenerator struct{}

func (fixedIDGenerator) NewID() (string, error) { return "abcdef0123456789", nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	gameRepo := memory.NewGameRepository()
	rosterRepo := memory.NewRosterRepository()
	availabilityRepo := memory.NewAvailabilityRepository()
	lineupRepo := memory.NewLineupRepository()
	publishRepo := memory.NewPublishRepository()

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewRosterService(rosterRepo),
		usecase.NewGameService(gameRepo, nullLogoStore{}, fixedIDGenerator{}, time.Thursday, "Unsolicited Kick Pics", logger),
		usecase.NewAvailabilityService(gameRepo, rosterRepo, availabilityRepo),
		usecase.NewLineupService(gameRepo, rosterRepo, availabilityRepo, lineupRepo),
		usecase.NewPublishService(gameRepo, rosterRepo, availabilityRepo, lineupRepo, publishRepo, logger),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"}, testOperatorToken)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string, asOperator bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if asOperator {
		req.Header.Set("Authorization", "Bearer "+testOperatorToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	data, _ := body["data"].(map[string]any)
	return data
}

func TestRouter_RosterEndpoints(t *testing.T) {
	router := newTestRouter(t)

	// Mutations need the operator token.
	rec := doJSON(t, router, http.MethodPost, "/v1/roster", `{"name":"Alex","isFemale":false}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/roster", `{"name":"Alex","isFemale":false}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/roster", `{"name":"Alex","isFemale":true}`, true)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/substitutes", `{"name":"Sub Sam","isFemale":true}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Reads are public.
	rec = doJSON(t, router, http.MethodGet, "/v1/roster", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"Alex"`)

	rec = doJSON(t, router, http.MethodPut, "/v1/roster/Alex/gender", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/v1/roster/Alex", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/roster", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), `"Alex"`)
}

func TestRouter_GameLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/roster", `{"name":"Alex","isFemale":true}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/v1/roster", `{"name":"Blair","isFemale":false}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Provisioning: the current game is created and main-roster statuses
	// initialized in one call.
	rec = doJSON(t, router, http.MethodGet, "/v1/games/current", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, "Unsolicited Kick Pics", data["teamName"])
	require.Equal(t, float64(1), data["id"])

	rec = doJSON(t, router, http.MethodGet, "/v1/games/1/status", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	statuses := decodeData(t, rec)["statuses"].(map[string]any)
	alex := statuses["Alex"].(map[string]any)
	require.Equal(t, "IN", alex["status"])

	// Toggle and reorder.
	rec = doJSON(t, router, http.MethodPut, "/v1/games/1/status/Alex", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"OUT"`)

	rec = doJSON(t, router, http.MethodPut, "/v1/games/1/order/Blair", `{"direction":"sideways"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Lineup edit, publish, published view.
	rec = doJSON(t, router, http.MethodPut, "/v1/games/1/lineup/Blair/1", `{"position":"Pitcher"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/games/1/lineup/published", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, decodeData(t, rec)["published"])

	rec = doJSON(t, router, http.MethodPost, "/v1/games/1/publish", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/games/1/lineup/published", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	published := decodeData(t, rec)
	require.Equal(t, true, published["published"])
	grid := published["lineup"].(map[string]any)
	inningOne := grid["1"].(map[string]any)
	require.Equal(t, "Pitcher", inningOne["Blair"])

	rec = doJSON(t, router, http.MethodPost, "/v1/games/1/unpublish", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/games/1/lineup/published", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, decodeData(t, rec)["published"])
}

func TestRouter_GameValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/games/current", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/games/999", "", false)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/games/not-a-number", "", false)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/v1/games/1", `{"date":"nope","teamName":"Team"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/v1/games/1", `{"date":"2026-03-05","teamName":"The Kickers","opponentName":"Rivals"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	require.Equal(t, "The Kickers", data["teamName"])
	require.Equal(t, "Rivals", data["opponentName"])

	rec = doJSON(t, router, http.MethodPut, "/v1/games/1/lineup/Alex/9", `{"position":"Pitcher"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `"ok"`))
}
