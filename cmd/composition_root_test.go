package cmd_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkout/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WithoutDatabase(t *testing.T) {
	config, err := cmd.ConfigFromLookup(func(string) (string, bool) { return "", false })
	require.NoError(t, err)
	db, err := cmd.OpenDatabase(config)
	require.NoError(t, err)
	require.Nil(t, db)

	root := cmd.NewCompositionRoot(config, db, slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("should leave stats disabled", func(t *testing.T) {
		assert.Nil(t, root.CreateGetSubmissionStatsQueryHandler())

		e, err := root.NewRouter()
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/checkout/stats", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should share sessions between handlers", func(t *testing.T) {
		e, err := root.NewRouter()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout/sessions", nil))
		require.Equal(t, http.StatusCreated, rec.Code)

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/checkout/sessions/"+created.ID, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should start and stop the expiry job", func(t *testing.T) {
		jobManager := root.NewJobManager()

		require.NoError(t, jobManager.StartAll())
		jobManager.StopAll()
	})
}

func TestCompositionRoot_BadSweepSchedule(t *testing.T) {
	config, err := cmd.ConfigFromLookup(func(string) (string, bool) { return "", false })
	require.NoError(t, err)
	config.SessionSweepSchedule = "every minute"
	config.SessionTTL = time.Minute

	root := cmd.NewCompositionRoot(config, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, root.NewJobManager().StartAll())
}
