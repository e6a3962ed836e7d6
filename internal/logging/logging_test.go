package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBHandler_StoresErrorsOnly(t *testing.T) {
	db := dbtest.Open(t)
	h := newDBHandler(db, 10, time.Hour)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("request failed",
		"path", "/api/recipes",
		"user_id", "u-1",
		"error", errors.New("boom"),
		"method", "GET",
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "/api/recipes", entry.Route)
	assert.Equal(t, "boom", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(entry.Extra, &extra))
	assert.Equal(t, "GET", extra["method"])
}

func TestDBHandler_ExtrasSurviveOddValues(t *testing.T) {
	db := dbtest.Open(t)
	h := newDBHandler(db, 10, time.Hour)

	slog.New(h).Error("upload failed",
		"cause", errors.New("disk full"),
		"callback", func() {},
		"ratio", math.NaN(),
		"took", 1500*time.Millisecond,
		slog.Group("recipe", "title", "Flan", "steps", 3),
	)
	h.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	require.NotEmpty(t, logs[0].Extra)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(logs[0].Extra, &extra))
	assert.Equal(t, "disk full", extra["cause"])
	assert.NotEmpty(t, extra["callback"])
	assert.Equal(t, "NaN", extra["ratio"])
	assert.Equal(t, "1.5s", extra["took"])
	assert.Equal(t, map[string]interface{}{"title": "Flan", "steps": float64(3)}, extra["recipe"])
}

func TestDBHandler_FlushesFullBatch(t *testing.T) {
	db := dbtest.Open(t)
	h := newDBHandler(db, 2, time.Hour)
	logger := slog.New(h)

	logger.Error("one")
	logger.Error("two")

	require.Eventually(t, func() bool {
		var count int64
		db.Model(&models.SystemLog{}).Count(&count)
		return count == 2
	}, 2*time.Second, 20*time.Millisecond)
	h.Stop()
}

func TestDBHandler_StopIsIdempotent(t *testing.T) {
	h := newDBHandler(dbtest.Open(t), 10, time.Hour)
	h.Stop()
	assert.NotPanics(t, h.Stop)
}

func TestMultiHandler_FansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	m := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(m).With("component", "test")

	assert.False(t, m.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("hello")
	logger.Error("bad")

	assert.Contains(t, info.String(), "hello")
	assert.Contains(t, info.String(), "bad")
	assert.NotContains(t, errs.String(), "hello")
	assert.Contains(t, errs.String(), `"component":"test"`)
}

func TestPurge(t *testing.T) {
	db := dbtest.Open(t)
	now := time.Now().UTC()
	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now.AddDate(0, 0, -1), Level: "ERROR", Message: "recent"},
	}).Error)

	deleted, err := purge(db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var left []models.SystemLog
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "recent", left[0].Message)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_KeepsGoingAfterFailure(t *testing.T) {
	var out bytes.Buffer
	m := NewMultiHandler(
		failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)},
		nil,
		slog.NewJSONHandler(&out, nil),
	)

	rec := slog.NewRecord(time.Now(), slog.LevelError, "after failure", 0)
	err := m.Handle(context.Background(), rec)

	assert.EqualError(t, err, "sink down")
	assert.Contains(t, out.String(), "after failure")
}
