package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/hdate-api/internal/api"
	"github.com/zapponejosh/hdate-api/internal/calendar"
	"github.com/zapponejosh/hdate-api/internal/config"
	"github.com/zapponejosh/hdate-api/internal/database"
	"github.com/zapponejosh/hdate-api/internal/logger"
)

const testKey = "apitest-key"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Discard()
	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Migrate(context.Background())
	require.NoError(t, err)

	cfg := &config.Config{Env: config.EnvDevelopment, APIKey: testKey, Timezone: "UTC"}
	now := calendar.FixedClock(time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC))
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log, now), cfg, log))
	t.Cleanup(srv.Close)
	return srv
}

func TestSuitePassesAgainstServer(t *testing.T) {
	srv := newServer(t)

	var out bytes.Buffer
	report := runChecks(context.Background(), NewClient(srv.URL, testKey), suite(true), &out, false)

	assert.Empty(t, report.Failed(), out.String())
	assert.Len(t, report.results, len(suite(true)))
	assert.Contains(t, out.String(), "--- Custom Days ---")
}

func TestSuiteWithoutKeySkipsWrites(t *testing.T) {
	for _, c := range suite(false) {
		assert.NotEqual(t, "Custom Days", c.group)
	}
}

func TestClientCall_APIError(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/", "")

	status, err := c.Call(context.Background(), http.MethodGet, "/api/v1/dates/jdn/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
}

func TestClientCall_WrongKey(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, "wrong")

	status, err := c.Call(context.Background(), http.MethodPost, "/api/v1/custom-days",
		customDay{Name: "x", Month: 1, Day: 1}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "UNAUTHORIZED", apiErr.Code)
}

func TestPrintSummary(t *testing.T) {
	report := &Report{results: []result{
		{check: check{group: "A", name: "ok"}},
		{check: check{group: "B", name: "bad"}, err: assert.AnError},
	}}

	var out bytes.Buffer
	printSummary(&out, report)

	assert.Contains(t, out.String(), "Passed: 1")
	assert.Contains(t, out.String(), "Failed: 1")
	assert.Contains(t, out.String(), "B / bad")
}
