package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/hdate-api/internal/database"
	"github.com/zapponejosh/hdate-api/internal/logger"
)

func TestParseCustomDays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"array", `[{"name":"A","hebrew_month":5,"hebrew_day":12}]`, 1, false},
		{"object", ` {"custom_days":[{"name":"A","hebrew_month":5,"hebrew_day":12},{"name":"B","hebrew_month":7,"hebrew_day":1}]}`, 2, false},
		{"empty object", `{}`, 0, false},
		{"empty file", "  \n", 0, true},
		{"not json", `yahrzeit`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := parseCustomDays([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, days, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	days, err := parseCustomDays([]byte(`[
		{"name":"Grandfather","hebrew_month":5,"hebrew_day":12,"kind":"yahrzeit"},
		{"name":"Untyped","hebrew_month":13,"hebrew_day":30}
	]`))
	require.NoError(t, err)

	require.NoError(t, validate(days, logger.Discard()))
	assert.Equal(t, string(database.KindOther), days[1].Kind)

	days[0].Month = 15
	err = validate(days, logger.Discard())
	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrInvalid))
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "days.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"custom_days":[
		{"name":"Grandfather","hebrew_month":5,"hebrew_day":12,"kind":"yahrzeit"},
		{"name":"Wedding","hebrew_month":9,"hebrew_day":25,"kind":"anniversary"}
	]}`), 0o644))

	opts := options{jsonPath: jsonPath, dbPath: filepath.Join(dir, "db", "hdate.db")}
	ctx := context.Background()

	require.NoError(t, run(ctx, opts, logger.Discard()))
	require.NoError(t, run(ctx, opts, logger.Discard()))

	db, err := database.Open(database.DefaultConfig(opts.dbPath), logger.Discard())
	require.NoError(t, err)
	defer db.Close()

	stored, err := db.ListCustomDays(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRun_DryRunLeavesNoDatabase(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "days.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"A","hebrew_month":1,"hebrew_day":1}]`), 0o644))

	dbPath := filepath.Join(dir, "hdate.db")
	require.NoError(t, run(context.Background(), options{jsonPath: jsonPath, dbPath: dbPath, dryRun: true}, logger.Discard()))

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
}
