package ics

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

func TestBuildYearFeed(t *testing.T) {
	s, err := calendar.SummarizeYear(5785, false)
	require.NoError(t, err)

	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	data, err := BuildYearFeed(s, now)
	require.NoError(t, err)

	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)

	assert.Equal(t, "Hebrew holidays 5785 (Israel)", cal.Props.Get(propCalName).Value)

	events := cal.Events()
	require.Len(t, events, len(s.Holidays))

	first := events[0]
	assert.Equal(t, "Rosh Hashana I", first.Props.Get(propSummary).Value)
	assert.Equal(t, "20241003", first.Props.Get(propDTStart).Value)
	assert.Equal(t, "20241004", first.Props.Get(propDTEnd).Value)
	assert.Equal(t, "Yom Tov", first.Props.Get(propCategories).Value)
	assert.Equal(t, "20240901T120000Z", first.Props.Get(propDTStamp).Value)

	uids := map[string]bool{}
	for _, e := range events {
		uid := e.Props.Get(propUID).Value
		assert.False(t, uids[uid], "duplicate uid %s", uid)
		uids[uid] = true
	}
}

func TestBuildYearFeedStable(t *testing.T) {
	s, err := calendar.SummarizeYear(5784, true)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, err := BuildYearFeed(s, now)
	require.NoError(t, err)
	b, err := BuildYearFeed(s, now)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Contains(t, string(a), "X-WR-CALNAME:Hebrew holidays 5784 (diaspora)")
}

func TestBuildYearFeedEmpty(t *testing.T) {
	_, err := BuildYearFeed(calendar.YearSummary{Year: 5785}, time.Now())
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestEventUID(t *testing.T) {
	s, err := calendar.SummarizeYear(5785, false)
	require.NoError(t, err)

	assert.Equal(t, "5785-2460587-1@hdate", EventUID(5785, s.Holidays[0]))
}
