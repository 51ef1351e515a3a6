package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	days []CustomDay
	err  error
}

func (f *fakeStore) ListCustomDays(ctx context.Context) ([]CustomDay, error) {
	return f.days, f.err
}

func TestResolveDate(t *testing.T) {
	store := &fakeStore{days: []CustomDay{
		{ID: 1, Name: "Grandfather", Month: 10, Day: 1, Kind: "yahrzeit"},
		{ID: 2, Name: "Wedding", Month: 2, Day: 3, Kind: "anniversary"},
	}}
	dr := NewDateResolver(store)

	info, err := dr.ResolveDate(context.Background(), time.Date(2024, 10, 12, 9, 0, 0, 0, time.UTC), false)
	require.NoError(t, err)

	assert.Equal(t, YomKippur, info.Holiday)
	assert.Equal(t, "Yom Kippur", info.HolidayName)
	assert.Equal(t, YomTov, info.HolidayType)
	assert.Equal(t, NoParasha, info.Parasha)
	assert.Equal(t, NoParasha, info.WeeklyParasha)
	assert.Zero(t, info.Omer)
	require.NotNil(t, info.DafYomi)
	assert.Empty(t, info.CustomDays)
}

func TestResolveDateWeeklyParasha(t *testing.T) {
	dr := NewDateResolver(nil)

	// Sunday 27 October 2024 looks ahead to Noach
	info, err := dr.ResolveDate(context.Background(), time.Date(2024, 10, 27, 0, 0, 0, 0, time.UTC), false)
	require.NoError(t, err)

	assert.Equal(t, NoParasha, info.Parasha)
	assert.Equal(t, Parasha(2), info.WeeklyParasha)
	assert.Equal(t, "Noach", info.WeeklyName)
	assert.NotNil(t, info.CustomDays)
}

func TestResolveJDNCustomDays(t *testing.T) {
	store := &fakeStore{days: []CustomDay{
		{ID: 1, Name: "Purim birthday", Month: 6, Day: 14, Kind: "birthday"},
		{ID: 2, Name: "Other", Month: 1, Day: 1, Kind: "other"},
	}}
	dr := NewDateResolver(store)

	// Adar becomes Adar II in a leap year
	info, err := dr.ResolveJDN(context.Background(), HebrewToJDN(14, 14, 5784), false)
	require.NoError(t, err)

	require.Len(t, info.CustomDays, 1)
	assert.Equal(t, "Purim birthday", info.CustomDays[0].Name)
	assert.Equal(t, Purim, info.Holiday)
}

func TestResolveRange(t *testing.T) {
	dr := NewDateResolver(&fakeStore{})
	ctx := context.Background()

	start := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	days, err := dr.ResolveRange(ctx, start, start.AddDate(0, 0, 9), true)
	require.NoError(t, err)
	require.Len(t, days, 10)

	assert.Equal(t, ErevPesach, days[0].Holiday)
	assert.Equal(t, Pesach, days[1].Holiday)
	assert.Equal(t, PesachII, days[2].Holiday)
	assert.Equal(t, PesachVIII, days[8].Holiday)
	assert.Equal(t, NoHoliday, days[9].Holiday)
	assert.Equal(t, 1, days[2].Omer)
	for i := 1; i < len(days); i++ {
		assert.Equal(t, days[i-1].Date.JDN()+1, days[i].Date.JDN())
	}

	_, err = dr.ResolveRange(ctx, start, start.AddDate(0, 0, MaxRangeDays), false)
	assert.ErrorIs(t, err, ErrRangeTooLarge)

	_, err = dr.ResolveRange(ctx, start, start.AddDate(0, 0, -1), false)
	assert.Error(t, err)
}

func TestResolveStoreError(t *testing.T) {
	boom := errors.New("boom")
	dr := NewDateResolver(&fakeStore{err: boom})

	_, err := dr.ResolveJDN(context.Background(), 2460587, false)
	assert.ErrorIs(t, err, boom)
}
