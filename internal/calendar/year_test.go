package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeYear(t *testing.T) {
	s, err := SummarizeYear(5784, false)
	require.NoError(t, err)

	assert.Equal(t, 383, s.Length)
	assert.True(t, s.Leap)
	assert.Equal(t, 10, s.Keviah)
	assert.Equal(t, Saturday, s.NewYearWeekday)
	require.Len(t, s.Months, 13)

	assert.Equal(t, "2023-09-16", s.Months[0].FirstDay)
	assert.Equal(t, "Adar I", s.Months[5].Name)
	assert.Equal(t, 30, s.Months[5].Days)
	assert.Equal(t, "Adar II", s.Months[6].Name)

	require.NotEmpty(t, s.Holidays)
	assert.Equal(t, NoHoliday, HolidayOf(s.Holidays[0].Date.AddDays(-1), false))
	assert.Equal(t, RoshHashanaI, s.Holidays[0].Holiday)

	var purim *HolidayOccurrence
	for i := range s.Holidays {
		if s.Holidays[i].Holiday == Purim {
			purim = &s.Holidays[i]
		}
	}
	require.NotNil(t, purim)
	assert.Equal(t, 14, purim.Date.Month())
	assert.Equal(t, "Purim", purim.Name)
	assert.Equal(t, Feast, purim.Type)
}

func TestSummarizeYearDiaspora(t *testing.T) {
	israel, err := SummarizeYear(5785, false)
	require.NoError(t, err)
	abroad, err := SummarizeYear(5785, true)
	require.NoError(t, err)

	// Simchat Torah, Pesach VIII and Shavuot II are added; Sukkot II and
	// Pesach II change name but not count
	assert.Len(t, abroad.Holidays, len(israel.Holidays)+3)
}

func TestSummarizeYearInvalid(t *testing.T) {
	_, err := SummarizeYear(100, false)
	assert.ErrorIs(t, err, ErrInvalidHebrewDate)
}
