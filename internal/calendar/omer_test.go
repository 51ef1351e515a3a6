package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOmerDay(t *testing.T) {
	first := hdate(t, 16, 7, 5785)

	tests := []struct {
		name string
		date HebrewDate
		want int
	}{
		{"Pesach", first.AddDays(-1), 0},
		{"first day", first, 1},
		{"one week", first.AddDays(6), 7},
		{"Lag B'Omer", hdate(t, 18, 8, 5785), 33},
		{"last day", hdate(t, 5, 9, 5785), 49},
		{"Shavuot", hdate(t, 6, 9, 5785), 0},
		{"Tishrei", hdate(t, 1, 1, 5785), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OmerDay(tt.date))
		})
	}
}

func TestOmerDayShabbatAfterPesach(t *testing.T) {
	// Pesach 5778 began on Shabbat, so the following Shabbat ends the first week
	d := gdate(t, 7, 4, 2018)
	assert.Equal(t, Saturday, d.Weekday())
	assert.Equal(t, 7, OmerDay(d))
}
