package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gdate(t *testing.T, day, month, year int) HebrewDate {
	t.Helper()
	d, err := FromGregorian(day, month, year)
	require.NoError(t, err)
	return d
}

func TestParashaOf(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		diaspora         bool
		want             Parasha
	}{
		{"Shabbat Shuva 5785", 5, 10, 2024, false, HaAzinu},
		{"Yom Kippur on Shabbat", 12, 10, 2024, false, NoParasha},
		{"Shabbat Chol HaMoed", 19, 10, 2024, false, NoParasha},
		{"Bereshit", 26, 10, 2024, false, Bereshit},
		{"Noach", 2, 11, 2024, false, Parasha(2)},
		{"Vayakhel read alone in 5785", 22, 3, 2025, false, Vayakhel},
		{"Pekudei read alone in 5785", 29, 3, 2025, false, Pekudei},
		{"Shabbat Chol HaMoed Pesach", 19, 4, 2025, false, NoParasha},
		{"Shemini", 26, 4, 2025, false, Parasha(26)},
		{"Tazria-Metzora", 3, 5, 2025, false, TazriaMetzora},
		{"not Shabbat", 25, 10, 2024, false, NoParasha},
		{"22 Tishrei on a weekday", 24, 10, 2024, false, VezotHaberakhah},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParashaOf(gdate(t, tt.day, tt.month, tt.year), tt.diaspora))
		})
	}
}

func TestParashaOfDiasporaPesachOnShabbat(t *testing.T) {
	// 22 Nisan 5782 was Shabbat; abroad it is the eighth day of Pesach and
	// the readings stay a week behind until Matot-Masei.
	eighth := gdate(t, 23, 4, 2022)
	require.Equal(t, 22, eighth.Day())

	assert.Equal(t, AchreiMot, ParashaOf(eighth, false))
	assert.Equal(t, NoParasha, ParashaOf(eighth, true))

	next := eighth.AddDays(7)
	assert.Equal(t, Kedoshim, ParashaOf(next, false))
	assert.Equal(t, AchreiMot, ParashaOf(next, true))

	assert.Equal(t, Matot, ParashaOf(gdate(t, 23, 7, 2022), false))
	assert.Equal(t, Masei, ParashaOf(gdate(t, 30, 7, 2022), false))
	assert.Equal(t, Parasha(41), ParashaOf(gdate(t, 23, 7, 2022), true))
	assert.Equal(t, MatotMasei, ParashaOf(gdate(t, 30, 7, 2022), true))
}

func TestParashaOfDiasporaShavuotOnShabbat(t *testing.T) {
	// 7 Sivan 5783 was Shabbat
	second := gdate(t, 27, 5, 2023)
	require.Equal(t, 7, second.Day())
	require.Equal(t, 9, second.Month())

	assert.Equal(t, Parasha(35), ParashaOf(second, false))
	assert.Equal(t, NoParasha, ParashaOf(second, true))
	assert.Equal(t, Parasha(35), ParashaOf(second.AddDays(7), true))

	assert.Equal(t, Balak, ParashaOf(gdate(t, 1, 7, 2023), false))
	assert.Equal(t, ChukatBalak, ParashaOf(gdate(t, 1, 7, 2023), true))
	assert.Equal(t, Parasha(41), ParashaOf(gdate(t, 8, 7, 2023), true))
}

// Every reading from Bereshit to Nitzavim is read exactly once a year,
// either alone or joined with its neighbour.
func TestParashaOfCoversTorah(t *testing.T) {
	for year := 5700; year <= 5850; year++ {
		for _, diaspora := range []bool{false, true} {
			first := hdate(t, 1, 1, year)
			count := map[Parasha]int{}

			for d := first.NextShabbat(); d.Year() == year; d = d.AddDays(7) {
				for _, p := range ParashaOf(d, diaspora).Parts() {
					count[p]++
				}
			}

			for p := Bereshit; p <= Nitzavim; p++ {
				require.Equal(t, 1, count[p], "%s in %d (diaspora %v)", p, year, diaspora)
			}
			require.Equal(t, 1, count[HaAzinu], "Ha'Azinu in %d", year)
		}
	}
}

func TestParashaParts(t *testing.T) {
	assert.Nil(t, NoParasha.Parts())
	assert.Equal(t, []Parasha{Bereshit}, Bereshit.Parts())
	assert.Equal(t, []Parasha{Vayakhel, Pekudei}, VayakhelPekudei.Parts())
	assert.Equal(t, []Parasha{Nitzavim, Vayeilech}, NitzavimVayeilech.Parts())
	assert.Equal(t, []Parasha{VezotHaberakhah}, VezotHaberakhah.Parts())
}

func TestParashaString(t *testing.T) {
	assert.Equal(t, "Bereshit", Bereshit.String())
	assert.Equal(t, "Noach", Parasha(2).String())
	assert.Equal(t, "Nitzavim-Vayeilech", NitzavimVayeilech.String())
	assert.Equal(t, "", Parasha(62).String())
}
