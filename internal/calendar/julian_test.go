package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGregorianToJDN(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		want             int
	}{
		{"J2000 epoch", 1, 1, 2000, 2451545},
		{"Rosh Hashana 5785", 3, 10, 2024, 2460587},
		{"daf yomi cycle start", 2, 3, 2005, 2453432},
		{"gregorian reform", 15, 10, 1582, 2299161},
		{"leap day", 29, 2, 2024, 2460370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GregorianToJDN(tt.day, tt.month, tt.year))

			d, m, y := JDNToGregorian(tt.want)
			assert.Equal(t, []int{tt.day, tt.month, tt.year}, []int{d, m, y})
		})
	}
}

func TestJDNToGregorianRoundTrip(t *testing.T) {
	start := GregorianToJDN(1, 1, 1800)
	end := GregorianToJDN(31, 12, 2300)

	for jdn := start; jdn <= end; jdn++ {
		d, m, y := JDNToGregorian(jdn)
		if !ValidGregorian(d, m, y) {
			t.Fatalf("JDN %d gave invalid date %d-%d-%d", jdn, y, m, d)
		}
		if got := GregorianToJDN(d, m, y); got != jdn {
			t.Fatalf("JDN %d -> %d-%d-%d -> %d", jdn, y, m, d, got)
		}
	}
}

func TestValidGregorian(t *testing.T) {
	tests := []struct {
		name             string
		day, month, year int
		want             bool
	}{
		{"ordinary", 15, 6, 2024, true},
		{"leap day", 29, 2, 2024, true},
		{"not a leap year", 29, 2, 2023, false},
		{"century not leap", 29, 2, 1900, false},
		{"400 year leap", 29, 2, 2000, true},
		{"april 31", 31, 4, 2024, false},
		{"month 13", 1, 13, 2024, false},
		{"day 0", 0, 1, 2024, false},
		{"year 0", 1, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGregorian(tt.day, tt.month, tt.year))
		})
	}
}
