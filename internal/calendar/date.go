package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidGregorianDate is returned for a day, month or year outside
	// the proleptic Gregorian calendar.
	ErrInvalidGregorianDate = errors.New("invalid gregorian date")

	// ErrInvalidHebrewDate is returned for a month that does not exist in the
	// given year or a day beyond the month's length.
	ErrInvalidHebrewDate = errors.New("invalid hebrew date")
)

// Weekdays, 1-based from Sunday.
const (
	Sunday    = 1
	Monday    = 2
	Tuesday   = 3
	Wednesday = 4
	Thursday  = 5
	Friday    = 6
	Saturday  = 7
)

// HebrewDate is a single day expressed in both calendars together with the
// properties of its Hebrew year. The zero value is not meaningful; use one
// of the constructors.
type HebrewDate struct {
	day, month, year    int
	gDay, gMonth, gYear int
	jdn                 int
	weekday             int
	sizeOfYear          int
	newYearWeekday      int
	daysIntoYear        int
	weekOfYear          int
}

// FromJDN builds the date for a Julian Day Number.
func FromJDN(jdn int) HebrewDate {
	d := HebrewDate{jdn: jdn}
	d.gDay, d.gMonth, d.gYear = JDNToGregorian(jdn)
	d.day, d.month, d.year = JDNToHebrew(jdn)

	d.weekday = (jdn+1)%7 + 1

	tishrei := HebrewToJDN(1, 1, d.year)
	d.sizeOfYear = HebrewToJDN(1, 1, d.year+1) - tishrei
	d.newYearWeekday = (tishrei+1)%7 + 1

	d.daysIntoYear = jdn - tishrei + 1
	d.weekOfYear = ((d.daysIntoYear-1)+(d.newYearWeekday-1))/7 + 1

	return d
}

// FromGregorian builds the date for a Gregorian day, month and year.
func FromGregorian(day, month, year int) (HebrewDate, error) {
	if !ValidGregorian(day, month, year) {
		return HebrewDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidGregorianDate, year, month, day)
	}
	return FromJDN(GregorianToJDN(day, month, year)), nil
}

// FromHebrew builds the date for a Hebrew day, month and year.
func FromHebrew(day, month, year int) (HebrewDate, error) {
	if year < MinYear {
		return HebrewDate{}, fmt.Errorf("%w: year %d before %d", ErrInvalidHebrewDate, year, MinYear)
	}
	n := MonthLength(month, YearLength(year))
	if n == 0 {
		return HebrewDate{}, fmt.Errorf("%w: month %d does not exist in %d", ErrInvalidHebrewDate, month, year)
	}
	if day < 1 || day > n {
		return HebrewDate{}, fmt.Errorf("%w: day %d of month %d in %d", ErrInvalidHebrewDate, day, month, year)
	}
	return FromJDN(HebrewToJDN(day, month, year)), nil
}

// FromTime uses the calendar date of t in t's own location.
func FromTime(t time.Time) HebrewDate {
	y, m, d := t.Date()
	return FromJDN(GregorianToJDN(d, int(m), y))
}

// Today returns the current date according to clock.
func Today(clock Clock) HebrewDate {
	return FromTime(clock.Now())
}

func (d HebrewDate) Day() int            { return d.day }
func (d HebrewDate) Month() int          { return d.month }
func (d HebrewDate) Year() int           { return d.year }
func (d HebrewDate) GregorianDay() int   { return d.gDay }
func (d HebrewDate) GregorianMonth() int { return d.gMonth }
func (d HebrewDate) GregorianYear() int  { return d.gYear }
func (d HebrewDate) JDN() int            { return d.jdn }

// Weekday is 1 for Sunday through 7 for Saturday.
func (d HebrewDate) Weekday() int { return d.weekday }

// SizeOfYear is the length in days of the Hebrew year.
func (d HebrewDate) SizeOfYear() int { return d.sizeOfYear }

// NewYearWeekday is the weekday of 1 Tishrei of the Hebrew year.
func (d HebrewDate) NewYearWeekday() int { return d.newYearWeekday }

// DaysIntoYear is 1 on 1 Tishrei.
func (d HebrewDate) DaysIntoYear() int { return d.daysIntoYear }

// WeekOfYear counts Sunday-started weeks, the week of 1 Tishrei being 1.
func (d HebrewDate) WeekOfYear() int { return d.weekOfYear }

func (d HebrewDate) YearType() int    { return YearType(d.sizeOfYear, d.newYearWeekday) }
func (d HebrewDate) Keviah() int      { return Keviah(d.YearType()) }
func (d HebrewDate) IsLeapYear() bool { return isLeapSize(d.sizeOfYear) }

// Time returns midnight UTC of the Gregorian date.
func (d HebrewDate) Time() time.Time {
	return time.Date(d.gYear, time.Month(d.gMonth), d.gDay, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier for negative n).
func (d HebrewDate) AddDays(n int) HebrewDate {
	return FromJDN(d.jdn + n)
}

// NextShabbat returns the first Saturday on or after d.
func (d HebrewDate) NextShabbat() HebrewDate {
	return d.AddDays(Saturday - d.weekday)
}

// String formats the date as "day/month/year (YYYY-MM-DD)".
func (d HebrewDate) String() string {
	return fmt.Sprintf("%d/%d/%d (%04d-%02d-%02d)", d.day, d.month, d.year, d.gYear, d.gMonth, d.gDay)
}

// MarshalJSON exposes every derived field.
func (d HebrewDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Day            int    `json:"day"`
		Month          int    `json:"month"`
		MonthName      string `json:"month_name"`
		Year           int    `json:"year"`
		Gregorian      string `json:"gregorian"`
		JDN            int    `json:"jdn"`
		Weekday        int    `json:"weekday"`
		SizeOfYear     int    `json:"size_of_year"`
		YearType       int    `json:"year_type"`
		NewYearWeekday int    `json:"new_year_weekday"`
		DaysIntoYear   int    `json:"days_into_year"`
		WeekOfYear     int    `json:"week_of_year"`
		Leap           bool   `json:"leap"`
	}{
		Day:            d.day,
		Month:          d.month,
		MonthName:      MonthName(d.month),
		Year:           d.year,
		Gregorian:      fmt.Sprintf("%04d-%02d-%02d", d.gYear, d.gMonth, d.gDay),
		JDN:            d.jdn,
		Weekday:        d.weekday,
		SizeOfYear:     d.sizeOfYear,
		YearType:       d.YearType(),
		NewYearWeekday: d.newYearWeekday,
		DaysIntoYear:   d.daysIntoYear,
		WeekOfYear:     d.weekOfYear,
		Leap:           d.IsLeapYear(),
	})
}

var monthNames = [...]string{
	"", "Tishrei", "Heshvan", "Kislev", "Tevet", "Shvat", "Adar",
	"Nisan", "Iyar", "Sivan", "Tammuz", "Av", "Elul", "Adar I", "Adar II",
}

// MonthName returns the English transliteration of a Hebrew month number.
func MonthName(month int) string {
	if month < 1 || month >= len(monthNames) {
		return ""
	}
	return monthNames[month]
}
