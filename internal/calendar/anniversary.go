package calendar

import "fmt"

// AnniversaryOf returns the date in year on which an event that happened on
// day/month is remembered. Adar becomes Adar II in a leap year, either Adar
// of a leap year becomes Adar in a common year, and the 30th of a month
// that has only 29 days that year falls back to the 29th.
func AnniversaryOf(day, month, year int) (HebrewDate, error) {
	if month < 1 || month > 14 || day < 1 || day > 30 {
		return HebrewDate{}, fmt.Errorf("%w: day %d of month %d", ErrInvalidHebrewDate, day, month)
	}
	if year < MinYear {
		return HebrewDate{}, fmt.Errorf("%w: year %d before %d", ErrInvalidHebrewDate, year, MinYear)
	}

	size := YearLength(year)
	switch {
	case month == 6 && isLeapSize(size):
		month = 14
	case (month == 13 || month == 14) && !isLeapSize(size):
		month = 6
	}

	if n := MonthLength(month, size); day > n {
		day = n
	}

	return FromHebrew(day, month, year)
}
