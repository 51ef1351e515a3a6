// Package calendar implements Hebrew calendar arithmetic: conversion between
// Gregorian dates, Julian Day Numbers and Hebrew dates, and the derived
// holiday, weekly Torah reading, Omer and Daf Yomi lookups.
package calendar

import "fmt"

// Time is measured in halakim ("parts"), 1080 to the hour.
const (
	partsPerHour  = 1080
	partsPerDay   = 24 * partsPerHour
	partsPerWeek  = 7 * partsPerDay
	partsPerMonth = partsPerDay + 12*partsPerHour + 793

	// Molad of Tishrei 3744, counted from Saturday 18:00.
	molad3744 = (1+6)*partsPerHour + 779

	// JDN of day 0 of DaysSinceEpoch.
	epochJDN = 1715118
)

// MinYear is the earliest Hebrew year the arithmetic is defined for.
const MinYear = 3761

func hm(hours, parts int) int { return hours*partsPerHour + parts }

// DaysSinceEpoch returns the day number of 1 Tishrei of year, counted from
// the epoch used by HebrewToJDN. The molad zaken, GaTaRaD, BeTUTaKPaT and
// Lo ADU Rosh deferrals are applied.
func DaysSinceEpoch(year int) int {
	y := year - 3744

	leapMonths := (y*7 + 1) / 19
	leapLeft := (y*7 + 1) % 19
	months := y*12 + leapMonths

	parts := months*partsPerMonth + molad3744
	days := months*28 + parts/partsPerDay - 2

	partsInWeek := parts % partsPerWeek
	partsInDay := parts % partsPerDay
	weekDay := partsInWeek / partsPerDay

	// molad zaken in a 12-month year (GaTaRaD) or after a leap year (BeTUTaKPaT)
	if (leapLeft < 12 && weekDay == 3 && partsInDay >= hm(9+6, 204)) ||
		(leapLeft < 7 && weekDay == 2 && partsInDay >= hm(15+6, 589)) {
		days++
		weekDay++
	}

	// Lo ADU Rosh
	if weekDay == 1 || weekDay == 4 || weekDay == 6 {
		days++
	}

	return days
}

// YearLength returns the number of days in a Hebrew year.
func YearLength(year int) int {
	n := DaysSinceEpoch(year+1) - DaysSinceEpoch(year)
	switch n {
	case 353, 354, 355, 383, 384, 385:
		return n
	}
	panic(fmt.Sprintf("calendar: year %d has impossible length %d", year, n))
}

// IsLeapYear reports whether year has 13 months.
func IsLeapYear(year int) bool {
	return YearLength(year) > 365
}

func isLeapSize(sizeOfYear int) bool { return sizeOfYear > 365 }

// YearType folds a year length and the weekday of 1 Tishrei (2, 3, 5 or 7)
// into a single index 1..24.
func YearType(sizeOfYear, newYearWeekday int) int {
	dw := newYearWeekday - 1
	if dw > 2 {
		dw--
	}
	if dw > 3 {
		dw--
	}

	size := sizeOfYear%10 - 3
	if sizeOfYear > 355 {
		size += 3
	}

	return size*4 + dw
}

// legal (length, weekday) combinations, indexed by YearType-1
var keviot = [24]int{
	1, 0, 0, 2, // 353: Mon Tue Thu Sat
	0, 3, 4, 0, // 354
	5, 0, 6, 7, // 355
	8, 0, 9, 10, // 383
	0, 11, 0, 0, // 384
	12, 0, 13, 14, // 385
}

// Keviah maps a YearType to the 1..14 index of the fourteen year patterns
// that actually occur. It returns 0 for combinations the calendar never
// produces.
func Keviah(yearType int) int {
	if yearType < 1 || yearType > len(keviot) {
		return 0
	}
	return keviot[yearType-1]
}

// HebrewToJDN returns the JDN of a Hebrew date. Month 13 is Adar I and
// 14 is Adar II. The date is not validated.
func HebrewToJDN(day, month, year int) int {
	size := YearLength(year)

	switch month {
	case 13:
		month = 6
	case 14:
		month = 6
		day += 30
	}

	day = DaysSinceEpoch(year) + (59*(month-1)+1)/2 + day

	// long Heshvan
	if size%10 > 4 && month > 2 {
		day++
	}
	// short Kislev
	if size%10 < 4 && month > 3 {
		day--
	}
	// leap year: Adar I sits before the remaining months
	if isLeapSize(size) && month > 6 {
		day += 30
	}

	return day + epochJDN
}

// JDNToHebrew converts a JDN into a Hebrew day, month and year.
func JDNToHebrew(jdn int) (day, month, year int) {
	_, _, gy := JDNToGregorian(jdn)

	// Rosh Hashanah never precedes September, so this overshoots by at most one.
	year = gy + 3761
	for i := 0; HebrewToJDN(1, 1, year) > jdn; i++ {
		if i > 2 {
			panic(fmt.Sprintf("calendar: year search for JDN %d did not converge", jdn))
		}
		year--
	}

	size := YearLength(year)
	months := monthsOf(size)
	tishrei := HebrewToJDN(1, 1, year)

	// No month is shorter than 29 days, so dividing by 28 never undershoots.
	idx := (jdn - tishrei) / 28
	if idx >= len(months) {
		idx = len(months) - 1
	}
	for i := 0; HebrewToJDN(1, months[idx], year) > jdn; i++ {
		if i > 2 || idx == 0 {
			panic(fmt.Sprintf("calendar: month search for JDN %d did not converge", jdn))
		}
		idx--
	}

	month = months[idx]
	day = jdn - HebrewToJDN(1, month, year) + 1
	return day, month, year
}

var (
	regularMonths = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	leapMonths    = []int{1, 2, 3, 4, 5, 13, 14, 7, 8, 9, 10, 11, 12}
)

func monthsOf(sizeOfYear int) []int {
	if isLeapSize(sizeOfYear) {
		return leapMonths
	}
	return regularMonths
}

// MonthsInYear returns the month numbers of year in order, Tishrei first.
func MonthsInYear(year int) []int {
	m := monthsOf(YearLength(year))
	out := make([]int, len(m))
	copy(out, m)
	return out
}

// MonthLength returns the number of days of month in a year of the given
// size, or 0 if the month does not exist in such a year.
func MonthLength(month, sizeOfYear int) int {
	leap := isLeapSize(sizeOfYear)

	switch month {
	case 1, 5, 7, 9, 11:
		return 30
	case 4, 8, 10, 12:
		return 29
	case 2:
		if sizeOfYear%10 == 5 {
			return 30
		}
		return 29
	case 3:
		if sizeOfYear%10 == 3 {
			return 29
		}
		return 30
	case 6:
		if leap {
			return 0
		}
		return 29
	case 13:
		if !leap {
			return 0
		}
		return 30
	case 14:
		if !leap {
			return 0
		}
		return 29
	}
	return 0
}

// NextMonth returns the month after month, wrapping Elul to Tishrei.
func NextMonth(month, sizeOfYear int) int {
	switch {
	case month == 14:
		return 7
	case month == 5 && isLeapSize(sizeOfYear):
		return 13
	case month == 12:
		return 1
	}
	return month + 1
}

// PrevMonth returns the month before month, wrapping Tishrei to Elul.
func PrevMonth(month, sizeOfYear int) int {
	switch {
	case month == 13:
		return 5
	case month == 7 && isLeapSize(sizeOfYear):
		return 14
	case month == 1:
		return 12
	}
	return month - 1
}
