package main

import (
	"fmt"
	"time"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

// This script shows how the calendar resolves the dates that depend on
// weekday shifts or on the Israel/diaspora split.
// Run with: go run scripts/debug.go

func main() {
	trickyDates := []string{
		"2018-03-31", // Pesach on Shabbat, diaspora lags a week
		"2018-09-12", // Tzom Gedaliah on Wednesday
		"2019-05-09", // Yom HaAtzma'ut moved up from Friday 5 Iyar
		"2020-05-30", // Shavuot II on Shabbat, diaspora only
		"2022-07-17", // 17 Tammuz on Shabbat, fast moved to Sunday
		"2024-12-31", // 30 Kislev, only in a long Kislev
		"2025-03-13", // Ta'anit Esther on Thursday
		"2025-08-03", // 9 Av on Shabbat, fast moved to Sunday
		"2025-10-13", // Hoshana Raba
	}

	for _, year := range []int{5778, 5785} {
		first, _ := calendar.FromHebrew(1, 1, year)
		fmt.Printf("=== %d Key Dates ===\n", year)
		fmt.Printf("Rosh Hashana:  %s (weekday %d)\n", first.Time().Format("2006-01-02"), first.Weekday())
		fmt.Printf("Length:        %d days, leap %v\n", first.SizeOfYear(), first.IsLeapYear())
		fmt.Printf("Year type:     %d, keviah %d\n", first.YearType(), first.Keviah())
		fmt.Println()
	}

	fmt.Println("=== Tricky Dates ===")
	fmt.Println()

	for _, dateStr := range trickyDates {
		t, _ := time.Parse("2006-01-02", dateStr)
		d := calendar.FromTime(t)

		fmt.Printf("Date: %s (%s) = %d %s %d\n", dateStr, t.Weekday(), d.Day(), calendar.MonthName(d.Month()), d.Year())
		for _, diaspora := range []bool{false, true} {
			h := calendar.HolidayOf(d, diaspora)
			p := calendar.ParashaOf(d.NextShabbat(), diaspora)
			fmt.Printf("  diaspora=%-5v holiday=%2d %-20q shabbat reading=%2d %q\n", diaspora, int(h), h.String(), int(p), p.String())
		}
		fmt.Println()
	}
}
