// Command dategen prints every day of a Hebrew year with its holiday,
// parasha and omer codes. The output is handy for eyeballing a year against
// a printed luach or for diffing two rule sets.
//
// Usage:
//
//	go run ./cmd/dategen -year 5785
//	go run ./cmd/dategen -date "2025-04-13" -diaspora -holidays
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/tkuchiki/parsetime"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

var weekdayNames = [...]string{"", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func main() {
	year := flag.Int("year", 0, "Hebrew year to print (default: the current year)")
	date := flag.String("date", "", "Any Gregorian date inside the year to print, e.g. 2025-04-13")
	diaspora := flag.Bool("diaspora", false, "Use diaspora holiday and parasha rules")
	holidaysOnly := flag.Bool("holidays", false, "Only print days with a holiday or parasha")
	asCSV := flag.Bool("csv", false, "Write CSV instead of a table")
	flag.Parse()

	hebrewYear, err := resolveYear(*year, *date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	first, err := calendar.FromHebrew(1, 1, hebrewYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rows := collect(first, *diaspora, *holidaysOnly)

	if *asCSV {
		if err := writeCSV(rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printHeader(first, *diaspora)
	for _, r := range rows {
		fmt.Printf("%-10s %s  %2d %-8s %3d  %-22s %-26s %s\n",
			r.gregorian, weekdayNames[r.weekday], r.day, calendar.MonthName(r.month),
			int(r.holiday), r.holiday, r.parasha, omerString(r.omer))
	}
	fmt.Printf("\n%d days printed\n", len(rows))
}

// resolveYear picks the Hebrew year from -year, else from -date, else today.
func resolveYear(year int, date string) (int, error) {
	if year != 0 {
		if year < calendar.MinYear {
			return 0, fmt.Errorf("year must be at least %d", calendar.MinYear)
		}
		return year, nil
	}
	if date == "" {
		return calendar.Today(calendar.RealClock{}).Year(), nil
	}

	pt, err := parsetime.NewParseTime()
	if err != nil {
		return 0, fmt.Errorf("cannot parse date %q: %w", date, err)
	}
	t, err := pt.Parse(date)
	if err != nil {
		return 0, fmt.Errorf("cannot parse date %q: %w", date, err)
	}
	return calendar.FromTime(t).Year(), nil
}

type row struct {
	gregorian string
	weekday   int
	day       int
	month     int
	holiday   calendar.Holiday
	parasha   calendar.Parasha
	omer      int
}

func collect(first calendar.HebrewDate, diaspora, holidaysOnly bool) []row {
	rows := make([]row, 0, first.SizeOfYear())
	for i := 0; i < first.SizeOfYear(); i++ {
		d := first.AddDays(i)
		r := row{
			gregorian: d.Time().Format("2006-01-02"),
			weekday:   d.Weekday(),
			day:       d.Day(),
			month:     d.Month(),
			holiday:   calendar.HolidayOf(d, diaspora),
			parasha:   calendar.ParashaOf(d, diaspora),
			omer:      calendar.OmerDay(d),
		}
		if holidaysOnly && r.holiday == calendar.NoHoliday && r.parasha == calendar.NoParasha {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

func printHeader(first calendar.HebrewDate, diaspora bool) {
	rules := "Israel"
	if diaspora {
		rules = "diaspora"
	}

	fmt.Printf("=== Hebrew year %d (%s rules) ===\n\n", first.Year(), rules)
	fmt.Printf("  Length:        %d days\n", first.SizeOfYear())
	fmt.Printf("  Leap:          %v\n", first.IsLeapYear())
	fmt.Printf("  Rosh Hashana:  %s %s\n", weekdayNames[first.Weekday()], first.Time().Format("2006-01-02"))
	fmt.Printf("  Year type:     %d (keviah %d)\n", first.YearType(), first.Keviah())
	fmt.Println()
}

func writeCSV(rows []row) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"gregorian", "weekday", "hebrew_day", "hebrew_month", "holiday", "holiday_name", "parasha", "parasha_name", "omer"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.gregorian,
			strconv.Itoa(r.weekday),
			strconv.Itoa(r.day),
			strconv.Itoa(r.month),
			strconv.Itoa(int(r.holiday)),
			r.holiday.String(),
			strconv.Itoa(int(r.parasha)),
			r.parasha.String(),
			strconv.Itoa(r.omer),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func omerString(day int) string {
	if day == 0 {
		return ""
	}
	return fmt.Sprintf("omer %d", day)
}
