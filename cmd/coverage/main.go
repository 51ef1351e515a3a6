// Command coverage sweeps a range of Hebrew years through the calendar
// core, checks that conversions round-trip and that every year reads the
// whole Torah, and reports which holiday codes occurred.
//
// Usage:
//
//	go run ./cmd/coverage -start 5700 -years 200
//	go run ./cmd/coverage -start 5785 -years 1 -o coverage.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

var canonicalLengths = map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}

// Failure is a single broken check.
type Failure struct {
	Year     int    `json:"year"`
	Date     string `json:"date,omitempty"`
	Diaspora bool   `json:"diaspora"`
	Check    string `json:"check"`
	Detail   string `json:"detail"`
}

// YearStats summarises one Hebrew year.
type YearStats struct {
	Year   int  `json:"year"`
	Length int  `json:"length"`
	Keviah int  `json:"keviah"`
	Days   int  `json:"days"`
	Failed bool `json:"failed"`
}

// Analysis collects the results of a sweep.
type Analysis struct {
	TotalDays   int                      `json:"total_days"`
	ByYear      []YearStats              `json:"by_year"`
	ByKeviah    map[int]int              `json:"by_keviah"`
	Holidays    map[calendar.Holiday]int `json:"holidays"`
	AllFailures []Failure                `json:"failures"`
}

func main() {
	startYear := flag.Int("start", 5700, "First Hebrew year")
	years := flag.Int("years", 200, "Number of years to check")
	outputFile := flag.String("o", "", "Output results to JSON file")
	quiet := flag.Bool("q", false, "Hide the progress bar")
	flag.Parse()

	if *startYear < calendar.MinYear || *years < 1 {
		fmt.Fprintf(os.Stderr, "Error: start must be at least %d and years positive\n", calendar.MinYear)
		os.Exit(1)
	}

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Hebrew Calendar - Coverage Sweep")
	fmt.Println("================================================================")
	fmt.Printf("Years:       %d to %d\n", *startYear, endYear)
	fmt.Printf("Total Years: %d\n", *years)
	fmt.Println()

	started := time.Now()
	analysis := sweep(*startYear, endYear, *quiet)

	printSummary(analysis, time.Since(started))
	printHolidayCoverage(analysis)
	printFailures(analysis)

	if *outputFile != "" {
		saveResults(*outputFile, analysis)
	}

	if len(analysis.AllFailures) > 0 {
		os.Exit(1)
	}
}

func sweep(startYear, endYear int, quiet bool) *Analysis {
	analysis := &Analysis{
		ByKeviah: make(map[int]int),
		Holidays: make(map[calendar.Holiday]int),
	}

	bar := progressbar.NewOptions(endYear-startYear+1,
		progressbar.OptionSetDescription("Checking years..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(!quiet),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Close()

	for year := startYear; year <= endYear; year++ {
		before := len(analysis.AllFailures)
		stats := checkYear(year, analysis)
		stats.Failed = len(analysis.AllFailures) > before

		analysis.ByYear = append(analysis.ByYear, stats)
		analysis.ByKeviah[stats.Keviah]++
		analysis.TotalDays += stats.Days
		bar.Add(1)
	}
	bar.Finish()

	return analysis
}

func checkYear(year int, analysis *Analysis) YearStats {
	fail := func(date string, diaspora bool, check, format string, args ...any) {
		analysis.AllFailures = append(analysis.AllFailures, Failure{
			Year:     year,
			Date:     date,
			Diaspora: diaspora,
			Check:    check,
			Detail:   fmt.Sprintf(format, args...),
		})
	}

	first, err := calendar.FromHebrew(1, 1, year)
	if err != nil {
		fail("", false, "new year", "%v", err)
		return YearStats{Year: year}
	}

	stats := YearStats{
		Year:   year,
		Length: first.SizeOfYear(),
		Keviah: first.Keviah(),
		Days:   first.SizeOfYear(),
	}

	if !canonicalLengths[stats.Length] {
		fail("", false, "year length", "%d days", stats.Length)
	}
	if stats.Keviah == 0 {
		fail("", false, "keviah", "year type %d has no keviah", first.YearType())
	}

	for i := 0; i < stats.Length; i++ {
		d := first.AddDays(i)
		date := d.Time().Format("2006-01-02")

		if got := calendar.HebrewToJDN(d.Day(), d.Month(), d.Year()); got != d.JDN() {
			fail(date, false, "hebrew round trip", "%s maps back to JDN %d", d, got)
		}
		if got, err := calendar.FromGregorian(d.GregorianDay(), d.GregorianMonth(), d.GregorianYear()); err != nil || got.JDN() != d.JDN() {
			fail(date, false, "gregorian round trip", "%s", d)
		}
		if d.DaysIntoYear() != i+1 {
			fail(date, false, "days into year", "got %d want %d", d.DaysIntoYear(), i+1)
		}

		for _, diaspora := range []bool{false, true} {
			if h := calendar.HolidayOf(d, diaspora); h != calendar.NoHoliday {
				analysis.Holidays[h]++
			}
		}
	}

	for _, diaspora := range []bool{false, true} {
		checkTorahCycle(first, diaspora, fail)
	}

	return stats
}

// checkTorahCycle verifies that every reading from Bereshit to Nitzavim is
// read once in the year, alone or joined, and Ha'Azinu exactly once.
func checkTorahCycle(first calendar.HebrewDate, diaspora bool, fail func(string, bool, string, string, ...any)) {
	count := make(map[calendar.Parasha]int)
	for d := first.NextShabbat(); d.Year() == first.Year(); d = d.AddDays(7) {
		for _, p := range calendar.ParashaOf(d, diaspora).Parts() {
			count[p]++
		}
	}

	for p := calendar.Bereshit; p <= calendar.Nitzavim; p++ {
		if count[p] != 1 {
			fail("", diaspora, "torah cycle", "%s read %d times", p, count[p])
		}
	}
	if count[calendar.HaAzinu] != 1 {
		fail("", diaspora, "torah cycle", "Ha'Azinu read %d times", count[calendar.HaAzinu])
	}
}

func printSummary(analysis *Analysis, elapsed time.Duration) {
	failedYears := 0
	for _, y := range analysis.ByYear {
		if y.Failed {
			failedYears++
		}
	}

	fmt.Println("================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================")
	fmt.Printf("Total Days Checked: %d\n", analysis.TotalDays)
	fmt.Printf("Years Checked:      %d\n", len(analysis.ByYear))
	fmt.Printf("Years Failed:       %d\n", failedYears)
	fmt.Printf("Failures:           %d\n", len(analysis.AllFailures))
	fmt.Printf("Time elapsed:       %v\n", elapsed.Round(time.Millisecond))
	fmt.Println()

	fmt.Println("By Keviah:")
	for k := 1; k <= 14; k++ {
		fmt.Printf("  %2d: %d years\n", k, analysis.ByKeviah[k])
	}
	if n := analysis.ByKeviah[0]; n > 0 {
		fmt.Printf("  ✗ impossible: %d years\n", n)
	}
	fmt.Println()
}

func printHolidayCoverage(analysis *Analysis) {
	fmt.Println("================================================================")
	fmt.Println("HOLIDAY COVERAGE")
	fmt.Println("================================================================")

	var missing []calendar.Holiday
	for h := calendar.RoshHashanaI; h <= calendar.ErevSukkot; h++ {
		n := analysis.Holidays[h]
		status := "✓"
		if n == 0 {
			status = "✗"
			missing = append(missing, h)
		}
		fmt.Printf("  %s %2d %-28s %6d days\n", status, int(h), h, n)
	}
	if len(missing) > 0 {
		fmt.Printf("\n%d holiday codes never occurred in this range\n", len(missing))
	}
	fmt.Println()
}

func printFailures(analysis *Analysis) {
	if len(analysis.AllFailures) == 0 {
		fmt.Println("No failures! 🎉")
		return
	}

	fmt.Println("================================================================")
	fmt.Println("FAILURES BY CHECK")
	fmt.Println("================================================================")

	byCheck := make(map[string][]Failure)
	for _, f := range analysis.AllFailures {
		byCheck[f.Check] = append(byCheck[f.Check], f)
	}

	checks := make([]string, 0, len(byCheck))
	for c := range byCheck {
		checks = append(checks, c)
	}
	sort.Slice(checks, func(i, j int) bool {
		return len(byCheck[checks[i]]) > len(byCheck[checks[j]])
	})

	for _, c := range checks {
		failures := byCheck[c]
		fmt.Printf("\n%s: %d failures\n", c, len(failures))
		for i, f := range failures {
			if i >= 5 {
				fmt.Printf("  ... and %d more\n", len(failures)-5)
				break
			}
			fmt.Printf("  - %d %s (diaspora %v): %s\n", f.Year, f.Date, f.Diaspora, f.Detail)
		}
	}
	fmt.Println()
}

func saveResults(filename string, analysis *Analysis) {
	output := struct {
		GeneratedAt string    `json:"generated_at"`
		Analysis    *Analysis `json:"analysis"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Analysis:    analysis,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
