package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Response shapes, reduced to the fields the checks read.

type hebrewDate struct {
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Year      int    `json:"year"`
	Gregorian string `json:"gregorian"`
	JDN       int    `json:"jdn"`
}

type dayInfo struct {
	Date        hebrewDate  `json:"date"`
	Holiday     int         `json:"holiday"`
	HolidayName string      `json:"holiday_name"`
	WeeklyName  string      `json:"weekly_parasha_name"`
	Omer        int         `json:"omer"`
	CustomDays  []customDay `json:"custom_days"`
}

type customDay struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Month int    `json:"hebrew_month"`
	Day   int    `json:"hebrew_day"`
	Kind  string `json:"kind"`
}

type yearSummary struct {
	Year     int  `json:"year"`
	Length   int  `json:"length"`
	Leap     bool `json:"leap"`
	Keviah   int  `json:"keviah"`
	Holidays []struct {
		Holiday int `json:"holiday"`
	} `json:"holidays"`
}

// check is one named smoke check. It returns a short description of what it saw
// or an error.
type check struct {
	group string
	name  string
	run   func(ctx context.Context, c *Client) (string, error)
}

// suite lists every check. Checks that write custom days are only
// included when the client has an API key.
func suite(withKey bool) []check {
	checks := []check{
		{"Health", "database reachable", checkHealth},
		{"Today", "today resolves", checkToday},
	}
	checks = append(checks, knownDateChecks()...)
	checks = append(checks,
		check{"Lookups", "14 Adar II 5784", checkHebrewLookup},
		check{"Lookups", "Pesach to Shavuot range", checkOmerRange},
		check{"Years", "5784 summary", checkLeapYear},
		check{"Years", "5784 calendar feed", checkFeed},
	)
	checks = append(checks, statusChecks()...)
	if withKey {
		checks = append(checks, check{"Custom Days", "create, resolve, delete", checkCustomDayLifecycle})
	}
	return checks
}

func checkHealth(ctx context.Context, c *Client) (string, error) {
	var health struct {
		Status string `json:"status"`
	}
	if err := c.Get(ctx, "/health", &health); err != nil {
		return "", err
	}
	if health.Status != "healthy" {
		return "", fmt.Errorf("status %q", health.Status)
	}
	return "healthy", nil
}

func checkToday(ctx context.Context, c *Client) (string, error) {
	var day dayInfo
	if err := c.Get(ctx, "/api/v1/dates/today", &day); err != nil {
		return "", err
	}
	if day.Date.Year < 5700 || day.Date.Day < 1 {
		return "", fmt.Errorf("implausible date %+v", day.Date)
	}
	return fmt.Sprintf("%d %s %d (%s)%s", day.Date.Day, day.Date.MonthName, day.Date.Year, day.Date.Gregorian, describe(day)), nil
}

func knownDateChecks() []check {
	dates := []struct {
		date     string
		diaspora bool
		hebrew   string // day/month/year
		holiday  int
		name     string
	}{
		{"2024-10-03", false, "1/1/5785", 1, "Rosh Hashana I"},
		{"2024-10-12", false, "10/1/5785", 4, "Yom Kippur"},
		{"2024-10-25", false, "23/1/5785", 0, ""},
		{"2024-10-25", true, "23/1/5785", 8, "Simchat Torah"},
		{"2024-12-26", false, "25/3/5785", 9, "Chanukah"},
		{"2025-03-14", false, "14/6/5785", 13, "Purim"},
		{"2025-04-13", false, "15/7/5785", 15, "Pesach"},
		{"2025-04-20", false, "22/7/5785", 0, ""},
		{"2025-04-20", true, "22/7/5785", 29, "Pesach VIII"},
		{"2025-08-03", false, "10/11/5785", 22, "Tish'a B'Av"},
	}

	checks := make([]check, 0, len(dates))
	for _, tt := range dates {
		checks = append(checks, check{
			group: "Known Dates",
			name:  fmt.Sprintf("%s diaspora=%v", tt.date, tt.diaspora),
			run: func(ctx context.Context, c *Client) (string, error) {
				var day dayInfo
				path := fmt.Sprintf("/api/v1/dates/gregorian/%s?diaspora=%v", tt.date, tt.diaspora)
				if err := c.Get(ctx, path, &day); err != nil {
					return "", err
				}

				hebrew := fmt.Sprintf("%d/%d/%d", day.Date.Day, day.Date.Month, day.Date.Year)
				if hebrew != tt.hebrew {
					return "", fmt.Errorf("hebrew date %s, want %s", hebrew, tt.hebrew)
				}
				if day.Holiday != tt.holiday || day.HolidayName != tt.name {
					return "", fmt.Errorf("holiday %d %q, want %d %q", day.Holiday, day.HolidayName, tt.holiday, tt.name)
				}
				if tt.name == "" {
					return hebrew + ", no holiday", nil
				}
				return hebrew + ", " + tt.name, nil
			},
		})
	}
	return checks
}

func checkHebrewLookup(ctx context.Context, c *Client) (string, error) {
	var day dayInfo
	if err := c.Get(ctx, "/api/v1/dates/hebrew/5784/14/14", &day); err != nil {
		return "", err
	}
	if day.Date.Gregorian != "2024-03-24" || day.HolidayName != "Purim" {
		return "", fmt.Errorf("got %s %q, want 2024-03-24 Purim", day.Date.Gregorian, day.HolidayName)
	}

	var byJDN dayInfo
	if err := c.Get(ctx, fmt.Sprintf("/api/v1/dates/jdn/%d", day.Date.JDN), &byJDN); err != nil {
		return "", err
	}
	if byJDN.Date.Gregorian != day.Date.Gregorian {
		return "", fmt.Errorf("JDN %d resolves to %s", day.Date.JDN, byJDN.Date.Gregorian)
	}
	return fmt.Sprintf("2024-03-24, Purim, JDN %d round-trips", day.Date.JDN), nil
}

func checkOmerRange(ctx context.Context, c *Client) (string, error) {
	var rng struct {
		Days []dayInfo `json:"days"`
	}
	if err := c.Get(ctx, "/api/v1/dates/range?start=2025-04-12&end=2025-06-05&diaspora=true", &rng); err != nil {
		return "", err
	}
	if len(rng.Days) != 55 {
		return "", fmt.Errorf("got %d days, want 55", len(rng.Days))
	}

	highest := 0
	for _, d := range rng.Days {
		highest = max(highest, d.Omer)
	}
	if highest != 49 {
		return "", fmt.Errorf("highest omer day %d, want 49", highest)
	}
	return "55 days, omer reaches 49", nil
}

func checkLeapYear(ctx context.Context, c *Client) (string, error) {
	var year yearSummary
	if err := c.Get(ctx, "/api/v1/years/5784", &year); err != nil {
		return "", err
	}
	if year.Length != 383 || !year.Leap || year.Keviah != 10 {
		return "", fmt.Errorf("length %d leap %v keviah %d", year.Length, year.Leap, year.Keviah)
	}
	return fmt.Sprintf("%d days, leap, keviah %d, %d holidays", year.Length, year.Keviah, len(year.Holidays)), nil
}

func checkFeed(ctx context.Context, c *Client) (string, error) {
	status, body, err := c.Do(ctx, http.MethodGet, "/api/v1/years/5784/calendar.ics", nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || !strings.HasPrefix(string(body), "BEGIN:VCALENDAR") {
		return "", fmt.Errorf("status %d, not a calendar", status)
	}
	return fmt.Sprintf("%d events", strings.Count(string(body), "BEGIN:VEVENT")), nil
}

// statusChecks expect a specific HTTP status for requests the API must
// reject.
func statusChecks() []check {
	cases := []struct {
		name   string
		path   string
		status int
	}{
		{"invalid Gregorian date", "/api/v1/dates/gregorian/2025-02-30", http.StatusBadRequest},
		{"Adar I in a common year", "/api/v1/dates/hebrew/5785/13/1", http.StatusBadRequest},
		{"range over 90 days", "/api/v1/dates/range?start=2025-01-01&end=2025-12-31", http.StatusBadRequest},
		{"bad diaspora flag", "/api/v1/dates/today?diaspora=sometimes", http.StatusBadRequest},
		{"year before epoch", "/api/v1/years/1000", http.StatusBadRequest},
		{"unknown route", "/api/v1/nothing", http.StatusNotFound},
	}

	checks := make([]check, 0, len(cases))
	for _, tc := range cases {
		checks = append(checks, check{
			group: "Edge Cases",
			name:  tc.name,
			run: func(ctx context.Context, c *Client) (string, error) {
				status, err := c.Call(ctx, http.MethodGet, tc.path, nil, nil)
				var apiErr *APIError
				if err != nil && !errors.As(err, &apiErr) {
					return "", err
				}
				if status != tc.status {
					return "", fmt.Errorf("status %d, want %d", status, tc.status)
				}
				return fmt.Sprintf("%d", status), nil
			},
		})
	}
	return checks
}

func checkCustomDayLifecycle(ctx context.Context, c *Client) (string, error) {
	in := customDay{
		Name:  fmt.Sprintf("apitest %d", time.Now().UnixNano()),
		Month: 1,
		Day:   10,
		Kind:  "other",
	}

	var created customDay
	status, err := c.Call(ctx, http.MethodPost, "/api/v1/custom-days", in, &created)
	if err != nil {
		return "", fmt.Errorf("create: %w", err)
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("create: status %d", status)
	}

	var yk dayInfo
	if err := c.Get(ctx, "/api/v1/dates/gregorian/2024-10-12", &yk); err != nil {
		return "", err
	}
	found := false
	for _, d := range yk.CustomDays {
		found = found || d.ID == created.ID
	}
	if !found {
		return "", fmt.Errorf("custom day %d missing on 10 Tishrei", created.ID)
	}

	if _, err := c.Call(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/custom-days/%d", created.ID), nil, nil); err != nil {
		return "", fmt.Errorf("delete: %w", err)
	}
	return fmt.Sprintf("custom day %d created, found on 10 Tishrei, deleted", created.ID), nil
}

// describe renders the notable parts of a day for verbose output.
func describe(d dayInfo) string {
	var b strings.Builder
	if d.HolidayName != "" {
		fmt.Fprintf(&b, "\n    Holiday: %s", d.HolidayName)
	}
	if d.WeeklyName != "" {
		fmt.Fprintf(&b, "\n    This week's parasha: %s", d.WeeklyName)
	}
	if d.Omer > 0 {
		fmt.Fprintf(&b, "\n    Omer: day %d", d.Omer)
	}
	for _, c := range d.CustomDays {
		fmt.Fprintf(&b, "\n    Custom: %s (%s)", c.Name, c.Kind)
	}
	return b.String()
}
