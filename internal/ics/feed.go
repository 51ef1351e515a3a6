// Package ics renders Hebrew calendar data as an iCalendar (RFC 5545) feed.
package ics

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

const (
	propVersion     = "VERSION"
	propProdID      = "PRODID"
	propCalName     = "X-WR-CALNAME"
	propCalScale    = "CALSCALE"
	propMethod      = "METHOD"
	propUID         = "UID"
	propSummary     = "SUMMARY"
	propDescription = "DESCRIPTION"
	propCategories  = "CATEGORIES"
	propDTStart     = "DTSTART"
	propDTEnd       = "DTEND"
	propDTStamp     = "DTSTAMP"
	propTransp      = "TRANSP"

	prodID = "-//hdate-api//Hebrew Calendar//EN"
	domain = "hdate"
)

// ErrEmptyFeed is returned for a summary without holidays.
var ErrEmptyFeed = errors.New("no holidays to export")

// BuildYearFeed returns a VCALENDAR with one all-day event per holiday in
// the summary. UIDs depend only on the year, date and holiday, so clients
// see the same events on every refresh. now stamps the events.
func BuildYearFeed(s calendar.YearSummary, now time.Time) ([]byte, error) {
	if len(s.Holidays) == 0 {
		return nil, ErrEmptyFeed
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, "2.0")
	cal.Props.SetText(propProdID, prodID)
	cal.Props.SetText(propCalName, CalendarName(s))
	cal.Props.SetText(propCalScale, "GREGORIAN")
	cal.Props.SetText(propMethod, "PUBLISH")

	stamp := ical.NewProp(propDTStamp)
	stamp.SetDateTime(now.UTC())

	for _, occ := range s.Holidays {
		event := ical.NewEvent()
		event.Props.SetText(propUID, EventUID(s.Year, occ))
		event.Props.SetText(propSummary, occ.Name)
		event.Props.SetText(propDescription, fmt.Sprintf("%d %s %d", occ.Date.Day(), calendar.MonthName(occ.Date.Month()), occ.Date.Year()))
		event.Props.SetText(propCategories, occ.Type.String())
		event.Props.SetText(propTransp, "TRANSPARENT")

		start := ical.NewProp(propDTStart)
		start.SetDate(occ.Date.Time())
		event.Props.Set(start)

		end := ical.NewProp(propDTEnd)
		end.SetDate(occ.Date.AddDays(1).Time())
		event.Props.Set(end)

		event.Props.Set(stamp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// EventUID identifies a holiday occurrence.
func EventUID(year int, occ calendar.HolidayOccurrence) string {
	return fmt.Sprintf("%d-%d-%d@%s", year, occ.Date.JDN(), int(occ.Holiday), domain)
}

// CalendarName is the display name of a year's feed.
func CalendarName(s calendar.YearSummary) string {
	if s.Diaspora {
		return fmt.Sprintf("Hebrew holidays %d (diaspora)", s.Year)
	}
	return fmt.Sprintf("Hebrew holidays %d (Israel)", s.Year)
}
