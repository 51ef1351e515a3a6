package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// MaxRangeDays bounds ResolveRange.
const MaxRangeDays = 90

// ErrRangeTooLarge is returned when a range spans more than MaxRangeDays.
var ErrRangeTooLarge = fmt.Errorf("date range exceeds %d days", MaxRangeDays)

// CustomDay is a user-defined yearly observance keyed on a Hebrew date,
// such as a yahrzeit.
type CustomDay struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Month     int       `json:"hebrew_month"`
	Day       int       `json:"hebrew_day"`
	Kind      string    `json:"kind"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObservedOn reports whether the custom day falls on d.
func (c CustomDay) ObservedOn(d HebrewDate) bool {
	a, err := AnniversaryOf(c.Day, c.Month, d.Year())
	if err != nil {
		return false
	}
	return a.JDN() == d.JDN()
}

// DayInfo is everything known about a single day.
type DayInfo struct {
	Date          HebrewDate  `json:"date"`
	Diaspora      bool        `json:"diaspora"`
	Holiday       Holiday     `json:"holiday"`
	HolidayName   string      `json:"holiday_name,omitempty"`
	HolidayType   HolidayType `json:"holiday_type"`
	Parasha       Parasha     `json:"parasha"`
	ParashaName   string      `json:"parasha_name,omitempty"`
	WeeklyParasha Parasha     `json:"weekly_parasha"`
	WeeklyName    string      `json:"weekly_parasha_name,omitempty"`
	Omer          int         `json:"omer"`
	DafYomi       *DafYomi    `json:"daf_yomi,omitempty"`
	CustomDays    []CustomDay `json:"custom_days"`
}

// CustomDayStore supplies the stored custom days.
type CustomDayStore interface {
	ListCustomDays(ctx context.Context) ([]CustomDay, error)
}

// DateResolver answers per-day queries, combining the calendar with the
// stored custom days.
type DateResolver struct {
	store CustomDayStore
}

// NewDateResolver creates a resolver. A nil store disables custom days.
func NewDateResolver(store CustomDayStore) *DateResolver {
	return &DateResolver{store: store}
}

// ResolveDate resolves the calendar date of t in t's location.
func (dr *DateResolver) ResolveDate(ctx context.Context, t time.Time, diaspora bool) (*DayInfo, error) {
	return dr.ResolveJDN(ctx, FromTime(t).JDN(), diaspora)
}

// ResolveJDN resolves a Julian Day Number.
func (dr *DateResolver) ResolveJDN(ctx context.Context, jdn int, diaspora bool) (*DayInfo, error) {
	custom, err := dr.customDays(ctx)
	if err != nil {
		return nil, err
	}
	return resolve(FromJDN(jdn), diaspora, custom), nil
}

// ResolveRange resolves every day from start to end inclusive.
func (dr *DateResolver) ResolveRange(ctx context.Context, start, end time.Time, diaspora bool) ([]*DayInfo, error) {
	first := FromTime(start).JDN()
	last := FromTime(end).JDN()
	if last < first {
		return nil, errors.New("range end is before start")
	}
	if last-first+1 > MaxRangeDays {
		return nil, ErrRangeTooLarge
	}

	custom, err := dr.customDays(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]*DayInfo, 0, last-first+1)
	for jdn := first; jdn <= last; jdn++ {
		days = append(days, resolve(FromJDN(jdn), diaspora, custom))
	}
	return days, nil
}

func (dr *DateResolver) customDays(ctx context.Context) ([]CustomDay, error) {
	if dr.store == nil {
		return nil, nil
	}
	days, err := dr.store.ListCustomDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom days: %w", err)
	}
	return days, nil
}

func resolve(d HebrewDate, diaspora bool, custom []CustomDay) *DayInfo {
	h := HolidayOf(d, diaspora)
	p := ParashaOf(d, diaspora)
	weekly := ParashaOf(d.NextShabbat(), diaspora)

	info := &DayInfo{
		Date:          d,
		Diaspora:      diaspora,
		Holiday:       h,
		HolidayName:   h.String(),
		HolidayType:   h.Type(),
		Parasha:       p,
		ParashaName:   p.String(),
		WeeklyParasha: weekly,
		WeeklyName:    weekly.String(),
		Omer:          OmerDay(d),
		CustomDays:    []CustomDay{},
	}

	if daf, ok := DafYomiOf(d.JDN()); ok {
		info.DafYomi = &daf
	}

	for _, c := range custom {
		if c.ObservedOn(d) {
			info.CustomDays = append(info.CustomDays, c)
		}
	}

	return info
}
