package calendar

import "fmt"

// MonthInfo describes one month of a Hebrew year.
type MonthInfo struct {
	Month    int    `json:"month"`
	Name     string `json:"name"`
	Days     int    `json:"days"`
	FirstDay string `json:"first_day"` // Gregorian date of the 1st
	FirstJDN int    `json:"first_jdn"`
}

// HolidayOccurrence is a holiday on a specific date.
type HolidayOccurrence struct {
	Date    HebrewDate  `json:"date"`
	Holiday Holiday     `json:"holiday"`
	Name    string      `json:"name"`
	Type    HolidayType `json:"type"`
}

// YearSummary describes a Hebrew year and every holiday in it.
type YearSummary struct {
	Year           int                 `json:"year"`
	Length         int                 `json:"length"`
	Leap           bool                `json:"leap"`
	YearType       int                 `json:"year_type"`
	Keviah         int                 `json:"keviah"`
	NewYearWeekday int                 `json:"new_year_weekday"`
	Diaspora       bool                `json:"diaspora"`
	Months         []MonthInfo         `json:"months"`
	Holidays       []HolidayOccurrence `json:"holidays"`
}

// SummarizeYear walks every day of year and collects its holidays.
func SummarizeYear(year int, diaspora bool) (YearSummary, error) {
	first, err := FromHebrew(1, 1, year)
	if err != nil {
		return YearSummary{}, fmt.Errorf("summarize year %d: %w", year, err)
	}

	s := YearSummary{
		Year:           year,
		Length:         first.SizeOfYear(),
		Leap:           first.IsLeapYear(),
		YearType:       first.YearType(),
		Keviah:         first.Keviah(),
		NewYearWeekday: first.NewYearWeekday(),
		Diaspora:       diaspora,
	}

	for _, m := range MonthsInYear(year) {
		jdn := HebrewToJDN(1, m, year)
		gd, gm, gy := JDNToGregorian(jdn)
		s.Months = append(s.Months, MonthInfo{
			Month:    m,
			Name:     MonthName(m),
			Days:     MonthLength(m, s.Length),
			FirstDay: fmt.Sprintf("%04d-%02d-%02d", gy, gm, gd),
			FirstJDN: jdn,
		})
	}

	for i := 0; i < s.Length; i++ {
		d := FromJDN(first.JDN() + i)
		if h := HolidayOf(d, diaspora); h != NoHoliday {
			s.Holidays = append(s.Holidays, HolidayOccurrence{
				Date:    d,
				Holiday: h,
				Name:    h.String(),
				Type:    h.Type(),
			})
		}
	}

	return s, nil
}
