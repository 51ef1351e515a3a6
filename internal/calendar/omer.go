package calendar

// OmerDay returns the day of the Omer count (1..49) that d falls on, or 0
// outside the count. The count starts on 16 Nisan.
func OmerDay(d HebrewDate) int {
	n := d.jdn - HebrewToJDN(16, 7, d.year) + 1
	if n < 1 || n > 49 {
		return 0
	}
	return n
}
