package calendar

// GregorianToJDN returns the Julian Day Number of a proleptic Gregorian date
// (Fliegel and Van Flandern). The date is not validated.
func GregorianToJDN(day, month, year int) int {
	a := (month - 14) / 12
	return (1461*(year+4800+a))/4 +
		(367*(month-2-12*a))/12 -
		(3*((year+4900+a)/100))/4 +
		day - 32075
}

// JDNToGregorian is the inverse of GregorianToJDN.
func JDNToGregorian(jdn int) (day, month, year int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	day = l - (2447*j)/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return day, month, year
}

// ValidGregorian reports whether day/month/year is a real proleptic
// Gregorian date with a positive year.
func ValidGregorian(day, month, year int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= gregorianMonthLength(month, year)
}

func gregorianMonthLength(month, year int) int {
	switch month {
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
