package calendar

// Holiday identifies a festival, fast or memorial day. The numbering is
// stable and shared with clients.
type Holiday int

const (
	NoHoliday Holiday = iota
	RoshHashanaI
	RoshHashanaII
	TzomGedaliah
	YomKippur
	Sukkot
	CholHaMoedSukkot
	HoshanaRaba
	SimchatTorah
	Chanukah
	AsaraBTevet
	TuBShvat
	TaanitEsther
	Purim
	ShushanPurim
	Pesach
	CholHaMoedPesach
	YomHaAtzmaut
	LagBOmer
	ErevShavuot
	Shavuot
	TzomTammuz
	TishaBAv
	TuBAv
	YomHaShoah
	YomHaZikaron
	YomYerushalayim
	SheminiAtzeret
	PesachVII
	PesachVIII
	ShavuotII
	SukkotII
	PesachII
	FamilyDay
	MemorialDayUnknownGraves
	YomRabin
	ZhabotinskyDay
	ErevYomKippur
	ErevPesach
	ErevSukkot
)

var holidayNames = [...]string{
	"",
	"Rosh Hashana I",
	"Rosh Hashana II",
	"Tzom Gedaliah",
	"Yom Kippur",
	"Sukkot",
	"Hol hamoed Sukkot",
	"Hoshana raba",
	"Simchat Torah",
	"Chanukah",
	"Asara B'Tevet",
	"Tu B'Shvat",
	"Ta'anit Esther",
	"Purim",
	"Shushan Purim",
	"Pesach",
	"Hol hamoed Pesach",
	"Yom HaAtzma'ut",
	"Lag B'Omer",
	"Erev Shavuot",
	"Shavuot",
	"Tzom Tammuz",
	"Tish'a B'Av",
	"Tu B'Av",
	"Yom HaShoah",
	"Yom HaZikaron",
	"Yom Yerushalayim",
	"Shmini Atzeret",
	"Pesach VII",
	"Pesach VIII",
	"Shavuot II",
	"Sukkot II",
	"Pesach II",
	"Family Day",
	"Memorial day for fallen whose place of burial is unknown",
	"Yitzhak Rabin memorial day",
	"Zeev Zhabotinsky day",
	"Erev Yom Kippur",
	"Erev Pesach",
	"Erev Sukkot",
}

func (h Holiday) String() string {
	if h < 0 || int(h) >= len(holidayNames) {
		return ""
	}
	return holidayNames[h]
}

// HolidayType groups holidays by how they are observed.
type HolidayType int

const (
	RegularDay HolidayType = iota
	YomTov
	ErevYomTov
	CholHaMoed
	Feast
	FastDay
	IndependenceDay
	MinorFestival
	MemorialDay
	NationalObservance
)

var holidayTypeNames = [...]string{
	"Regular day",
	"Yom Tov",
	"Erev Yom Tov",
	"Hol Hamoed",
	"Hanuka and Purim",
	"Tzomot",
	"Independence day and Yom Yerushalaim",
	"Lag Baomer, Tu Beav, Tu Beshvat",
	"Tzahal and Holocaust memorial days",
	"National days",
}

func (t HolidayType) String() string {
	if t < 0 || int(t) >= len(holidayTypeNames) {
		return ""
	}
	return holidayTypeNames[t]
}

// HolidayTypeOf classifies a holiday.
func HolidayTypeOf(h Holiday) HolidayType {
	switch h {
	case NoHoliday:
		return RegularDay
	case RoshHashanaI, RoshHashanaII, YomKippur, Sukkot, SimchatTorah,
		Pesach, Shavuot, SheminiAtzeret, PesachVII, PesachVIII,
		ShavuotII, SukkotII, PesachII:
		return YomTov
	case ErevShavuot, ErevYomKippur, ErevPesach, ErevSukkot:
		return ErevYomTov
	case CholHaMoedSukkot, HoshanaRaba, CholHaMoedPesach:
		return CholHaMoed
	case Chanukah, Purim, ShushanPurim:
		return Feast
	case TzomGedaliah, AsaraBTevet, TaanitEsther, TzomTammuz, TishaBAv:
		return FastDay
	case YomHaAtzmaut, YomYerushalayim:
		return IndependenceDay
	case LagBOmer, TuBAv, TuBShvat:
		return MinorFestival
	case YomHaShoah, YomHaZikaron:
		return MemorialDay
	}
	return NationalObservance
}

// Type is shorthand for HolidayTypeOf(h).
func (h Holiday) Type() HolidayType { return HolidayTypeOf(h) }

// holidayTable is indexed [month-1][day-1]; months 13 and 14 are Adar I and
// Adar II. Entries are the unshifted calendar positions.
var holidayTable = [14][30]Holiday{
	{ // Tishrei
		1, 2, 3, 3, 0, 0, 0, 0, 37, 4,
		0, 0, 0, 39, 5, 31, 6, 6, 6, 6,
		7, 27, 8, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Heshvan
		0, 0, 0, 0, 0, 0, 0, 0, 0, 35,
		35, 35, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Kislev
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 9, 9, 9, 9, 9, 9,
	},
	{ // Tevet
		9, 9, 9, 0, 0, 0, 0, 0, 0, 10,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Shvat
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 11, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 33,
	},
	{ // Adar
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		12, 0, 12, 13, 14, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Nisan
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 38, 15, 32, 16, 16, 16, 16,
		28, 29, 0, 0, 0, 24, 24, 24, 0, 0,
	},
	{ // Iyar
		0, 17, 17, 17, 17, 17, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 18, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 26, 0, 0,
	},
	{ // Sivan
		0, 0, 0, 0, 19, 20, 30, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Tammuz
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 21, 21, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 36, 36,
	},
	{ // Av
		0, 0, 0, 0, 0, 0, 0, 0, 22, 22,
		0, 0, 0, 0, 23, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Elul
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Adar I
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Adar II
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		12, 0, 12, 13, 14, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// HolidayOf returns the holiday observed on d, or NoHoliday. Fasts that
// fall on Shabbat move, civil days follow the rules in force in the
// Gregorian year of d, and in the diaspora the second festival days are
// kept while Israel observes them as ordinary or intermediate days.
func HolidayOf(d HebrewDate, diaspora bool) Holiday {
	day, month, dw := d.day, d.month, d.weekday
	if month < 1 || month > 14 || day < 1 || day > 30 {
		return NoHoliday
	}

	h := holidayTable[month-1][day-1]

	switch h {
	case TzomGedaliah:
		if dw == Saturday || (day == 4 && dw != Sunday) {
			h = NoHoliday
		}
	case TzomTammuz:
		if dw == Saturday || (day == 18 && dw != Sunday) {
			h = NoHoliday
		}
	case TishaBAv:
		if dw == Saturday || (day == 10 && dw != Sunday) {
			h = NoHoliday
		}
	case Chanukah:
		// eight days end on 2 Tevet unless Kislev is short
		if d.sizeOfYear%10 != 3 && day == 3 {
			h = NoHoliday
		}
	case TaanitEsther:
		if dw == Saturday || (day == 11 && dw != Thursday) {
			h = NoHoliday
		}
	case YomYerushalayim:
		if d.gYear < 1968 {
			h = NoHoliday
		}
	case YomHaAtzmaut:
		h = independenceDay(day, dw, d.gYear)
	case YomHaShoah:
		if d.gYear < 1958 ||
			(day == 26 && dw != Thursday) ||
			(day == 28 && dw != Monday) ||
			(day == 27 && (dw == Friday || dw == Sunday)) {
			h = NoHoliday
		}
	case YomRabin:
		if d.gYear < 1997 ||
			((day == 10 || day == 11) && dw != Thursday) ||
			(day == 12 && (dw == Friday || dw == Saturday)) {
			h = NoHoliday
		}
	case ZhabotinskyDay:
		if d.gYear < 2005 ||
			(day == 30 && dw != Sunday) ||
			(day == 29 && dw == Saturday) {
			h = NoHoliday
		}
	}

	if !diaspora {
		switch h {
		case SimchatTorah, ShavuotII, PesachVIII:
			h = NoHoliday
		case SukkotII:
			h = CholHaMoedSukkot
		case PesachII:
			h = CholHaMoedPesach
		}
	}

	return h
}

// independenceDay places Yom HaZikaron and Yom HaAtzma'ut within 2..6 Iyar
// so that neither touches Shabbat; from 2004 neither falls on a Sunday
// night either.
func independenceDay(day, dw, gYear int) Holiday {
	switch {
	case gYear < 1948:
		return NoHoliday
	case gYear < 2004:
		switch {
		case (day == 3 && dw == Thursday) ||
			(day == 4 && dw == Thursday) ||
			(day == 5 && dw != Friday && dw != Saturday):
			return YomHaAtzmaut
		case (day == 2 && dw == Wednesday) ||
			(day == 3 && dw == Wednesday) ||
			(day == 4 && dw != Thursday && dw != Friday):
			return YomHaZikaron
		}
	default:
		switch {
		case (day == 3 && dw == Thursday) ||
			(day == 4 && dw == Thursday) ||
			(day == 6 && dw == Tuesday) ||
			(day == 5 && dw != Friday && dw != Saturday && dw != Monday):
			return YomHaAtzmaut
		case (day == 2 && dw == Wednesday) ||
			(day == 3 && dw == Wednesday) ||
			(day == 5 && dw == Monday) ||
			(day == 4 && dw != Thursday && dw != Friday && dw != Sunday):
			return YomHaZikaron
		}
	}
	return NoHoliday
}
