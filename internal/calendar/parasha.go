package calendar

// Parasha is a weekly Torah reading. 1..54 are the single readings in
// order, 55..61 the readings that are sometimes joined, and NoParasha marks
// a Shabbat on which a festival reading replaces the weekly one.
type Parasha int

const (
	NoParasha Parasha = 0

	Bereshit          Parasha = 1
	Vayakhel          Parasha = 22
	Pekudei           Parasha = 23
	Tazria            Parasha = 27
	Metzora           Parasha = 28
	AchreiMot         Parasha = 29
	Kedoshim          Parasha = 30
	Behar             Parasha = 32
	Bechukotai        Parasha = 33
	Chukat            Parasha = 39
	Balak             Parasha = 40
	Matot             Parasha = 42
	Masei             Parasha = 43
	Nitzavim          Parasha = 51
	Vayeilech         Parasha = 52
	HaAzinu           Parasha = 53
	VezotHaberakhah   Parasha = 54
	VayakhelPekudei   Parasha = 55
	TazriaMetzora     Parasha = 56
	AchreiMotKedoshim Parasha = 57
	BeharBechukotai   Parasha = 58
	ChukatBalak       Parasha = 59
	MatotMasei        Parasha = 60
	NitzavimVayeilech Parasha = 61
)

var parashaNames = [...]string{
	"",
	"Bereshit", "Noach", "Lech-Lecha", "Vayera", "Chayei Sara",
	"Toldot", "Vayetzei", "Vayishlach", "Vayeshev", "Miketz",
	"Vayigash", "Vayechi", "Shemot", "Vaera", "Bo",
	"Beshalach", "Yitro", "Mishpatim", "Terumah", "Tetzaveh",
	"Ki Tisa", "Vayakhel", "Pekudei", "Vayikra", "Tzav",
	"Shmini", "Tazria", "Metzora", "Achrei Mot", "Kedoshim",
	"Emor", "Behar", "Bechukotai", "Bamidbar", "Nasso",
	"Beha'alotcha", "Sh'lach", "Korach", "Chukat", "Balak",
	"Pinchas", "Matot", "Masei", "Devarim", "Vaetchanan",
	"Eikev", "Re'eh", "Shoftim", "Ki Teitzei", "Ki Tavo",
	"Nitzavim", "Vayeilech", "Ha'Azinu", "Vezot Haberakhah",
	"Vayakhel-Pekudei", "Tazria-Metzora", "Achrei Mot-Kedoshim",
	"Behar-Bechukotai", "Chukat-Balak", "Matot-Masei", "Nitzavim-Vayeilech",
}

func (p Parasha) String() string {
	if p < 0 || int(p) >= len(parashaNames) {
		return ""
	}
	return parashaNames[p]
}

// Readings that may be joined, in order, and the reading that replaces the
// pair.
var (
	joinStart  = [7]Parasha{Vayakhel, Tazria, AchreiMot, Behar, Chukat, Matot, Nitzavim}
	joinResult = [7]Parasha{VayakhelPekudei, TazriaMetzora, AchreiMotKedoshim, BeharBechukotai, ChukatBalak, MatotMasei, NitzavimVayeilech}
)

// Parts returns the single readings p is made of: two for a joined
// reading, p itself otherwise, and nil for NoParasha.
func (p Parasha) Parts() []Parasha {
	if p == NoParasha {
		return nil
	}
	for k, joined := range joinResult {
		if p == joined {
			return []Parasha{joinStart[k], joinStart[k] + 1}
		}
	}
	return []Parasha{p}
}

// joins[diaspora][keviah-1][k] is true when joinStart[k] is read together
// with the following reading in that kind of year.
var joins = [2][14][7]bool{
	{ // Israel
		{true, true, true, true, false, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{true, true, true, false, false, true, false},
		{true, true, true, true, false, true, true},
		{false, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, true},
		{false, false, false, false, false, true, true},
	},
	{ // diaspora
		{true, true, true, true, false, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, true, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, true, true, true},
		{false, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{false, false, false, false, true, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, true, false},
		{false, false, false, false, false, true, false},
		{false, false, false, false, false, false, true},
		{false, false, false, false, true, true, true},
	},
}

// ParashaOf returns the weekly reading for d. Days other than Shabbat yield
// NoParasha, except 22 Tishrei which always yields VezotHaberakhah.
func ParashaOf(d HebrewDate, diaspora bool) Parasha {
	if d.month == 1 && d.day == 22 {
		return VezotHaberakhah
	}
	if d.weekday != Saturday {
		return NoParasha
	}

	ny := d.newYearWeekday

	switch d.weekOfYear {
	case 1:
		switch ny {
		case Saturday:
			return NoParasha // Rosh Hashana
		case Monday, Tuesday:
			return Vayeilech
		}
		return HaAzinu
	case 2:
		if ny == Thursday {
			return NoParasha // Yom Kippur
		}
		return HaAzinu
	case 3:
		return NoParasha // Sukkot
	case 4:
		if ny == Saturday {
			return VezotHaberakhah
		}
		return Bereshit
	}

	reading := d.weekOfYear - 3
	if ny == Saturday {
		reading--
	}
	if reading < int(Vayakhel) {
		return Parasha(reading)
	}

	// Pesach; the diaspora keeps an eighth day
	if d.month == 7 && d.day >= 15 && (d.day <= 21 || (diaspora && d.day == 22)) {
		return NoParasha
	}
	if diaspora && d.month == 9 && d.day == 7 {
		return NoParasha // second day of Shavuot
	}

	afterPesach := (d.month == 7 && d.day > 21) || (d.month > 7 && d.month < 13)
	if afterPesach {
		reading--
	}

	// In the diaspora an eighth day of Pesach or a second day of Shavuot on
	// Shabbat delays every following reading by a week until a join absorbs it.
	if diaspora && afterPesach {
		nextNewYear := (ny+d.sizeOfYear-1)%7 + 1
		switch {
		case nextNewYear == Monday: // Pesach began on Shabbat
			reading--
		case nextNewYear == Saturday && (d.month > 9 || (d.month == 9 && d.day > 7)):
			reading--
		}
	}

	row := 0
	if diaspora {
		row = 1
	}
	flags := joins[row][d.Keviah()-1]

	for k, start := range joinStart {
		if flags[k] && reading >= int(start) {
			if reading == int(start) {
				return joinResult[k]
			}
			reading++
		}
	}

	return Parasha(reading)
}
