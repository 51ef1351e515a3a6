package calendar

import "fmt"

const (
	dafYomiCycleStart  = 2453432 // 2 March 2005
	dafYomiCycleLength = 2711
)

type tractate struct {
	start int // day of the cycle on which the tractate starts
	pages int
	name  string
}

// tractates lists the Babylonian Talmud in study order; the final entry
// marks the end of the cycle.
var tractates = [...]tractate{
	{0, 63, "Berachot"},
	{63, 156, "Shabbat"},
	{219, 104, "Eiruvin"},
	{323, 120, "Pesachim"},
	{443, 21, "Shekalim"},
	{464, 87, "Yoma"},
	{551, 55, "Sukkah"},
	{606, 39, "Beitzah"},
	{645, 34, "Rosh HaShanah"},
	{679, 30, "Taanit"},
	{709, 31, "Megillah"},
	{740, 28, "Moed Katan"},
	{768, 26, "Chagigah"},
	{794, 121, "Yevamot"},
	{915, 111, "Ketubot"},
	{1026, 90, "Nedarim"},
	{1116, 65, "Nazir"},
	{1181, 48, "Sotah"},
	{1229, 89, "Gittin"},
	{1318, 81, "Kiddushin"},
	{1399, 118, "Bava Kamma"},
	{1517, 118, "Bava Metzia"},
	{1635, 175, "Bava Batra"},
	{1810, 112, "Sanhedrin"},
	{1922, 23, "Makkot"},
	{1945, 48, "Shevuot"},
	{1993, 75, "Avodah Zarah"},
	{2068, 13, "Horayot"},
	{2081, 119, "Zevachim"},
	{2200, 109, "Menachot"},
	{2309, 141, "Chullin"},
	{2450, 60, "Bechorot"},
	{2510, 33, "Arachin"},
	{2543, 33, "Temurah"},
	{2576, 27, "Keritot"},
	{2603, 20, "Meilah"},
	{2623, 1, "Meilah-Kinnim"},
	{2625, 2, "Kinnim"},
	{2626, 1, "Kinnim-Tamid"},
	{2627, 8, "Tamid"},
	{2635, 4, "Middot"},
	{2639, 72, "Niddah"},
	{dafYomiCycleLength, 0, ""},
}

// DafYomi is the page of Talmud studied on a given day.
type DafYomi struct {
	Tractate string `json:"tractate"`
	Daf      int    `json:"daf"`
}

func (d DafYomi) String() string {
	return fmt.Sprintf("%s %d", d.Tractate, d.Daf)
}

// DafYomiOf returns the daf for jdn. It reports false for days before the
// 2005 cycle, the first one with the current tractate layout.
func DafYomiOf(jdn int) (DafYomi, bool) {
	if jdn < dafYomiCycleStart {
		return DafYomi{}, false
	}
	day := (jdn - dafYomiCycleStart) % dafYomiCycleLength

	i := 0
	for tractates[i+1].start <= day {
		i++
	}
	t := tractates[i]

	daf := day - t.start + 2
	// Me'ilah, Kinnim, Tamid and Middot are paged as one volume
	if day >= 2623 && day < 2639 {
		daf = day - 2601
	}

	return DafYomi{Tractate: t.name, Daf: daf}, true
}
