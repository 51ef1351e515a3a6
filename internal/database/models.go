package database

import (
	"fmt"
	"strings"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

// CustomDayKind categorises a custom day.
type CustomDayKind string

const (
	KindYahrzeit    CustomDayKind = "yahrzeit"
	KindBirthday    CustomDayKind = "birthday"
	KindAnniversary CustomDayKind = "anniversary"
	KindOther       CustomDayKind = "other"
)

// ValidKinds returns all valid custom day kinds.
func ValidKinds() []CustomDayKind {
	return []CustomDayKind{KindYahrzeit, KindBirthday, KindAnniversary, KindOther}
}

// IsValid checks if a kind is valid.
func (k CustomDayKind) IsValid() bool {
	for _, valid := range ValidKinds() {
		if k == valid {
			return true
		}
	}
	return false
}

// ValidateCustomDay checks the fields the schema constrains, so callers get
// a readable error instead of a CHECK failure. Whether the day exists in a
// particular year is resolved later, per year.
func ValidateCustomDay(d calendar.CustomDay) error {
	var problems []string

	if strings.TrimSpace(d.Name) == "" {
		problems = append(problems, "name is required")
	}
	if d.Month < 1 || d.Month > 14 {
		problems = append(problems, fmt.Sprintf("hebrew_month must be 1-14, got %d", d.Month))
	}
	if d.Day < 1 || d.Day > 30 {
		problems = append(problems, fmt.Sprintf("hebrew_day must be 1-30, got %d", d.Day))
	}
	if !CustomDayKind(d.Kind).IsValid() {
		problems = append(problems, fmt.Sprintf("kind must be one of yahrzeit, birthday, anniversary, other; got %q", d.Kind))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
