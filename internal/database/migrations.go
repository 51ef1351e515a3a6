package database

type migration struct {
	version int
	name    string
	sql     string
}

// migrations are applied in slice order; versions must increase.
var migrations = []migration{
	{1, "custom_days", migrationV1CustomDays},
	{2, "custom_days_unique", migrationV2UniqueCustomDays},
}

func latestVersion() int {
	if len(migrations) == 0 {
		return 0
	}
	return migrations[len(migrations)-1].version
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
    version INTEGER PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// migrationV1CustomDays creates the custom_days table.
//
// A custom day is keyed on a Hebrew month and day rather than a Gregorian
// date; the observed date for a given year is computed at request time so
// that Adar, Heshvan and Kislev edge cases follow the year being asked about.
//
// Months use the calendar package numbering: 1=Tishrei .. 12=Elul,
// 13=Adar I, 14=Adar II.
const migrationV1CustomDays = `
CREATE TABLE IF NOT EXISTS custom_days (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    hebrew_month INTEGER NOT NULL CHECK (hebrew_month BETWEEN 1 AND 14),
    hebrew_day INTEGER NOT NULL CHECK (hebrew_day BETWEEN 1 AND 30),
    kind TEXT NOT NULL CHECK (kind IN ('yahrzeit', 'birthday', 'anniversary', 'other')),
    notes TEXT,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);

-- Lookups by date
CREATE INDEX IF NOT EXISTS idx_custom_days_date
    ON custom_days(hebrew_month, hebrew_day);
`

// migrationV2UniqueCustomDays stops the same observance from being stored
// twice, which makes repeated imports safe.
const migrationV2UniqueCustomDays = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_custom_days_unique
    ON custom_days(name, hebrew_month, hebrew_day, kind);
`
