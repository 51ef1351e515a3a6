package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/zapponejosh/hdate-api/internal/calendar"
)

// testDB opens a migrated in-memory database that logs only errors.
func testDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(DefaultConfig(":memory:"), quietLogger())
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return db
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func yahrzeit(name string, day, month int) *calendar.CustomDay {
	return &calendar.CustomDay{Name: name, Month: month, Day: day, Kind: string(KindYahrzeit)}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)

	count, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}

	version, err := db.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() error = %v", err)
	}
	if version != latestVersion() {
		t.Errorf("SchemaVersion() = %d, want %d", version, latestVersion())
	}
}

func TestMigrationsOrdered(t *testing.T) {
	for i := 1; i < len(migrations); i++ {
		if migrations[i].version <= migrations[i-1].version {
			t.Errorf("migration %q has version %d, not after %d",
				migrations[i].name, migrations[i].version, migrations[i-1].version)
		}
	}
}

func TestHealth_Unmigrated(t *testing.T) {
	db, err := Open(DefaultConfig(":memory:"), quietLogger())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if err := db.Health(context.Background()); err == nil {
		t.Error("Health() on unmigrated database = nil, want error")
	}
}

// -----------------------------------------------------------------
// Custom day tests
// -----------------------------------------------------------------

func TestCreateCustomDay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	day := yahrzeit("Grandmother", 7, 14)
	day.Notes = "light a candle"

	if err := db.CreateCustomDay(ctx, day); err != nil {
		t.Fatalf("CreateCustomDay() error = %v", err)
	}
	if day.ID == 0 {
		t.Error("CreateCustomDay() did not set ID")
	}
	if day.CreatedAt.IsZero() {
		t.Error("CreateCustomDay() did not set CreatedAt")
	}

	got, err := db.GetCustomDay(ctx, day.ID)
	if err != nil {
		t.Fatalf("GetCustomDay() error = %v", err)
	}
	if got.Name != "Grandmother" || got.Month != 14 || got.Day != 7 || got.Notes != "light a candle" {
		t.Errorf("GetCustomDay() = %+v", got)
	}
}

func TestCreateCustomDay_Duplicate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.CreateCustomDay(ctx, yahrzeit("Grandfather", 1, 5)); err != nil {
		t.Fatalf("first CreateCustomDay() error = %v", err)
	}

	err := db.CreateCustomDay(ctx, yahrzeit("Grandfather", 1, 5))
	if err != ErrDuplicate {
		t.Errorf("CreateCustomDay() duplicate error = %v, want ErrDuplicate", err)
	}
}

func TestCreateCustomDay_Invalid(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		day  calendar.CustomDay
	}{
		{"empty name", calendar.CustomDay{Name: " ", Month: 1, Day: 1, Kind: "other"}},
		{"month 0", calendar.CustomDay{Name: "x", Month: 0, Day: 1, Kind: "other"}},
		{"month 15", calendar.CustomDay{Name: "x", Month: 15, Day: 1, Kind: "other"}},
		{"day 31", calendar.CustomDay{Name: "x", Month: 1, Day: 31, Kind: "other"}},
		{"unknown kind", calendar.CustomDay{Name: "x", Month: 1, Day: 1, Kind: "holiday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := db.CreateCustomDay(ctx, &tt.day)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("CreateCustomDay() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestGetCustomDay_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetCustomDay(context.Background(), 999)
	if !IsNotFound(err) {
		t.Errorf("GetCustomDay() error = %v, want ErrNotFound", err)
	}
}

func TestListCustomDays(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, d := range []*calendar.CustomDay{
		yahrzeit("Elul", 3, 12),
		yahrzeit("Tishrei late", 20, 1),
		yahrzeit("Tishrei early", 2, 1),
	} {
		if err := db.CreateCustomDay(ctx, d); err != nil {
			t.Fatalf("CreateCustomDay() error = %v", err)
		}
	}

	days, err := db.ListCustomDays(ctx)
	if err != nil {
		t.Fatalf("ListCustomDays() error = %v", err)
	}

	want := []string{"Tishrei early", "Tishrei late", "Elul"}
	if len(days) != len(want) {
		t.Fatalf("ListCustomDays() returned %d days, want %d", len(days), len(want))
	}
	for i, name := range want {
		if days[i].Name != name {
			t.Errorf("days[%d] = %q, want %q", i, days[i].Name, name)
		}
	}

	tishrei, err := db.ListCustomDaysByMonth(ctx, 1)
	if err != nil {
		t.Fatalf("ListCustomDaysByMonth() error = %v", err)
	}
	if len(tishrei) != 2 {
		t.Errorf("ListCustomDaysByMonth(1) returned %d days, want 2", len(tishrei))
	}
}

func TestListCustomDays_Empty(t *testing.T) {
	db := testDB(t)

	days, err := db.ListCustomDays(context.Background())
	if err != nil {
		t.Fatalf("ListCustomDays() error = %v", err)
	}
	if days == nil || len(days) != 0 {
		t.Errorf("ListCustomDays() = %v, want empty slice", days)
	}
}

func TestDeleteCustomDay(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	day := yahrzeit("Temporary", 1, 1)
	if err := db.CreateCustomDay(ctx, day); err != nil {
		t.Fatalf("CreateCustomDay() error = %v", err)
	}

	if err := db.DeleteCustomDay(ctx, day.ID); err != nil {
		t.Fatalf("DeleteCustomDay() error = %v", err)
	}
	if err := db.DeleteCustomDay(ctx, day.ID); err != ErrNotFound {
		t.Errorf("second DeleteCustomDay() error = %v, want ErrNotFound", err)
	}
}

func TestImportCustomDays(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if err := db.CreateCustomDay(ctx, yahrzeit("Existing", 10, 3)); err != nil {
		t.Fatalf("CreateCustomDay() error = %v", err)
	}

	days := []calendar.CustomDay{
		*yahrzeit("Existing", 10, 3),
		*yahrzeit("New one", 11, 3),
		{Name: "Wedding", Month: 8, Day: 5, Kind: string(KindAnniversary)},
	}

	calls := 0
	res, err := db.ImportCustomDays(ctx, days, func() { calls++ })
	if err != nil {
		t.Fatalf("ImportCustomDays() error = %v", err)
	}
	if res.Inserted != 2 || res.Skipped != 1 {
		t.Errorf("ImportCustomDays() = %+v, want 2 inserted, 1 skipped", res)
	}
	if calls != 3 {
		t.Errorf("progress callback called %d times, want 3", calls)
	}
}

func TestImportCustomDays_RollsBack(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	days := []calendar.CustomDay{
		*yahrzeit("Fine", 1, 2),
		{Name: "Broken", Month: 20, Day: 1, Kind: "other"},
	}

	if _, err := db.ImportCustomDays(ctx, days, nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("ImportCustomDays() error = %v, want ErrInvalid", err)
	}

	all, err := db.ListCustomDays(ctx)
	if err != nil {
		t.Fatalf("ListCustomDays() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("import should have rolled back, found %d days", len(all))
	}
}

// -----------------------------------------------------------------
// Kind tests
// -----------------------------------------------------------------

func TestCustomDayKind_IsValid(t *testing.T) {
	tests := []struct {
		kind CustomDayKind
		want bool
	}{
		{KindYahrzeit, true},
		{KindBirthday, true},
		{KindAnniversary, true},
		{KindOther, true},
		{"holiday", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------
// Transaction tests
// -----------------------------------------------------------------

func TestWithTx_Rollback(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.CreateCustomDay(ctx, yahrzeit("Rolled back", 4, 4)); err != nil {
			return err
		}
		// Force error to trigger rollback
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Fatalf("WithTx() rollback case error = %v, want ErrNotFound", err)
	}

	days, err := db.ListCustomDaysByMonth(ctx, 4)
	if err != nil {
		t.Fatalf("ListCustomDaysByMonth() error = %v", err)
	}
	if len(days) != 0 {
		t.Errorf("day should not exist after rollback, found %d", len(days))
	}
}
