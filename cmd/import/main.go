// Command import loads custom days (yahrzeits, birthdays, anniversaries)
// from a JSON file into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -json data/custom_days.json -db data/hdate.db
//	go run ./cmd/import -json data/custom_days.json -dry-run
//
// The file holds either a bare array of custom days or an object with a
// "custom_days" array:
//
//	{"custom_days": [{"name": "Grandfather", "hebrew_month": 5, "hebrew_day": 12, "kind": "yahrzeit"}]}
//
// Every entry is validated before the database is opened, and the insert
// runs in one transaction. Entries already stored are skipped, so the
// import can be repeated.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/zapponejosh/hdate-api/internal/calendar"
	"github.com/zapponejosh/hdate-api/internal/database"
	"github.com/zapponejosh/hdate-api/internal/logger"
)

// ImportFile is the object form of the input file.
type ImportFile struct {
	CustomDays []calendar.CustomDay `json:"custom_days"`
}

type options struct {
	jsonPath string
	dbPath   string
	dryRun   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.jsonPath, "json", "data/custom_days.json", "Path to custom days JSON file")
	flag.StringVar(&opts.dbPath, "db", "data/hdate.db", "Path to SQLite database")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "Validate the file without writing to the database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stdout, level, "text")

	if err := run(context.Background(), opts, log); err != nil {
		log.Error("import failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, log *slog.Logger) error {
	started := time.Now()

	days, err := loadFile(opts.jsonPath)
	if err != nil {
		return err
	}
	if err := validate(days, log); err != nil {
		return err
	}
	log.Info("custom days parsed", slog.String("path", opts.jsonPath), slog.Int("count", len(days)))

	if opts.dryRun {
		log.Info("dry run, database untouched")
		return nil
	}

	db, err := database.Open(database.DefaultConfig(opts.dbPath), log)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	result, err := store(ctx, db, days)
	if err != nil {
		return err
	}

	stored, err := db.ListCustomDays(ctx)
	if err != nil {
		return fmt.Errorf("count custom days: %w", err)
	}

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Custom days in file:  %d\n", len(days))
	fmt.Printf("Inserted:             %d\n", result.Inserted)
	fmt.Printf("Already present:      %d\n", result.Skipped)
	fmt.Printf("Stored in database:   %d\n", len(stored))
	fmt.Printf("Time elapsed:         %v\n", time.Since(started).Round(time.Millisecond))
	return nil
}

func loadFile(path string) ([]calendar.CustomDay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	days, err := parseCustomDays(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return days, nil
}

// parseCustomDays accepts a bare array or an ImportFile object.
func parseCustomDays(data []byte) ([]calendar.CustomDay, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty file")
	}

	if data[0] == '[' {
		var days []calendar.CustomDay
		err := json.Unmarshal(data, &days)
		return days, err
	}

	var file ImportFile
	err := json.Unmarshal(data, &file)
	return file.CustomDays, err
}

// validate fills in the default kind and checks every entry, logging each
// bad one before failing.
func validate(days []calendar.CustomDay, log *slog.Logger) error {
	var errs []error
	for i := range days {
		if days[i].Kind == "" {
			days[i].Kind = string(database.KindOther)
		}
		if err := database.ValidateCustomDay(days[i]); err != nil {
			log.Error("invalid custom day", slog.Int("index", i), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("entry %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d custom days are invalid: %w", len(errs), len(days), errors.Join(errs...))
	}
	return nil
}

func store(ctx context.Context, db *database.DB, days []calendar.CustomDay) (database.ImportResult, error) {
	bar := progressbar.NewOptions(len(days),
		progressbar.OptionSetDescription("Importing custom days..."),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(os.Stderr),
	)
	defer bar.Close()

	result, err := db.ImportCustomDays(ctx, days, func() { bar.Add(1) })
	if err != nil {
		return result, fmt.Errorf("import custom days: %w", err)
	}
	bar.Finish()
	return result, nil
}
