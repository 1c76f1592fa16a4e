package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/store"
)

const (
	defaultDir = ".versebook"
	defaultDB  = ".versebook/versebook.db"
)

// app holds shared state for all CLI subcommands.
type app struct {
	store *store.Store
}

// newApp opens the catalog database, creating the .versebook/ directory
// if the default path is in use.
func newApp() (*app, error) {
	dbPath := envOr("VERSEBOOK_DB", defaultDB)
	if dbPath == defaultDB {
		if err := os.MkdirAll(defaultDir, 0755); err != nil {
			return nil, fmt.Errorf("cannot create %s: %w", defaultDir, err)
		}
	}
	s, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", dbPath, err)
	}
	return &app{store: s}, nil
}

// Close releases the database connection.
func (a *app) Close() { a.store.Close() }

// resolveDate returns the reference date: the --date flag if set, then
// VERSEBOOK_DATE, then the current day. Date parsing and validation live
// here at the CLI boundary; the scheduling packages only ever see
// already-valid dates.
func resolveDate(flagVal string) (time.Time, error) {
	val := flagVal
	if val == "" {
		val = os.Getenv("VERSEBOOK_DATE")
	}
	if val == "" {
		return time.Now(), nil
	}
	d, err := time.Parse(model.DateFormat, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want yyyy-mm-dd)", val)
	}
	return d, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
