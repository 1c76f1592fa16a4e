// Package store manages SQLite persistence for the verse catalog.
//
// The catalog is the scheduler's only input: an ordered list of
// (introduced date, reference) pairs. Ordering is part of the scheduling
// contract — the first verse anchors the rotating 4-week cycle — so every
// read returns verses ordered by introduction date, then insertion id.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/averett/versebook/pkg/model"

	_ "modernc.org/sqlite"
)

// Store owns the SQLite catalog. WAL mode with a busy timeout keeps
// overlapping vb invocations (shell loops, editor integrations) safe.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the catalog database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS verses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		reference  TEXT NOT NULL UNIQUE,
		introduced TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_verses_introduced ON verses(introduced, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AddVerse inserts a verse, or moves an existing reference to a new
// introduction date. Idempotent via ON CONFLICT.
func (s *Store) AddVerse(reference string, introduced time.Time) (*model.Verse, error) {
	date := introduced.Format(model.DateFormat)
	err := withRetry(func() error {
		_, err := s.db.Exec(
			`INSERT INTO verses (reference, introduced) VALUES (?, ?)
			 ON CONFLICT(reference) DO UPDATE SET introduced = excluded.introduced`,
			reference, date,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.GetVerse(reference)
}

// GetVerse retrieves a verse by reference.
func (s *Store) GetVerse(reference string) (*model.Verse, error) {
	row := s.db.QueryRow(
		`SELECT reference, introduced FROM verses WHERE reference = ?`, reference,
	)
	var v model.Verse
	var dateStr string
	if err := row.Scan(&v.Reference, &dateStr); err != nil {
		return nil, err
	}
	var parseErr error
	v.Introduced, parseErr = time.Parse(model.DateFormat, dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parse introduced date for %q: %w", v.Reference, parseErr)
	}
	return &v, nil
}

// RemoveVerse deletes a verse by reference. Reports whether a row existed.
func (s *Store) RemoveVerse(reference string) (bool, error) {
	var n int64
	err := withRetry(func() error {
		res, err := s.db.Exec(`DELETE FROM verses WHERE reference = ?`, reference)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	return n > 0, err
}

// ListVerses returns the whole catalog in scheduling order: introduction
// date ascending, insertion id as the tiebreak. The first row is the
// cycle anchor.
func (s *Store) ListVerses() ([]model.Verse, error) {
	rows, err := s.db.Query(
		`SELECT reference, introduced FROM verses ORDER BY introduced ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verses []model.Verse
	for rows.Next() {
		var v model.Verse
		var dateStr string
		if err := rows.Scan(&v.Reference, &dateStr); err != nil {
			return nil, err
		}
		var parseErr error
		v.Introduced, parseErr = time.Parse(model.DateFormat, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parse introduced date for %q: %w", v.Reference, parseErr)
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// CountVerses returns the catalog size.
func (s *Store) CountVerses() int64 {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM verses`).Scan(&count); err != nil {
		return 0
	}
	return count
}

// ImportVerses upserts a batch of verses in a single transaction, so a
// half-failed import never leaves a partial catalog. Returns the number
// of verses written.
func (s *Store) ImportVerses(verses []model.Verse) (int, error) {
	var written int
	err := withRetry(func() error {
		written = 0
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for _, v := range verses {
			if _, err := tx.Exec(
				`INSERT INTO verses (reference, introduced) VALUES (?, ?)
				 ON CONFLICT(reference) DO UPDATE SET introduced = excluded.introduced`,
				v.Reference, v.Introduced.Format(model.DateFormat),
			); err != nil {
				return fmt.Errorf("import %q: %w", v.Reference, err)
			}
			written++
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, err
	}
	return written, nil
}
