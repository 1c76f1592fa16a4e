package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/averett/versebook/pkg/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New(%q): %v", dbPath, err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestAddVerse(t *testing.T) {
	s := newTestStore(t)
	v, err := s.AddVerse("John 1:1", day(t, "2025-07-06"))
	if err != nil {
		t.Fatalf("AddVerse: %v", err)
	}
	if v.Reference != "John 1:1" {
		t.Fatalf("got reference %q, want John 1:1", v.Reference)
	}
	if got := v.Introduced.Format(model.DateFormat); got != "2025-07-06" {
		t.Fatalf("got introduced %s, want 2025-07-06", got)
	}
}

func TestAddVerse_UpsertMovesDate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.AddVerse("John 1:1", day(t, "2025-07-06")); err != nil {
		t.Fatal(err)
	}
	v, err := s.AddVerse("John 1:1", day(t, "2025-08-03"))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Introduced.Format(model.DateFormat); got != "2025-08-03" {
		t.Fatalf("re-add should move the date: got %s, want 2025-08-03", got)
	}
	if n := s.CountVerses(); n != 1 {
		t.Fatalf("re-add should not duplicate: got %d verses, want 1", n)
	}
}

func TestGetVerse_NotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.GetVerse("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent verse")
	}
}

func TestRemoveVerse(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.AddVerse("John 1:1", day(t, "2025-07-06")); err != nil {
		t.Fatal(err)
	}
	removed, err := s.RemoveVerse("John 1:1")
	if err != nil {
		t.Fatalf("RemoveVerse: %v", err)
	}
	if !removed {
		t.Fatal("expected removed=true for existing verse")
	}
	if n := s.CountVerses(); n != 0 {
		t.Fatalf("got %d verses after removal, want 0", n)
	}
}

func TestRemoveVerse_Missing(t *testing.T) {
	s := newTestStore(t)
	removed, err := s.RemoveVerse("nonexistent")
	if err != nil {
		t.Fatalf("RemoveVerse: %v", err)
	}
	if removed {
		t.Fatal("expected removed=false for missing verse")
	}
}

func TestListVerses_SchedulingOrder(t *testing.T) {
	s := newTestStore(t)
	// Inserted out of date order; ties on date keep insertion order.
	if _, err := s.AddVerse("John 1:3", day(t, "2025-07-20")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddVerse("John 1:1", day(t, "2025-07-06")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddVerse("Psalm 23:1", day(t, "2025-07-06")); err != nil {
		t.Fatal(err)
	}

	verses, err := s.ListVerses()
	if err != nil {
		t.Fatalf("ListVerses: %v", err)
	}
	// John 1:1 inserted before Psalm 23:1 on the same date, but after
	// John 1:3 overall — date wins, then insertion id.
	want := []string{"John 1:1", "Psalm 23:1", "John 1:3"}
	if len(verses) != len(want) {
		t.Fatalf("got %d verses, want %d", len(verses), len(want))
	}
	for i, w := range want {
		if verses[i].Reference != w {
			t.Fatalf("verses[%d]: got %q, want %q", i, verses[i].Reference, w)
		}
	}
}

func TestListVerses_Empty(t *testing.T) {
	s := newTestStore(t)
	verses, err := s.ListVerses()
	if err != nil {
		t.Fatalf("ListVerses: %v", err)
	}
	if len(verses) != 0 {
		t.Fatalf("got %d verses, want 0", len(verses))
	}
}

func TestImportVerses(t *testing.T) {
	s := newTestStore(t)
	batch := make([]model.Verse, 10)
	for i := range batch {
		batch[i] = model.Verse{
			Introduced: day(t, "2025-07-06").AddDate(0, 0, 7*i),
			Reference:  fmt.Sprintf("John 1:%d", i+1),
		}
	}
	written, err := s.ImportVerses(batch)
	if err != nil {
		t.Fatalf("ImportVerses: %v", err)
	}
	if written != 10 {
		t.Fatalf("got %d written, want 10", written)
	}
	if n := s.CountVerses(); n != 10 {
		t.Fatalf("got %d verses, want 10", n)
	}
}

func TestImportVerses_UpsertsExisting(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.AddVerse("John 1:1", day(t, "2025-07-06")); err != nil {
		t.Fatal(err)
	}
	_, err := s.ImportVerses([]model.Verse{
		{Introduced: day(t, "2025-09-07"), Reference: "John 1:1"},
		{Introduced: day(t, "2025-09-14"), Reference: "John 1:2"},
	})
	if err != nil {
		t.Fatalf("ImportVerses: %v", err)
	}
	if n := s.CountVerses(); n != 2 {
		t.Fatalf("got %d verses, want 2", n)
	}
	v, err := s.GetVerse("John 1:1")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Introduced.Format(model.DateFormat); got != "2025-09-07" {
		t.Fatalf("import should move the date: got %s, want 2025-09-07", got)
	}
}

func TestCountVerses_Empty(t *testing.T) {
	s := newTestStore(t)
	if n := s.CountVerses(); n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
}
