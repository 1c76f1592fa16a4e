package store

import (
	"errors"
	"testing"
)

func TestIsTransient_Nil(t *testing.T) {
	if isTransient(nil) {
		t.Fatal("nil error is not transient")
	}
}

func TestIsTransient_Patterns(t *testing.T) {
	for _, msg := range []string{
		"SQLITE_BUSY: database busy",
		"SQLITE_LOCKED",
		"disk I/O error: IOERR_SHORT_READ",
		"database is locked",
		"database table is locked",
		"sqlite error (5)",
		"sqlite error (522)",
	} {
		if !isTransient(errors.New(msg)) {
			t.Fatalf("expected transient: %q", msg)
		}
	}
}

func TestIsTransient_OtherErrors(t *testing.T) {
	for _, msg := range []string{
		"UNIQUE constraint failed: verses.reference",
		"no such table: verses",
		"syntax error",
	} {
		if isTransient(errors.New(msg)) {
			t.Fatalf("expected non-transient: %q", msg)
		}
	}
}

func TestWithRetry_SucceedsImmediately(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("got %d calls, want 1", calls)
	}
}

func TestWithRetry_NonTransientReturnsDirectly(t *testing.T) {
	calls := 0
	wantErr := errors.New("UNIQUE constraint failed")
	err := withRetry(func() error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
	if calls != 1 {
		t.Fatalf("non-transient error should not retry: got %d calls", calls)
	}
}

func TestWithRetry_TransientRetriesThenSucceeds(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		if calls < 3 {
			return errors.New("SQLITE_BUSY")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("got %d calls, want 3", calls)
	}
}

func TestWithRetry_TransientExhaustsAttempts(t *testing.T) {
	calls := 0
	err := withRetry(func() error {
		calls++
		return errors.New("database is locked")
	})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != retryAttempts+1 {
		t.Fatalf("got %d calls, want %d", calls, retryAttempts+1)
	}
}
