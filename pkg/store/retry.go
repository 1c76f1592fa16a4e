// retry.go retries transient SQLite errors.
//
// vb is routinely run in quick succession — shell loops importing a plan,
// an editor keybinding calling `vb today` while an import runs. WAL-mode
// SQLite can surface SQLITE_BUSY, SQLITE_LOCKED, or short-read errors in
// those windows. The busy_timeout pragma absorbs most of the BUSY cases
// at the connection level; the rest get a few application-level retries
// with exponential backoff and jitter.
package store

import (
	"math/rand"
	"strings"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = 50 * time.Millisecond
	retryMaxDelay  = 500 * time.Millisecond
)

// isTransient reports whether err is a transient SQLite error worth
// retrying: BUSY (5), LOCKED (6), IOERR_SHORT_READ (522), or the
// text-level "database is locked" fallthrough past busy_timeout.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, pattern := range []string{
		"SQLITE_BUSY",
		"SQLITE_LOCKED",
		"IOERR_SHORT_READ",
		"database is locked",
		"database table is locked",
		"(5)",
		"(6)",
		"(522)",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// withRetry runs fn, retrying transient errors with backoff. Success or
// a non-transient error returns immediately.
func withRetry(fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= retryAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil || !isTransient(lastErr) {
			return lastErr
		}
		if attempt < retryAttempts {
			delay := retryBaseDelay << uint(attempt)
			if delay > retryMaxDelay {
				delay = retryMaxDelay
			}
			// Jitter in [0, baseDelay) keeps concurrent invocations
			// from retrying in lockstep.
			time.Sleep(delay + time.Duration(rand.Int63n(int64(retryBaseDelay))))
		}
	}
	return lastErr
}
