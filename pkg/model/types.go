// Package model defines the core domain types for versebook.
//
// Versebook schedules recitation of memorized passages on a fixed ladder
// keyed to how many whole weeks ago a verse was introduced:
//
//   - Daily for the first 7 weeks.
//   - Weekly for the next 28 weeks.
//   - Monthly for the next 336 weeks. "Monthly" means once per rotating
//     4-week cycle, never a calendar month.
//   - Done after that (roughly seven years in).
//
// Ages are whole elapsed weeks: floor of elapsed days over 7, rounding
// toward negative infinity, so tier boundaries land exactly on multiples
// of 7 days from the introduction date. A verse introduced in the future
// has a negative age and has not started.
package model

import "time"

// DateFormat is the calendar date format used everywhere: input files,
// the catalog, and CLI arguments.
const DateFormat = "2006-01-02"

// Cycle geometry.
const (
	DaysPerWeek   = 7
	WeeksPerCycle = 4
)

// Tier widths in weeks, cumulative left to right.
const (
	DailyWeeks   = 7
	WeeklyWeeks  = 28
	MonthlyWeeks = 336
)

// Frequency is the review cadence tier for a verse at a given age.
type Frequency string

const (
	NotStarted Frequency = "not_started"
	Daily      Frequency = "daily"
	Weekly     Frequency = "weekly"
	Monthly    Frequency = "monthly"
	Done       Frequency = "done"
)

// NewFrequency classifies an age in whole weeks into a cadence tier.
// Total over all integers; first matching threshold wins.
func NewFrequency(weeksIn int) Frequency {
	switch {
	case weeksIn < 0:
		return NotStarted
	case weeksIn < DailyWeeks:
		return Daily
	case weeksIn < DailyWeeks+WeeklyWeeks:
		return Weekly
	case weeksIn < DailyWeeks+WeeklyWeeks+MonthlyWeeks:
		return Monthly
	default:
		return Done
	}
}

// Verse is a catalog entry: a passage reference tied to the date it was
// first introduced. Immutable once created.
type Verse struct {
	Introduced time.Time `json:"introduced_on"`
	Reference  string    `json:"reference"`
}

// WeeksIn returns the verse's age in whole weeks relative to today.
// Negative if the verse has not been introduced yet.
func (v Verse) WeeksIn(today time.Time) int {
	return floorDiv(daysBetween(v.Introduced, today), DaysPerWeek)
}

// Frequency returns the verse's cadence tier relative to today.
func (v Verse) Frequency(today time.Time) Frequency {
	return NewFrequency(v.WeeksIn(today))
}

// Relative derives the date-independent view of the verse for a given
// reference date. Computed fresh per query, never persisted.
func (v Verse) Relative(today time.Time) RelativeVerse {
	return RelativeVerse{WeeksIn: v.WeeksIn(today), Reference: v.Reference}
}

// RelativeVerse is a verse with its age already resolved against a
// reference date. All scheduling works on these.
type RelativeVerse struct {
	WeeksIn   int    `json:"weeks_in"`
	Reference string `json:"reference"`
}

// Frequency returns the cadence tier for the verse's resolved age.
func (v RelativeVerse) Frequency() Frequency {
	return NewFrequency(v.WeeksIn)
}

// WithOffset returns a copy of the verse aged forward by the given number
// of weeks. Used to ask "what tier will this verse be in when cycle-week n
// is reached".
func (v RelativeVerse) WithOffset(weeks int) RelativeVerse {
	v.WeeksIn += weeks
	return v
}

// IsDaily reports whether the verse is currently in the daily tier.
func (v RelativeVerse) IsDaily() bool { return v.Frequency() == Daily }

// IsWeekly reports whether the verse is currently in the weekly tier.
func (v RelativeVerse) IsWeekly() bool { return v.Frequency() == Weekly }

// IsMonthly reports whether the verse is currently in the monthly tier.
func (v RelativeVerse) IsMonthly() bool { return v.Frequency() == Monthly }

// Relatives resolves every verse against a reference date, preserving
// catalog order. Order matters: the first verse anchors the 4-week cycle.
func Relatives(verses []Verse, today time.Time) []RelativeVerse {
	out := make([]RelativeVerse, len(verses))
	for i, v := range verses {
		out[i] = v.Relative(today)
	}
	return out
}

// daysBetween returns whole calendar days from a to b, ignoring any
// time-of-day or zone component. Negative if b precedes a.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua) / (24 * time.Hour))
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating division. -1 day is week -1, not week 0.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}
