// Package schedule builds the rotating 4-week review plan.
//
// The plan answers one question: given the verse catalog and a date, what
// must be recited that day? Three tiers feed a day:
//
//   - Daily verses appear in full on every day of the week; they are
//     never split.
//   - Weekly verses are spread across the 7 days of the week, each verse
//     landing on exactly one day.
//   - Monthly verses are first divided among the 4 weeks of the cycle,
//     then the selected week's share is spread across its 7 days. A
//     monthly verse is therefore recited once per 4-week cycle.
//
// A week plan is built for a cycle-week offset in [0,3]. Membership looks
// ahead: a verse counts as weekly for offset n if it will be in the
// weekly tier once n more weeks have passed, and counts as a monthly
// candidate if it is monthly now or will be after n weeks. The look-ahead
// keeps verses that change tiers mid-cycle from falling out of the plan
// entirely.
//
// Everything here is a pure function over immutable inputs; callers may
// share inputs across goroutines freely.
package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/partition"
)

// DayBucket is one day's recitation work: the full daily set plus this
// day's slice of the weekly and monthly rotations.
type DayBucket struct {
	Daily   []model.RelativeVerse `json:"daily"`
	Weekly  []model.RelativeVerse `json:"weekly"`
	Monthly []model.RelativeVerse `json:"monthly"`
}

// WeekPlan is one cycle-week's 7 day buckets, Sunday through Saturday.
type WeekPlan struct {
	CycleWeek int         `json:"cycle_week"`
	Days      []DayBucket `json:"days"`
}

// MonthPlan is the full rotating cycle: week plans for offsets 0..3.
// It represents cycle position, not a calendar month.
type MonthPlan struct {
	Weeks []WeekPlan `json:"weeks"`
}

// BuildWeek constructs the plan for one cycle-week offset in [0,3].
//
// The daily set uses each verse's current tier and is shared, unsplit,
// by all 7 buckets. The weekly and monthly sets use the offset-advanced
// tier as described in the package comment, and are split 7 ways in
// catalog order.
func BuildWeek(verses []model.RelativeVerse, cycleWeek int) WeekPlan {
	daily := make([]model.RelativeVerse, 0)
	weekly := make([]model.RelativeVerse, 0)
	candidates := make([]model.RelativeVerse, 0)
	for _, v := range verses {
		if v.IsDaily() {
			daily = append(daily, v)
		}
		if v.WithOffset(cycleWeek).IsWeekly() {
			weekly = append(weekly, v)
		}
		if v.IsMonthly() || v.WithOffset(cycleWeek).IsMonthly() {
			candidates = append(candidates, v)
		}
	}

	weeklyByDay := partition.SplitN(weekly, model.DaysPerWeek)
	monthlyByDay := partition.SplitN(monthlyPool(candidates, cycleWeek), model.DaysPerWeek)

	days := make([]DayBucket, model.DaysPerWeek)
	for d := range days {
		days[d] = DayBucket{
			Daily:   daily,
			Weekly:  weeklyByDay[d],
			Monthly: monthlyByDay[d],
		}
	}
	return WeekPlan{CycleWeek: cycleWeek, Days: days}
}

// monthlyPool selects cycle-week w's share of the monthly candidates.
// The candidates are cut into 4 contiguous blocks of len/4 and block w is
// returned. Candidates beyond the last full block (at most 3) belong to
// no week of the cycle and are not scheduled until the pool grows.
//
// That trailing loss is long-standing behavior the four-pool invariants
// depend on: the pools stay disjoint and equally sized. Do not replace
// this with a remainder-to-front split.
func monthlyPool(candidates []model.RelativeVerse, w int) []model.RelativeVerse {
	block := len(candidates) / model.WeeksPerCycle
	start := w * block
	end := start + block
	return candidates[start:end:end]
}

// BuildMonth constructs week plans for every cycle offset, in order.
func BuildMonth(verses []model.RelativeVerse) MonthPlan {
	weeks := make([]WeekPlan, model.WeeksPerCycle)
	for n := range weeks {
		weeks[n] = BuildWeek(verses, n)
	}
	return MonthPlan{Weeks: weeks}
}

// WeekOffset returns which cycle-week applies for the given resolved
// verses: the first verse's age mod 4, or 0 while the first verse has
// not started (or the catalog is empty). The first verse in catalog
// order is the cycle anchor; callers control it through input order.
func WeekOffset(verses []model.RelativeVerse) int {
	if len(verses) == 0 {
		return 0
	}
	w := verses[0].WeeksIn
	if w < 0 {
		return 0
	}
	return w % model.WeeksPerCycle
}

// ForDate resolves what to recite on a specific date: ages every verse
// against the date, picks the cycle-week from the anchor verse, builds
// the month plan, and selects that week's bucket for the date's weekday
// (Sunday = 0). An out-of-range week or day yields an empty bucket
// rather than an error; the modulo construction keeps both in range.
func ForDate(verses []model.Verse, today time.Time) DayBucket {
	rel := model.Relatives(verses, today)
	offset := WeekOffset(rel)
	month := BuildMonth(rel)
	if offset < 0 || offset >= len(month.Weeks) {
		return emptyBucket()
	}
	week := month.Weeks[offset]
	day := int(today.Weekday())
	if day < 0 || day >= len(week.Days) {
		return emptyBucket()
	}
	return week.Days[day]
}

func emptyBucket() DayBucket {
	return DayBucket{
		Daily:   []model.RelativeVerse{},
		Weekly:  []model.RelativeVerse{},
		Monthly: []model.RelativeVerse{},
	}
}

// Stats renders per-day tier counts for the whole cycle: one line per
// day ("D: n | W: n | M: n"), weeks separated by "---". Kept as the
// compact at-a-glance load report.
func (m MonthPlan) Stats() string {
	weeks := make([]string, 0, len(m.Weeks))
	for _, w := range m.Weeks {
		days := make([]string, 0, len(w.Days))
		for _, d := range w.Days {
			days = append(days, fmt.Sprintf("D: %d | W: %d | M: %d",
				len(d.Daily), len(d.Weekly), len(d.Monthly)))
		}
		weeks = append(weeks, strings.Join(days, "\n"))
	}
	return strings.Join(weeks, "\n---\n")
}
