package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/schedule"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	dailyColor   = color.New(color.FgRed)
	weeklyColor  = color.New(color.FgYellow)
	monthlyColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

// renderDayBucket prints one day's work as three tier sections. Empty
// tiers are shown as "none" so a light day is visibly light, not broken.
func renderDayBucket(b schedule.DayBucket) {
	renderTier("daily", dailyColor, b.Daily)
	renderTier("weekly", weeklyColor, b.Weekly)
	renderTier("monthly", monthlyColor, b.Monthly)
}

func renderTier(name string, c *color.Color, verses []model.RelativeVerse) {
	fmt.Printf("%s (%d):\n", c.Sprint(name), len(verses))
	if len(verses) == 0 {
		fmt.Printf("  %s\n", dimColor.Sprint("none"))
		return
	}
	for _, v := range verses {
		fmt.Printf("  %s %s\n", v.Reference, dimColor.Sprintf("(week %d)", v.WeeksIn))
	}
}

// renderWeekPlan prints a cycle-week as seven labeled days with their
// weekly and monthly shares; the shared daily set is printed once.
func renderWeekPlan(w schedule.WeekPlan) {
	headerColor.Printf("cycle week %d\n", w.CycleWeek)
	if len(w.Days) == 0 {
		return
	}
	fmt.Printf("daily, every day (%d):\n", len(w.Days[0].Daily))
	for _, v := range w.Days[0].Daily {
		fmt.Printf("  %s\n", v.Reference)
	}
	for d, bucket := range w.Days {
		fmt.Printf("%s:\n", headerColor.Sprint(time.Weekday(d).String()))
		for _, v := range bucket.Weekly {
			fmt.Printf("  %s %s\n", v.Reference, weeklyColor.Sprint("[weekly]"))
		}
		for _, v := range bucket.Monthly {
			fmt.Printf("  %s %s\n", v.Reference, monthlyColor.Sprint("[monthly]"))
		}
		if len(bucket.Weekly)+len(bucket.Monthly) == 0 {
			fmt.Printf("  %s\n", dimColor.Sprint("daily set only"))
		}
	}
}

// renderMonthGrid prints per-day tier counts for all four cycle-weeks.
func renderMonthGrid(m schedule.MonthPlan) {
	for _, w := range m.Weeks {
		headerColor.Printf("cycle week %d\n", w.CycleWeek)
		for d, bucket := range w.Days {
			fmt.Printf("  %-9s daily=%-3d weekly=%-3d monthly=%d\n",
				time.Weekday(d).String(), len(bucket.Daily), len(bucket.Weekly), len(bucket.Monthly))
		}
	}
}
