package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/schedule"
)

func (a *app) cmdWeek(args []string) int {
	flags := flag.NewFlagSet("week", flag.ContinueOnError)
	date := flags.String("date", "", "reference date (yyyy-mm-dd)")
	week := flags.Int("week", -1, "cycle week 0..3 (-1 = the current one)")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	today, err := resolveDate(*date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: %v\n", err)
		return 1
	}

	verses, err := a.store.ListVerses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: week: %v\n", err)
		return 1
	}

	rel := model.Relatives(verses, today)
	cycleWeek := *week
	if cycleWeek < 0 {
		cycleWeek = schedule.WeekOffset(rel)
	}
	if cycleWeek >= model.WeeksPerCycle {
		fmt.Fprintf(os.Stderr, "vb: week: cycle week must be 0..%d\n", model.WeeksPerCycle-1)
		return 1
	}

	plan := schedule.BuildWeek(rel, cycleWeek)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"date": today.Format(model.DateFormat),
			"week": plan,
		})
		return 0
	}

	renderWeekPlan(plan)
	return 0
}
