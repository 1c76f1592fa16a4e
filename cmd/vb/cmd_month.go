package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/schedule"
)

func (a *app) cmdMonth(args []string) int {
	flags := flag.NewFlagSet("month", flag.ContinueOnError)
	date := flags.String("date", "", "reference date (yyyy-mm-dd)")
	stats := flags.Bool("stats", false, "bare per-day count lines")
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
		fmt.Fprintf(os.Stderr, "vb: month: %v\n", err)
		return 1
	}

	plan := schedule.BuildMonth(model.Relatives(verses, today))

	switch {
	case *jsonOut:
		printJSON(map[string]interface{}{
			"date":  today.Format(model.DateFormat),
			"month": plan,
		})
	case *stats:
		fmt.Println(plan.Stats())
	default:
		renderMonthGrid(plan)
	}
	return 0
}
