package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/schedule"
)

func (a *app) cmdToday(args []string) int {
	flags := flag.NewFlagSet("today", flag.ContinueOnError)
	date := flags.String("date", "", "reference date (yyyy-mm-dd)")
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
		fmt.Fprintf(os.Stderr, "vb: today: %v\n", err)
		return 1
	}

	bucket := schedule.ForDate(verses, today)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"date":    today.Format(model.DateFormat),
			"weekday": today.Weekday().String(),
			"bucket":  bucket,
		})
		return 0
	}

	headerColor.Printf("%s (%s)\n", today.Format(model.DateFormat), today.Weekday())
	renderDayBucket(bucket)
	return 0
}
