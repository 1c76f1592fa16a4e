package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averett/versebook/pkg/model"
	"github.com/averett/versebook/pkg/schedule"
)

func (a *app) cmdStatus(args []string) int {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
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
		fmt.Fprintf(os.Stderr, "vb: status: %v\n", err)
		return 1
	}

	rel := model.Relatives(verses, today)
	counts := map[model.Frequency]int{}
	for _, v := range rel {
		counts[v.Frequency()]++
	}
	offset := schedule.WeekOffset(rel)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"date":        today.Format(model.DateFormat),
			"weekday":     today.Weekday().String(),
			"cycle_week":  offset,
			"total":       len(rel),
			"not_started": counts[model.NotStarted],
			"daily":       counts[model.Daily],
			"weekly":      counts[model.Weekly],
			"monthly":     counts[model.Monthly],
			"done":        counts[model.Done],
		})
		return 0
	}

	headerColor.Printf("%s (%s), cycle week %d\n", today.Format(model.DateFormat), today.Weekday(), offset)
	fmt.Printf("  %-12s %d\n", "total", len(rel))
	fmt.Printf("  %-12s %d\n", model.NotStarted, counts[model.NotStarted])
	fmt.Printf("  %-12s %d\n", model.Daily, counts[model.Daily])
	fmt.Printf("  %-12s %d\n", model.Weekly, counts[model.Weekly])
	fmt.Printf("  %-12s %d\n", model.Monthly, counts[model.Monthly])
	fmt.Printf("  %-12s %d\n", model.Done, counts[model.Done])
	return 0
}
