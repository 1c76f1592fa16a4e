package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/averett/versebook/pkg/model"
)

func (a *app) cmdList(args []string) int {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
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
		fmt.Fprintf(os.Stderr, "vb: list: %v\n", err)
		return 1
	}

	type row struct {
		Reference  string          `json:"reference"`
		Introduced string          `json:"introduced_on"`
		WeeksIn    int             `json:"weeks_in"`
		Frequency  model.Frequency `json:"frequency"`
	}
	rows := make([]row, len(verses))
	for i, v := range verses {
		rows[i] = row{
			Reference:  v.Reference,
			Introduced: v.Introduced.Format(model.DateFormat),
			WeeksIn:    v.WeeksIn(today),
			Frequency:  v.Frequency(today),
		}
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"date":   today.Format(model.DateFormat),
			"verses": rows,
			"count":  len(rows),
		})
		return 0
	}

	if len(rows) == 0 {
		fmt.Println("catalog is empty")
		return 0
	}
	for _, r := range rows {
		fmt.Printf("  %-30s introduced=%s week=%-4d %s\n",
			r.Reference, r.Introduced, r.WeeksIn, r.Frequency)
	}
	fmt.Fprintf(os.Stderr, "(%d verses as of %s)\n", len(rows), today.Format(model.DateFormat))
	return 0
}
