package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/averett/versebook/pkg/model"
)

func (a *app) cmdAdd(args []string) int {
	flags := flag.NewFlagSet("add", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: vb add <yyyy-mm-dd> <reference> [--json]")
		return 1
	}

	introduced, err := time.Parse(model.DateFormat, flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: invalid date %q (want yyyy-mm-dd)\n", flags.Arg(0))
		return 1
	}
	reference := strings.Join(flags.Args()[1:], " ")

	v, err := a.store.AddVerse(reference, introduced)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: add: %v\n", err)
		return 1
	}

	today, err := resolveDate("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"verse":     v,
			"weeks_in":  v.WeeksIn(today),
			"frequency": v.Frequency(today),
		})
		return 0
	}

	fmt.Printf("added %s (introduced %s, %s)\n",
		v.Reference, v.Introduced.Format(model.DateFormat), v.Frequency(today))
	return 0
}
