package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdInit(args []string) int {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	// newApp already created the directory and database; init just
	// confirms and reports where things live.
	dbPath := envOr("VERSEBOOK_DB", defaultDB)
	count := a.store.CountVerses()

	if *jsonOut {
		printJSON(map[string]interface{}{
			"db":     dbPath,
			"verses": count,
		})
		return 0
	}

	fmt.Printf("initialized versebook catalog at %s\n", dbPath)
	if count > 0 {
		fmt.Printf("catalog already holds %d verse(s)\n", count)
	} else {
		fmt.Fprintln(os.Stderr, "next: 'vb add <yyyy-mm-dd> <reference>' or 'vb import <plan.yaml>'")
	}
	return 0
}
