package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func (a *app) cmdRemove(args []string) int {
	flags := flag.NewFlagSet("remove", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: vb remove <reference> [--json]")
		return 1
	}
	reference := strings.Join(flags.Args(), " ")

	removed, err := a.store.RemoveVerse(reference)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: remove: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"reference": reference, "removed": removed})
		if removed {
			return 0
		}
		return 1
	}

	if !removed {
		fmt.Fprintf(os.Stderr, "vb: no verse %q in the catalog\n", reference)
		return 1
	}
	fmt.Printf("removed %s\n", reference)
	return 0
}
