package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/averett/versebook/pkg/model"
)

// planEntry is one line of a YAML memorization plan:
//
//	- date: 2025-07-06
//	  reference: John 1:1
//
// Plan order within a date is preserved by insertion order, so the first
// entry of the plan stays the cycle anchor after import.
type planEntry struct {
	Date      string `yaml:"date" json:"date"`
	Reference string `yaml:"reference" json:"reference"`
}

func (a *app) cmdImport(args []string) int {
	flags := flag.NewFlagSet("import", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: vb import <plan.yaml> [--json]")
		return 1
	}
	path := flags.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: import: %v\n", err)
		return 1
	}
	var entries []planEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(os.Stderr, "vb: import: parsing %s: %v\n", path, err)
		return 1
	}

	// Validate everything before writing anything; the store import is
	// transactional so a bad entry rejects the whole plan.
	verses := make([]model.Verse, 0, len(entries))
	for i, e := range entries {
		if e.Reference == "" {
			fmt.Fprintf(os.Stderr, "vb: import: entry %d has no reference\n", i+1)
			return 1
		}
		d, err := time.Parse(model.DateFormat, e.Date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vb: import: entry %d (%s): invalid date %q (want yyyy-mm-dd)\n",
				i+1, e.Reference, e.Date)
			return 1
		}
		verses = append(verses, model.Verse{Introduced: d, Reference: e.Reference})
	}

	written, err := a.store.ImportVerses(verses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: import: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"file": path, "imported": written})
		return 0
	}
	fmt.Printf("imported %d verse(s) from %s\n", written, path)
	return 0
}
