package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/averett/versebook/pkg/model"
)

func (a *app) cmdExport(args []string) int {
	flags := flag.NewFlagSet("export", flag.ContinueOnError)
	out := flags.String("out", "", "write to file instead of stdout")
	jsonOut := flags.Bool("json", false, "JSON output instead of YAML")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	verses, err := a.store.ListVerses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: export: %v\n", err)
		return 1
	}

	entries := make([]planEntry, len(verses))
	for i, v := range verses {
		entries[i] = planEntry{
			Date:      v.Introduced.Format(model.DateFormat),
			Reference: v.Reference,
		}
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"verses": entries, "count": len(entries)})
		return 0
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vb: export: %v\n", err)
		return 1
	}

	if *out == "" {
		fmt.Print(string(data))
		return 0
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "vb: export: %v\n", err)
		return 1
	}
	fmt.Printf("exported %d verse(s) to %s\n", len(entries), *out)
	return 0
}
