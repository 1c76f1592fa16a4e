// Command vb is the versebook CLI — a rotating 4-week recitation schedule
// for memorized passages.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("vb", version)
		return
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Setup
	case "init":
		os.Exit(a.cmdInit(os.Args[2:]))

	// Catalog
	case "add":
		os.Exit(a.cmdAdd(os.Args[2:]))
	case "remove", "rm":
		os.Exit(a.cmdRemove(os.Args[2:]))
	case "list", "ls":
		os.Exit(a.cmdList(os.Args[2:]))
	case "import":
		os.Exit(a.cmdImport(os.Args[2:]))
	case "export":
		os.Exit(a.cmdExport(os.Args[2:]))

	// Schedule
	case "today":
		os.Exit(a.cmdToday(os.Args[2:]))
	case "week":
		os.Exit(a.cmdWeek(os.Args[2:]))
	case "month":
		os.Exit(a.cmdMonth(os.Args[2:]))
	case "status":
		os.Exit(a.cmdStatus(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "vb: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'vb --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`vb — rotating recitation schedule for memorized passages

Each verse climbs a ladder by age: daily for 7 weeks, weekly for 28,
then monthly (once per 4-week cycle) for 336. Weekly and monthly work
is spread evenly over the days of the week.

Usage:
  vb <command> [flags]

Setup:
  init                       Initialize the .versebook/ catalog

Catalog:
  add <date> <reference>     Add a verse (date is yyyy-mm-dd, its introduction)
  remove <reference>         Remove a verse
  list                       Show the catalog with each verse's current tier
  import <file.yaml>         Bulk-load verses from a YAML plan
  export [--out file]        Write the catalog as a YAML plan

Schedule:
  today                      What to recite on the reference date
  week [--week N]            One cycle-week's seven days
  month [--stats]            The full 4-week rotation
  status                     Tier counts and cycle position

Aliases:
  rm = remove, ls = list

Environment:
  VERSEBOOK_DB      SQLite catalog path (default: .versebook/versebook.db)
  VERSEBOOK_DATE    Reference date override, yyyy-mm-dd (default: today)

All commands support --json for machine-readable output.
Schedule commands support --date <yyyy-mm-dd> to override VERSEBOOK_DATE.

Exit codes:
  0  success
  1  error
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "vb: "+format+"\n", args...)
	os.Exit(1)
}
