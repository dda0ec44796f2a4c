// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -config, -run, -iterations, -subscribers, -jobs, -format, -frame, -list, -v, -version

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/mauromedda/callme-go/internal/config"
)

type cliArgs struct {
	config      string
	run         string
	iterations  int
	subscribers intList
	jobs        int
	format      string
	frame       string
	list        bool
	verbose     bool
	version     bool
}

// intList is a comma-separated list of integers.
type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var out intList
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid count %q", part)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

func parseFlags(argv []string) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet("callme-bench", flag.ContinueOnError)

	fs.StringVar(&args.config, "config", "", "YAML profile to load")
	fs.StringVar(&args.run, "run", "", "Fuzzy filter over scenario IDs; comma separates alternatives")
	fs.IntVar(&args.iterations, "iterations", 0, "Calls per scenario")
	fs.Var(&args.subscribers, "subscribers", "Comma-separated subscriber counts for event scenarios")
	fs.IntVar(&args.jobs, "jobs", 0, "Scenario groups run at once")
	fs.StringVar(&args.format, "format", "", "Output format: table or markdown")
	fs.StringVar(&args.frame, "frame", "", "Table frame: line, basic, rounded, thick, double, minimal")
	fs.BoolVar(&args.list, "list", false, "List scenario IDs and exit")
	fs.BoolVar(&args.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if fs.NArg() > 0 {
		return cliArgs{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return args, nil
}

// overrides returns the profile fields set on the command line.
func (a cliArgs) overrides() config.Profile {
	p := config.Profile{
		Run:        a.run,
		Iterations: a.iterations,
		Jobs:       a.jobs,
		Format:     a.format,
		Frame:      a.frame,
	}
	if len(a.subscribers) > 0 {
		p.Subscribers = []int(a.subscribers)
	}
	if a.verbose {
		p.LogLevel = "debug"
	}
	return p
}
