// ABOUTME: CLI entry point for callme-bench
// ABOUTME: Loads the profile, selects scenarios, runs them and prints tables or markdown

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mauromedda/callme-go/internal/bench"
	"github.com/mauromedda/callme-go/internal/config"
	"github.com/mauromedda/callme-go/internal/log"
	"github.com/mauromedda/callme-go/internal/pretty"
	"github.com/mauromedda/callme-go/internal/report"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("callme-bench %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, args, os.Stdout); err != nil {
		log.Error("%v", err)
		stop()
		os.Exit(1)
	}
}

// run loads the profile, applies command-line overrides and writes the
// results to out.
func run(ctx context.Context, args cliArgs, out io.Writer) error {
	loaded, err := config.Load(args.config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	profile := config.Merge(*loaded, args.overrides())
	if err := profile.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(profile.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	if args.list {
		for _, s := range bench.Catalogue() {
			fmt.Fprintln(out, s.ID())
		}
		return nil
	}

	frame, err := pretty.ParseFrame(profile.Frame)
	if err != nil {
		return err
	}
	scenarios, err := bench.Select(bench.Catalogue(), profile.Run)
	if err != nil {
		return err
	}

	log.Info("running %d scenarios, %s iterations each", len(scenarios), pretty.Count(int64(profile.Iterations)))
	runner := &bench.Runner{
		Iterations:  profile.Iterations,
		Subscribers: profile.Subscribers,
		Jobs:        profile.Jobs,
	}
	results, err := runner.Run(ctx, scenarios)
	if err != nil {
		return fmt.Errorf("running scenarios: %w", err)
	}

	switch profile.Format {
	case config.FormatMarkdown:
		styled, width := false, report.DefaultWidth
		if f, ok := out.(*os.File); ok {
			styled, width = report.Terminal(f)
		}
		return report.WriteMarkdown(out, report.Markdown(results), styled, width)
	default:
		tables, err := report.Tables(results)
		if err != nil {
			return err
		}
		p := pretty.NewPrinter()
		p.Frame = frame
		return report.WriteTables(out, tables, p)
	}
}
