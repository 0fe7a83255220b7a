// Package main is the bulk loader for the journal catalog stores.
//
// Usage:
//
//	loader [-profile local] [-concurrency 2] file.json file.csv ...
//
// JSON assignment files go to the relational store and CSV journal files to
// the graph store, both addressed by the stores section of the config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen/journal-catalog/cmd/internal/bootstrap"
	"github.com/jsamuelsen/journal-catalog/internal/app"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("loader", flag.ContinueOnError)
	profile := fs.String("profile", "", "configuration profile (default $APP_ENVIRONMENT or local)")
	concurrency := fs.Int("concurrency", 0, "files loaded at once (default 2)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errors.New("usage: loader [-profile p] file...")
	}

	cfg, err := bootstrap.LoadConfig(bootstrap.Profile(*profile))
	if err != nil {
		return err
	}

	logger := logging.New(bootstrap.LoggingConfig(cfg))
	logging.SetDefault(logger)

	stores, err := bootstrap.NewStores(cfg, logger)
	if err != nil {
		return err
	}

	importerCfg := app.ImporterConfig{
		Logger:      logger,
		Concurrency: *concurrency,
	}

	// Only set configured stores; a typed nil would pass the nil check.
	if stores.Relational != nil {
		importerCfg.Relational = stores.Relational
	}

	if stores.Graph != nil {
		importerCfg.Graph = stores.Graph
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reports, err := app.NewImporter(importerCfg).ImportAll(ctx, fs.Args()...)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("import complete", slog.Int("files", len(reports)))

	return printSummary(out, reports)
}

func printSummary(out io.Writer, reports []app.ImportReport) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "FILE\tSTORE\tRECORDS\tWRITTEN\tSKIPPED\tDURATION")

	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			r.Path, r.Target, r.Result.Records, r.Result.Statements, r.Result.Skipped, r.Duration.Round(time.Millisecond))
	}

	return tw.Flush()
}
