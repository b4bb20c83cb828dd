package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/coronas/persist"
	"github.com/katalvlaran/coronas/store"
)

// openRuns opens and migrates the configured catalogue.
func (a *app) openRuns() (*store.RunRepo, func(), error) {
	path := a.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return store.NewRunRepo(db), func() { _ = db.Close() }, nil
}

func runRuns(a *app, args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "show", "export", "delete":
			return runRunsAction(a, args[0], args[1:])
		}
	}

	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	limit := fs.Int("limit", 20, "maximum runs to list (0 = all)")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	repo, closeDB, err := a.openRuns()
	if err != nil {
		fmt.Fprintf(a.stderr, "runs: %v\n", err)
		return exitFailure
	}
	defer closeDB()

	runs, err := repo.List(context.Background(), *limit)
	if err != nil {
		fmt.Fprintf(a.stderr, "runs: %v\n", err)
		return exitFailure
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.stdout, dimStyle.Render("no runs stored"))
		return exitOK
	}
	fmt.Fprintln(a.stdout, headerStyle.Render("ID                                    CENTER  COUNT  GENERATED"))
	for _, r := range runs {
		fmt.Fprintf(a.stdout, "%-36s  %6d  %5d  %s\n", r.ID, r.Center, r.Count, r.GeneratedAt.Format("2006-01-02 15:04:05Z"))
	}

	return exitOK
}

func runRunsAction(a *app, action string, args []string) int {
	fs := flag.NewFlagSet("runs "+action, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	out := fs.String("o", "", "export: output file (default stdout)")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(a.stderr, "usage: coronas runs %s <id>\n", action)
		return exitUsage
	}
	id := fs.Arg(0)

	repo, closeDB, err := a.openRuns()
	if err != nil {
		fmt.Fprintf(a.stderr, "runs: %v\n", err)
		return exitFailure
	}
	defer closeDB()
	ctx := context.Background()

	if action == "delete" {
		if err := repo.Delete(ctx, id); err != nil {
			fmt.Fprintf(a.stderr, "runs: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(a.stdout, "%s run %s\n", okStyle.Render("deleted"), id)
		return exitOK
	}

	run, err := repo.Get(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		fmt.Fprintf(a.stderr, "runs: no run %q\n", id)
		return exitFailure
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "runs: %v\n", err)
		return exitFailure
	}

	if action == "export" {
		doc := run.Document()
		if *out == "" {
			if err := persist.Write(a.stdout, doc); err != nil {
				fmt.Fprintf(a.stderr, "runs: %v\n", err)
				return exitFailure
			}
			return exitOK
		}
		if err := persist.Save(*out, doc); err != nil {
			fmt.Fprintf(a.stderr, "runs: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(a.stdout, "%s %s\n", okStyle.Render("exported"), *out)
		return exitOK
	}

	fmt.Fprintf(a.stdout, "%s %s\n", headerStyle.Render("Run"), run.ID)
	fmt.Fprintf(a.stdout, "center=%d count=%d candidates=%d valid=%d generated=%s\n",
		run.Center, run.Count, run.Candidates, run.Valid, run.GeneratedAt.Format("2006-01-02 15:04:05Z"))
	for _, c := range run.Coronas {
		fmt.Fprintf(a.stdout, "%4d. %s %s\n", c.Position+1, c.Compact, dimStyle.Render(string(c.Key)))
	}

	return exitOK
}
