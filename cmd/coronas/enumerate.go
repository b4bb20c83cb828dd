package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/enumerate"
	"github.com/katalvlaran/coronas/persist"
	"github.com/katalvlaran/coronas/render"
	"github.com/katalvlaran/coronas/store"
)

func runEnumerate(a *app, args []string) int {
	fs := flag.NewFlagSet("enumerate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	center := fs.Int("center", 1, "center square size")
	workers := fs.Int("workers", a.cfg.Enumerate.Workers, "validation goroutines")
	writeJSON := fs.Bool("json", false, "write the run as JSON into the output dir")
	writeDB := fs.Bool("db", false, "store the run in the sqlite catalogue")
	writePNG := fs.Bool("png", false, "render every corona into <output dir>/png")
	quiet := fs.Bool("q", false, "print only the summary line")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	ctx := context.Background()
	opts := enumerate.Options{AllowedSizes: a.cfg.Enumerate.AllowedSizes, Workers: *workers}
	res, err := enumerate.Enumerate(ctx, *center, opts)
	if err != nil {
		fmt.Fprintf(a.stderr, "enumerate: %v\n", err)
		return exitFailure
	}
	now := store.Now()

	fmt.Fprintf(a.stdout, "%s %d unique coronas with center = %d %s\n",
		headerStyle.Render("Enumerated"), len(res.Coronas), res.Center,
		dimStyle.Render(fmt.Sprintf("(%d candidates, %d valid)", res.Candidates, res.Valid)))
	if !*quiet {
		for i, c := range res.Coronas {
			fmt.Fprintf(a.stdout, "%4d. %s\n", i+1, compact.Format(c))
		}
	}

	if *writeJSON {
		path := filepath.Join(a.cfg.Output.Dir, persist.FileName(res.Center))
		if err := persist.Save(path, persist.FromResult(res, now)); err != nil {
			fmt.Fprintf(a.stderr, "enumerate: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(a.stdout, "%s %s\n", okStyle.Render("saved"), path)
	}

	if *writeDB {
		id, err := a.saveRun(ctx, res, now)
		if err != nil {
			fmt.Fprintf(a.stderr, "enumerate: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(a.stdout, "%s run %s\n", okStyle.Render("stored"), id)
	}

	if *writePNG {
		ropts := a.renderOptions()
		dir := filepath.Join(a.cfg.Output.Dir, "png")
		for i, c := range res.Coronas {
			path := filepath.Join(dir, fmt.Sprintf("center-%d-%02d.png", res.Center, i+1))
			if err := render.SavePNG(path, c, ropts); err != nil {
				fmt.Fprintf(a.stderr, "enumerate: %v\n", err)
				return exitFailure
			}
		}
		fmt.Fprintf(a.stdout, "%s %d images in %s\n", okStyle.Render("rendered"), len(res.Coronas), dir)
	}

	return exitOK
}

func (a *app) saveRun(ctx context.Context, res *enumerate.Result, at time.Time) (string, error) {
	repo, closeDB, err := a.openRuns()
	if err != nil {
		return "", err
	}
	defer closeDB()

	run, err := repo.Insert(ctx, res, at)
	if err != nil {
		return "", err
	}

	return run.ID, nil
}

func (a *app) renderOptions() render.Options {
	opts := render.DefaultOptions()
	if a.cfg.Render.Unit > 0 {
		opts.Unit = a.cfg.Render.Unit
	}
	if a.cfg.Render.Margin >= 0 {
		opts.Margin = a.cfg.Render.Margin
	}

	return opts
}
