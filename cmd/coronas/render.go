package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/corona"
	"github.com/katalvlaran/coronas/render"
)

func runRender(a *app, args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	out := fs.String("o", "", "output file (default <output dir>/corona.png)")
	unit := fs.Float64("unit", 0, "pixels per unit (default from config)")
	strict := fs.Bool("strict", false, "refuse coronas that fail validation")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(a.stderr, "usage: coronas render [-o out.png] [-unit N] [-strict] <compact>")
		return exitUsage
	}

	c, err := compact.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(a.stderr, "render: %v\n", err)
		return exitFailure
	}

	opts := a.renderOptions()
	if *unit > 0 {
		opts.Unit = *unit
	}
	opts.RequireValid = *strict
	opts.Validation = corona.Options{AllowedSizes: a.cfg.Enumerate.AllowedSizes}

	path := *out
	if path == "" {
		path = filepath.Join(a.cfg.Output.Dir, "corona.png")
	}
	if err := render.SavePNG(path, c, opts); err != nil {
		fmt.Fprintf(a.stderr, "render: %v\n", err)
		return exitFailure
	}
	fmt.Fprintf(a.stdout, "%s %s\n", okStyle.Render("rendered"), path)

	return exitOK
}
