package main

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/coronas/compact"
	"github.com/katalvlaran/coronas/corona"
)

func runValidate(a *app, args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	showKey := fs.Bool("key", false, "also print the canonical key of valid coronas")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(a.stderr, "usage: coronas validate [-key] <compact>...")
		return exitUsage
	}

	vopts := corona.Options{AllowedSizes: a.cfg.Enumerate.AllowedSizes}
	code := exitOK
	for _, text := range fs.Args() {
		c, err := compact.Parse(text)
		if err != nil {
			fmt.Fprintf(a.stdout, "%s %s: %v\n", failStyle.Render("ERROR"), text, err)
			code = exitFailure
			continue
		}
		res := c.Validate(vopts)
		if !res.OK {
			fmt.Fprintf(a.stdout, "%s %s: %s\n", failStyle.Render("FAIL "), compact.Format(c), res)
			code = exitFailure
			continue
		}
		fmt.Fprintf(a.stdout, "%s %s", okStyle.Render("OK   "), compact.Format(c))
		if *showKey {
			fmt.Fprintf(a.stdout, " %s", dimStyle.Render(string(c.CanonicalKey())))
		}
		fmt.Fprintln(a.stdout)
	}

	return code
}
