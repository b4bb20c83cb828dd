// Command coronas enumerates, validates, renders and catalogues square-tiling
// coronas.
//
//	coronas enumerate [-center 1] [-workers N] [-json] [-db] [-png]
//	coronas validate  <compact>...
//	coronas render    [-o out.png] [-unit 40] <compact>
//	coronas runs      [-limit N]
//	coronas runs show|export|delete <id>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/agnivade/levenshtein"

	"github.com/katalvlaran/coronas"
	"github.com/katalvlaran/coronas/internal/config"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// command is one subcommand of the CLI.
type command struct {
	name    string
	summary string
	run     func(app *app, args []string) int
}

// app carries what every subcommand needs.
type app struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"enumerate", "list every unique valid corona of a center size", runEnumerate},
	{"validate", "check coronas given in compact notation", runValidate},
	{"render", "draw a corona as a PNG", runRender},
	{"runs", "list, show, export or delete stored runs", runRuns},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitFailure
	}
	coronas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	a := &app{cfg: cfg, stdout: stdout, stderr: stderr}
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	for _, c := range commands {
		if c.name == args[0] {
			return c.run(a, args[1:])
		}
	}

	fmt.Fprintf(stderr, "coronas: unknown command %q\n", args[0])
	if s, ok := suggest(args[0]); ok {
		fmt.Fprintf(stderr, "did you mean %q?\n", s)
	}
	return exitUsage
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage: coronas <command> [flags] [args]")
	fmt.Fprintln(a.stderr)
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-10s %s\n", c.name, c.summary)
	}
}

// suggest returns the closest command name within edit distance 2.
func suggest(name string) (string, bool) {
	best, bestDist := "", 3
	for _, c := range commands {
		if d := levenshtein.ComputeDistance(name, c.name); d < bestDist {
			best, bestDist = c.name, d
		}
	}

	return best, best != ""
}

// parseFlags parses args into fs. ok is false when the command must stop,
// with code exitOK for -h and exitUsage for bad flags.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	err := fs.Parse(args)
	switch {
	case err == nil:
		return exitOK, true
	case errors.Is(err, flag.ErrHelp):
		return exitOK, false
	default:
		return exitUsage, false
	}
}
