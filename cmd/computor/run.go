// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/computor/equation"
	"github.com/katalvlaran/computor/plot"
	"github.com/katalvlaran/computor/report"
	"github.com/katalvlaran/computor/solver"
)

const (
	exitOK    = 0
	exitError = 1
)

// config holds every command-line setting.
type config struct {
	Verbose bool
	Format  string
	Plot    bool
	Width   int
	Height  int
	Domain  float64
}

func defaultConfig() config {
	return config{
		Format: report.DefaultFormat.String(),
		Width:  plot.DefaultWidth,
		Height: plot.DefaultHeight,
		Domain: plot.DefaultDomain,
	}
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "computor: ", 0)
	cfg := defaultConfig()

	fs := flag.NewFlagSet("computor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print intermediate steps")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	fs.BoolVar(&cfg.Plot, "plot", cfg.Plot, "draw the curve and its real roots after the report")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "plot width in characters")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "plot height in characters")
	fs.Float64Var(&cfg.Domain, "domain", cfg.Domain, "plot x range is [-domain, domain]")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: computor [flags] \"equation\"\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitError
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		_ = report.WriteError(stderr, err)
		return exitError
	}

	raw := fs.Arg(0)
	if format == report.Text {
		if err = report.WriteEquation(stdout, raw); err != nil {
			logger.Printf("write report: %v", err)
			return exitError
		}
	}

	coeffs, err := equation.Parse(raw)
	if err != nil {
		_ = report.WriteError(stderr, err)
		return exitError
	}
	sol := solver.Solve(coeffs)

	if format == report.Text {
		err = report.WriteBody(stdout, sol, cfg.Verbose)
	} else {
		err = report.WriteJSON(stdout, raw, sol)
	}
	if err != nil {
		logger.Printf("write report: %v", err)
		return exitError
	}

	if cfg.Plot && sol.Kind != solver.Unsolvable {
		err = plot.Write(stdout, sol,
			plot.WithSize(cfg.Width, cfg.Height),
			plot.WithDomain(cfg.Domain))
		if err != nil {
			logger.Printf("plot: %v", err)
			return exitError
		}
	}

	return exitOK
}
