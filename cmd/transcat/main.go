// SPDX-License-Identifier: MIT

// Command transcat loads a transport catalogue from JSON and answers
// statistics and routing requests about it.
//
// Usage:
//
//	transcat [-config config.yml] make_base        < base.json
//	transcat [-config config.yml] process_requests < stat.json > answers.json
//
// make_base stores a snapshot of the catalogue (protobuf file or SQLite, per
// configuration); process_requests loads it back, builds the router and
// prints one JSON answer per stat request.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/transcat/internal/config"
	"github.com/katalvlaran/transcat/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration (defaults apply when empty)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] make_base|process_requests\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Log, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{cfg: cfg, logger: logger, in: os.Stdin, out: os.Stdout}
	switch mode := flag.Arg(0); mode {
	case "make_base":
		err = a.makeBase(ctx)
	case "process_requests":
		err = a.processRequests(ctx)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("transcat failed", "mode", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}
