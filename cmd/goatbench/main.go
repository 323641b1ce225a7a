// Command goatbench measures how long scapegoat trees with different
// balance parameters take to absorb random keys and compares them
// against a red black tree
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/eaugeas/octopus/bench"
	"github.com/eaugeas/octopus/config"
	"github.com/eaugeas/octopus/logs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := &appConfig{}
	p, err := config.Generate(cfg)
	if err != nil {
		return err
	}

	p.Command().SetOut(stdout)
	if err := p.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return p.Usage()
		}

		return err
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:     cfg.log.Level,
		Output:    stderr,
		Formatter: &logrus.TextFormatter{DisableColors: true},
	})

	opts := cfg.bench.Opts
	opts.Logger = logger

	if cfg.print.Keys > 0 {
		alpha := 0.5
		if len(opts.Alphas) > 0 {
			alpha = opts.Alphas[0]
		}

		t, err := sample(cfg.print.Keys, alpha, opts.Seed)
		if err != nil {
			return err
		}

		fmt.Fprint(stdout, render(t))
		fmt.Fprintln(stdout, describe(t))
		return nil
	}

	logger.Info(ctx, "starting evaluation", logs.MapFields{
		"keys":        opts.Keys,
		"checkpoints": opts.Checkpoints,
		"runs":        opts.Runs,
		"alphas":      opts.Alphas,
		"baseline":    opts.Baseline,
		"concurrency": opts.Concurrency,
	})

	reports, err := bench.Evaluate(ctx, opts)
	if err != nil {
		return err
	}

	return bench.Write(stdout, reports)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "goatbench: %s\n", err.Error())
		stop()
		os.Exit(1)
	}
}
