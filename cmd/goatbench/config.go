package main

import (
	"strconv"

	"github.com/eaugeas/octopus/bench"
	"github.com/eaugeas/octopus/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// benchBinder binds the parameters of the evaluation
type benchBinder struct {
	Opts bench.Opts
}

func (b *benchBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	defaults := bench.DefaultOpts()

	alphas := make([]string, 0, len(defaults.Alphas))
	for _, a := range defaults.Alphas {
		alphas = append(alphas, strconv.FormatFloat(a, 'f', -1, 64))
	}

	flags := cmd.PersistentFlags()
	flags.Int("keys", defaults.Keys, "number of random keys inserted by every run")
	flags.StringSlice("checkpoints", nil,
		"numbers of inserted keys at which the elapsed time is recorded (default a quarter, half and all of the keys)")
	flags.Int("runs", defaults.Runs, "number of runs for every kind of tree")
	flags.StringSlice("alphas", alphas, "balance parameters of the scapegoat trees")
	flags.Int64("seed", defaults.Seed, "seed of the first run")
	flags.Int("concurrency", defaults.Concurrency, "number of runs executed in parallel")
	flags.Bool("baseline", defaults.Baseline, "include red black tree runs")
	flags.Bool("unbalanced", defaults.Unbalanced, "include plain binary search tree runs")
	return nil
}

func (b *benchBinder) Configure(v *viper.Viper) error {
	b.Opts.Keys = v.GetInt("keys")
	b.Opts.Runs = v.GetInt("runs")
	b.Opts.Seed = v.GetInt64("seed")
	b.Opts.Concurrency = v.GetInt("concurrency")
	b.Opts.Baseline = v.GetBool("baseline")
	b.Opts.Unbalanced = v.GetBool("unbalanced")

	b.Opts.Checkpoints = nil
	for _, value := range config.GetList(v, "checkpoints") {
		c, err := strconv.Atoi(value)
		if err != nil {
			return config.ErrInvalidValue{Key: "checkpoints", Value: value, Cause: err}
		}
		b.Opts.Checkpoints = append(b.Opts.Checkpoints, c)
	}

	if len(b.Opts.Checkpoints) == 0 {
		b.Opts.Checkpoints = bench.Checkpoints(b.Opts.Keys)
	}

	b.Opts.Alphas = nil
	for _, value := range config.GetList(v, "alphas") {
		a, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return config.ErrInvalidValue{Key: "alphas", Value: value, Cause: err}
		}
		b.Opts.Alphas = append(b.Opts.Alphas, a)
	}

	return nil
}

type logBinder struct {
	Level logrus.Level
}

func (b *logBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("log-level", "info", "minimum level of the log entries written to stderr")
	return nil
}

func (b *logBinder) Configure(v *viper.Viper) error {
	value := v.GetString("log-level")
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return config.ErrInvalidValue{Key: "log-level", Value: value, Cause: err}
	}

	b.Level = level
	return nil
}

// printBinder binds --print. When positive the program renders a
// scapegoat tree holding that many keys instead of evaluating
type printBinder struct {
	Keys int
}

func (b *printBinder) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Int("print", 0, "render a scapegoat tree with this many random keys and exit")
	return nil
}

func (b *printBinder) Configure(v *viper.Viper) error {
	b.Keys = v.GetInt("print")
	if b.Keys < 0 {
		return config.ErrInvalidValue{Key: "print", Value: b.Keys}
	}

	return nil
}

type appConfig struct {
	bench benchBinder
	log   logBinder
	print printBinder
}

func (c *appConfig) Use() string {
	return "goatbench"
}

func (c *appConfig) EnvPrefix() string {
	return "GOATBENCH"
}

func (c *appConfig) Binders() []config.Binder {
	return []config.Binder{&c.bench, &c.log, &c.print}
}
