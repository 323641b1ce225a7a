// Package bench measures how long ordered sets take to absorb large
// batches of random keys. Each run inserts the same number of keys
// into a fresh set and records the elapsed time at every checkpoint.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/eaugeas/octopus/concurrent"
	"github.com/eaugeas/octopus/container"
	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/eaugeas/octopus/container/tree"
	"github.com/eaugeas/octopus/logs"
)

var (
	_ container.Set[int] = (*scapegoat.Tree[int])(nil)
	_ container.Set[int] = (*tree.Tree[int])(nil)
)

// Kind identifies the set implementation measured by a run
type Kind string

const (
	KindRedBlack   Kind = "redblack"
	KindUnbalanced Kind = "unbalanced"
	KindScapegoat  Kind = "scapegoat"
)

const (
	defaultKeys = 1000000
	defaultRuns = 30
)

// cancelCheckInterval is the number of insertions between two
// checks of the context while a run is measured
const cancelCheckInterval = 1 << 16

var defaultAlphas = []float64{0.5, 0.6, 0.7, 0.8, 0.9}

// Opts configures an evaluation
type Opts struct {
	// Keys is the number of keys inserted by a run. Keys are drawn
	// uniformly from [0, Keys]
	Keys int

	// Checkpoints are the increasing numbers of inserted keys at
	// which the elapsed time is recorded. The last one cannot be
	// greater than Keys
	Checkpoints []int

	// Runs is the number of runs for every kind of set
	Runs int

	// Alphas are the balance parameters of the scapegoat trees
	// to evaluate
	Alphas []float64

	// Baseline adds red black tree runs to the evaluation
	Baseline bool

	// Unbalanced adds runs of a plain binary search tree
	Unbalanced bool

	// Seed of the first run. Run i uses Seed+i so that an
	// evaluation can be repeated
	Seed int64

	// Concurrency is the number of runs executed in parallel. Values
	// greater than 1 make runs compete for the CPU and distort timings
	Concurrency int

	Logger logs.Logger
}

// DefaultOpts returns options that insert 1M keys with checkpoints
// at 250k, 500k and 1M, 30 runs per kind of set, scapegoat trees
// with alpha from 0.5 to 0.9 and a red black tree baseline
func DefaultOpts() Opts {
	return Opts{
		Keys:        defaultKeys,
		Checkpoints: Checkpoints(defaultKeys),
		Runs:        defaultRuns,
		Alphas:      append([]float64(nil), defaultAlphas...),
		Baseline:    true,
		Concurrency: 1,
	}
}

// Checkpoints returns the checkpoints used when none are given:
// a quarter, half and all of the keys. Checkpoints that would repeat
// the previous one are left out
func Checkpoints(keys int) []int {
	var checkpoints []int
	prev := 0
	for _, c := range []int{keys / 4, keys / 2, keys} {
		if c > prev {
			checkpoints = append(checkpoints, c)
			prev = c
		}
	}

	return checkpoints
}

// Report is the outcome of a single run
type Report struct {
	Kind  Kind
	Alpha float64
	Run   int
	Seed  int64

	// Elapsed holds the time since the run started at every
	// checkpoint
	Elapsed []time.Duration

	// Stats of the scapegoat tree. Zero for other kinds of set
	Stats scapegoat.Stats
}

// Log implementation of logs.Loggable for Report
func (r Report) Log(fields logs.Fields) {
	fields.Add("kind", string(r.Kind))
	fields.Add("run", r.Run)
	fields.Add("seed", r.Seed)
	if r.Kind == KindScapegoat {
		fields.Add("alpha", r.Alpha)
		fields.Add("partial_rebuilds", r.Stats.PartialRebuilds)
		fields.Add("rebuilt_nodes", r.Stats.RebuiltNodes)
	}
	if len(r.Elapsed) > 0 {
		fields.Add("elapsed_ms", millis(r.Elapsed[len(r.Elapsed)-1]))
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (o Opts) validate() error {
	if o.Keys <= 0 {
		return ErrInvalidKeys{Keys: o.Keys}
	}

	if o.Runs <= 0 {
		return ErrInvalidRuns{Runs: o.Runs}
	}

	if len(o.Checkpoints) == 0 {
		return ErrInvalidCheckpoints{Checkpoints: o.Checkpoints, Keys: o.Keys}
	}

	prev := 0
	for _, c := range o.Checkpoints {
		if c <= prev || c > o.Keys {
			return ErrInvalidCheckpoints{Checkpoints: o.Checkpoints, Keys: o.Keys}
		}
		prev = c
	}

	for _, alpha := range o.Alphas {
		if _, err := scapegoat.New[int](alpha); err != nil {
			return err
		}
	}

	return nil
}

// GenerateKeys returns n keys drawn uniformly from [0, n]
func GenerateKeys(r *rand.Rand, n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(n + 1)
	}

	return keys
}

// Measure inserts keys into set in batches that end at every
// checkpoint and returns the time elapsed since the first insertion
// when each checkpoint is reached. It stops with ctx.Err() once ctx
// is done, checking it every cancelCheckInterval insertions and at
// every checkpoint
func Measure(
	ctx context.Context,
	set container.Set[int],
	keys []int,
	checkpoints []int,
) ([]time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elapsed := make([]time.Duration, 0, len(checkpoints))
	next := 0
	start := time.Now()

	for _, c := range checkpoints {
		for next < c {
			end := min(c, next+cancelCheckInterval)
			for ; next < end; next++ {
				set.Insert(keys[next])
			}

			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		elapsed = append(elapsed, time.Since(start))
	}

	return elapsed, nil
}

type job struct {
	kind  Kind
	alpha float64
	run   int
	seed  int64
}

func (o Opts) jobs() []job {
	var jobs []job
	seed := o.Seed

	if o.Baseline {
		for run := 0; run < o.Runs; run++ {
			jobs = append(jobs, job{kind: KindRedBlack, run: run, seed: seed})
			seed++
		}
	}

	if o.Unbalanced {
		for run := 0; run < o.Runs; run++ {
			jobs = append(jobs, job{kind: KindUnbalanced, run: run, seed: seed})
			seed++
		}
	}

	for _, alpha := range o.Alphas {
		for run := 0; run < o.Runs; run++ {
			jobs = append(jobs, job{kind: KindScapegoat, alpha: alpha, run: run, seed: seed})
			seed++
		}
	}

	return jobs
}

func (o Opts) execute(ctx context.Context, j job) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	ctx = logs.WithTraceID(ctx, j.seed)
	keys := GenerateKeys(rand.New(rand.NewSource(j.seed)), o.Keys)
	report := Report{Kind: j.kind, Alpha: j.alpha, Run: j.run, Seed: j.seed}

	var set container.Set[int]
	switch j.kind {
	case KindRedBlack:
		set = tree.NewRedBlackTree[int]()
	case KindUnbalanced:
		set = tree.NewUnbalancedTree[int]()
	case KindScapegoat:
		t, err := scapegoat.New[int](j.alpha)
		if err != nil {
			return Report{}, err
		}
		set = t
	default:
		return Report{}, fmt.Errorf("unknown set kind %q", j.kind)
	}

	elapsed, err := Measure(ctx, set, keys, o.Checkpoints)
	if err != nil {
		return Report{}, err
	}
	report.Elapsed = elapsed

	if t, ok := set.(*scapegoat.Tree[int]); ok {
		report.Stats = t.Stats()
	}

	if err := Verify(j.kind, set, keys[:o.Checkpoints[len(o.Checkpoints)-1]]); err != nil {
		return Report{}, err
	}

	for i, c := range o.Checkpoints {
		o.Logger.Debug(ctx, "checkpoint reached", logs.MapFields{
			"kind":       string(j.kind),
			"run":        j.run,
			"keys":       c,
			"elapsed_ms": millis(report.Elapsed[i]),
		})
	}

	o.Logger.Info(ctx, "run completed", report)
	return report, nil
}

// Evaluate runs every configured evaluation and returns one report
// per run: red black runs first, then unbalanced runs and then
// scapegoat runs ordered by alpha as given in opts
func Evaluate(ctx context.Context, opts Opts) ([]Report, error) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	if opts.Logger == nil {
		opts.Logger = logs.NewNop()
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	jobs := opts.jobs()
	suppliers := make([]concurrent.Supplier[Report], 0, len(jobs))
	for _, j := range jobs {
		suppliers = append(suppliers, concurrent.SupplierFunc[Report](func() (Report, error) {
			return opts.execute(ctx, j)
		}))
	}

	results := concurrent.BatchSliceWithOpts(ctx, suppliers, concurrent.BatchOpts{
		Concurrency: opts.Concurrency,
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(results))
	for _, res := range results {
		if err := res.Err(); err != nil {
			return nil, err
		}
		reports = append(reports, res.Value())
	}

	return reports, nil
}
