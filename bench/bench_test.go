package bench

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/eaugeas/octopus/container"
	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/eaugeas/octopus/container/tree"
	"github.com/eaugeas/octopus/logs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOpts() Opts {
	return Opts{
		Keys:        2000,
		Checkpoints: []int{500, 1000, 2000},
		Runs:        2,
		Alphas:      []float64{0.5, 0.75},
		Baseline:    true,
		Seed:        42,
		Concurrency: 2,
	}
}

func TestDefaultOpts(t *testing.T) {
	opts := DefaultOpts()

	assert.Equal(t, 1000000, opts.Keys)
	assert.Equal(t, []int{250000, 500000, 1000000}, opts.Checkpoints)
	assert.Equal(t, 30, opts.Runs)
	assert.Equal(t, []float64{0.5, 0.6, 0.7, 0.8, 0.9}, opts.Alphas)
	assert.True(t, opts.Baseline)
	assert.Nil(t, opts.validate())

	// callers own the returned slices
	opts.Checkpoints[0] = 1
	assert.Equal(t, 250000, DefaultOpts().Checkpoints[0])
}

func TestGenerateKeysRange(t *testing.T) {
	keys := GenerateKeys(rand.New(rand.NewSource(1)), 100)

	assert.Len(t, keys, 100)
	for _, k := range keys {
		assert.GreaterOrEqual(t, k, 0)
		assert.LessOrEqual(t, k, 100)
	}
}

func TestGenerateKeysDeterministic(t *testing.T) {
	a := GenerateKeys(rand.New(rand.NewSource(7)), 50)
	b := GenerateKeys(rand.New(rand.NewSource(7)), 50)
	assert.Equal(t, a, b)
}

func TestMeasure(t *testing.T) {
	keys := GenerateKeys(rand.New(rand.NewSource(3)), 1000)
	set := scapegoat.MustNew[int](0.6)

	elapsed, err := Measure(context.Background(), set, keys, []int{10, 100, 1000})
	require.Nil(t, err)

	require.Len(t, elapsed, 3)
	assert.Equal(t, 1000, set.Len())
	assert.Nil(t, set.Valid())
	assert.LessOrEqual(t, elapsed[0], elapsed[1])
	assert.LessOrEqual(t, elapsed[1], elapsed[2])
}

func TestMeasurePartialKeys(t *testing.T) {
	keys := []int{5, 3, 8, 1, 9}
	set := tree.NewRedBlackTree[int]()

	elapsed, err := Measure(context.Background(), set, keys, []int{2, 3})
	require.Nil(t, err)

	assert.Len(t, elapsed, 2)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(8))
	assert.False(t, set.Contains(1))
}

// cancelingSet cancels a context once it holds a given number of keys
type cancelingSet struct {
	container.Set[int]
	after  int
	cancel context.CancelFunc
}

func (s *cancelingSet) Insert(k int) {
	s.Set.Insert(k)
	if s.Set.Len() == s.after {
		s.cancel()
	}
}

func TestMeasureCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := scapegoat.MustNew[int](0.7)
	elapsed, err := Measure(ctx, set, []int{1, 2, 3}, []int{3})
	assert.Nil(t, elapsed)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 0, set.Len())
}

func TestMeasureCanceledWithinBatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := GenerateKeys(rand.New(rand.NewSource(5)), 3*cancelCheckInterval)
	set := &cancelingSet{Set: tree.NewRedBlackTree[int](), after: 10, cancel: cancel}

	elapsed, err := Measure(ctx, set, keys, []int{len(keys)})
	assert.Nil(t, elapsed)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, cancelCheckInterval, set.Len())
}

func TestCheckpoints(t *testing.T) {
	assert.Equal(t, []int{250000, 500000, 1000000}, Checkpoints(1000000))
	assert.Equal(t, []int{250, 500, 1000}, Checkpoints(1000))
	assert.Equal(t, []int{1, 2, 5}, Checkpoints(5))
	assert.Equal(t, []int{1, 3}, Checkpoints(3))
	assert.Equal(t, []int{1, 2}, Checkpoints(2))
	assert.Equal(t, []int{1}, Checkpoints(1))
	assert.Nil(t, Checkpoints(0))
}

func TestEvaluateDerivedCheckpoints(t *testing.T) {
	opts := smallOpts()
	opts.Keys = 1000
	opts.Checkpoints = Checkpoints(opts.Keys)
	opts.Runs = 1

	reports, err := Evaluate(context.Background(), opts)
	require.Nil(t, err)
	for _, r := range reports {
		assert.Len(t, r.Elapsed, 3)
	}
}

func TestEvaluate(t *testing.T) {
	opts := smallOpts()

	reports, err := Evaluate(context.Background(), opts)
	require.Nil(t, err)
	require.Len(t, reports, 6)

	expected := []struct {
		kind  Kind
		alpha float64
		run   int
	}{
		{KindRedBlack, 0, 0},
		{KindRedBlack, 0, 1},
		{KindScapegoat, 0.5, 0},
		{KindScapegoat, 0.5, 1},
		{KindScapegoat, 0.75, 0},
		{KindScapegoat, 0.75, 1},
	}

	for i, e := range expected {
		r := reports[i]
		assert.Equal(t, e.kind, r.Kind, "report %d", i)
		assert.Equal(t, e.alpha, r.Alpha, "report %d", i)
		assert.Equal(t, e.run, r.Run, "report %d", i)
		assert.Equal(t, opts.Seed+int64(i), r.Seed, "report %d", i)
		assert.Len(t, r.Elapsed, len(opts.Checkpoints), "report %d", i)

		// insertions alone never trigger a global rebuild
		assert.Equal(t, 0, r.Stats.GlobalRebuilds, "report %d", i)
		switch {
		case r.Kind == KindRedBlack:
			assert.Equal(t, scapegoat.Stats{}, r.Stats, "report %d", i)
		case r.Alpha == 0.5:
			assert.Greater(t, r.Stats.PartialRebuilds, 0, "report %d", i)
		}
	}
}

func TestEvaluateWithoutBaseline(t *testing.T) {
	opts := smallOpts()
	opts.Baseline = false
	opts.Alphas = []float64{0.9}
	opts.Runs = 3

	reports, err := Evaluate(context.Background(), opts)
	require.Nil(t, err)
	require.Len(t, reports, 3)

	for _, r := range reports {
		assert.Equal(t, KindScapegoat, r.Kind)
		assert.Equal(t, 0.9, r.Alpha)
	}
}

func TestEvaluateUnbalanced(t *testing.T) {
	opts := smallOpts()
	opts.Unbalanced = true
	opts.Alphas = []float64{0.6}
	opts.Runs = 1

	reports, err := Evaluate(context.Background(), opts)
	require.Nil(t, err)
	require.Len(t, reports, 3)

	assert.Equal(t, KindRedBlack, reports[0].Kind)
	assert.Equal(t, KindUnbalanced, reports[1].Kind)
	assert.Equal(t, KindScapegoat, reports[2].Kind)
	assert.Equal(t, scapegoat.Stats{}, reports[1].Stats)
	assert.Len(t, reports[1].Elapsed, 3)
}

func TestEvaluateInvalidAlpha(t *testing.T) {
	opts := smallOpts()
	opts.Alphas = []float64{0.6, 0.3}

	reports, err := Evaluate(context.Background(), opts)
	assert.Nil(t, reports)

	var target scapegoat.ErrInvalidAlpha
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 0.3, target.Alpha)
}

func TestEvaluateInvalidCheckpoints(t *testing.T) {
	tests := [][]int{
		nil,
		{0},
		{500, 500},
		{1000, 500},
		{500, 2001},
	}

	for _, checkpoints := range tests {
		opts := smallOpts()
		opts.Checkpoints = checkpoints

		_, err := Evaluate(context.Background(), opts)
		assert.IsType(t, ErrInvalidCheckpoints{}, err, "checkpoints %v", checkpoints)
	}
}

func TestEvaluateInvalidRuns(t *testing.T) {
	for _, runs := range []int{0, -3} {
		opts := smallOpts()
		opts.Runs = runs

		reports, err := Evaluate(context.Background(), opts)
		assert.Nil(t, reports)
		assert.Equal(t, ErrInvalidRuns{Runs: runs}, err)
	}
}

func TestEvaluateInvalidKeys(t *testing.T) {
	opts := smallOpts()
	opts.Keys = 0

	_, err := Evaluate(context.Background(), opts)
	assert.Equal(t, ErrInvalidKeys{Keys: 0}, err)
}

func TestEvaluateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := Evaluate(ctx, smallOpts())
	assert.Nil(t, reports)
	assert.Equal(t, context.Canceled, err)
}

func TestEvaluateLogsRuns(t *testing.T) {
	var buf bytes.Buffer
	opts := smallOpts()
	opts.Baseline = false
	opts.Alphas = []float64{0.5}
	opts.Runs = 1
	opts.Logger = logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:     logrus.InfoLevel,
		Output:    &buf,
		Formatter: &logrus.JSONFormatter{},
	})

	_, err := Evaluate(context.Background(), opts)
	require.Nil(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"run completed"`)
	assert.Contains(t, out, `"kind":"scapegoat"`)
	assert.Contains(t, out, `"alpha":0.5`)
	assert.NotContains(t, out, "checkpoint reached")
}

func TestWrite(t *testing.T) {
	reports := []Report{
		{Kind: KindScapegoat, Alpha: 0.5, Elapsed: []time.Duration{time.Millisecond, 2500 * time.Microsecond}},
		{Kind: KindRedBlack, Elapsed: []time.Duration{3 * time.Millisecond, 4 * time.Millisecond}},
		{Kind: KindScapegoat, Alpha: 0.75, Elapsed: []time.Duration{5 * time.Millisecond, 6 * time.Millisecond}},
		{Kind: KindScapegoat, Alpha: 0.5, Elapsed: []time.Duration{7 * time.Millisecond, 8 * time.Millisecond}},
	}

	var buf bytes.Buffer
	require.Nil(t, Write(&buf, reports))

	expected := strings.Join([]string{
		"Red-black tree:",
		"3.000\t4.000",
		"",
		"Scapegoat tree, alpha=0.5:",
		"1.000\t2.500",
		"7.000\t8.000",
		"",
		"Scapegoat tree, alpha=0.75:",
		"5.000\t6.000",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWriteBaselinesFirst(t *testing.T) {
	reports := []Report{
		{Kind: KindScapegoat, Alpha: 0.9, Elapsed: []time.Duration{time.Millisecond}},
		{Kind: KindUnbalanced, Elapsed: []time.Duration{2 * time.Millisecond}},
		{Kind: KindRedBlack, Elapsed: []time.Duration{3 * time.Millisecond}},
	}

	var buf bytes.Buffer
	require.Nil(t, Write(&buf, reports))

	expected := "Red-black tree:\n3.000\n\nUnbalanced tree:\n2.000\n\nScapegoat tree, alpha=0.9:\n1.000\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Report{{Kind: "splay"}})
	assert.NotNil(t, err)
}

func BenchmarkMeasureScapegoat(b *testing.B) {
	keys := GenerateKeys(rand.New(rand.NewSource(1)), 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Measure(context.Background(), scapegoat.MustNew[int](0.7), keys, []int{len(keys)})
	}
}

func BenchmarkMeasureRedBlack(b *testing.B) {
	keys := GenerateKeys(rand.New(rand.NewSource(1)), 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Measure(context.Background(), tree.NewRedBlackTree[int](), keys, []int{len(keys)})
	}
}
