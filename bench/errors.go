package bench

import "fmt"

// ErrInvalidKeys is returned when an evaluation is asked to
// insert no keys
type ErrInvalidKeys struct {
	Keys int
}

// Error implementation of error for ErrInvalidKeys
func (e ErrInvalidKeys) Error() string {
	return fmt.Sprintf("number of keys must be positive, got %d", e.Keys)
}

// ErrInvalidCheckpoints is returned when the checkpoints are
// empty, not strictly increasing or beyond the number of keys
type ErrInvalidCheckpoints struct {
	Checkpoints []int
	Keys        int
}

// Error implementation of error for ErrInvalidCheckpoints
func (e ErrInvalidCheckpoints) Error() string {
	return fmt.Sprintf("checkpoints %v must be positive, strictly increasing and at most %d",
		e.Checkpoints, e.Keys)
}

// ErrInvalidRuns is returned when an evaluation is asked to
// execute no runs
type ErrInvalidRuns struct {
	Runs int
}

// Error implementation of error for ErrInvalidRuns
func (e ErrInvalidRuns) Error() string {
	return fmt.Sprintf("number of runs must be positive, got %d", e.Runs)
}

// ErrCorruptSet is returned when a set does not hold, in order,
// the keys that were inserted into it
type ErrCorruptSet struct {
	Kind Kind

	// Index is the in order position of the first key that differs
	Index int
}

// Error implementation of error for ErrCorruptSet
func (e ErrCorruptSet) Error() string {
	return fmt.Sprintf("%s set differs from the inserted keys at position %d", e.Kind, e.Index)
}
