package scapegoat

import "fmt"

// ErrInvalidAlpha is returned when a tree is created with a
// balance parameter outside of [MinAlpha, MaxAlpha)
type ErrInvalidAlpha struct {
	Alpha float64
}

// Error implementation of error for ErrInvalidAlpha
func (e ErrInvalidAlpha) Error() string {
	return fmt.Sprintf("alpha %v is outside of the range [%v, %v)", e.Alpha, MinAlpha, MaxAlpha)
}

// ErrInvalidOrder is returned by Valid when an in order walk
// of the tree finds a key smaller than the one before it
type ErrInvalidOrder struct {
	// Index is the in order position of Next
	Index int
	Prev  interface{}
	Next  interface{}
}

// Error implementation of error for ErrInvalidOrder
func (e ErrInvalidOrder) Error() string {
	return fmt.Sprintf("invalid binary search tree: key %v at position %d follows key %v",
		e.Next, e.Index, e.Prev)
}
