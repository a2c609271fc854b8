package ckmeans

import (
	"errors"
	"fmt"
)

// ErrCkmeans is the root of every error returned by this package;
// errors.Is(err, ErrCkmeans) holds for all of them.
var ErrCkmeans = errors.New("ckmeans")

var (
	// ErrInvalidData is returned for empty input or input holding NaN or ±Inf.
	ErrInvalidData error = kind("invalid data")
	// ErrInvalidClusterCount is returned when k is not in [1, min(len(data), MaxClusters)].
	ErrInvalidClusterCount error = kind("invalid cluster count")
	// ErrComputation is returned when the solver breaks one of its own invariants.
	ErrComputation error = kind("computation failed")
)

// kind is a class of failure. It unwraps to ErrCkmeans.
type kind string

func (k kind) Error() string { return string(k) }

func (k kind) Unwrap() error { return ErrCkmeans }

// DataError describes an invalid observation.
// It unwraps to ErrInvalidData.
type DataError struct {
	// Index is the position of the offending value, or -1 when the
	// problem is with the sequence as a whole.
	Index  int
	Value  float64
	Reason string
}

func (e *DataError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidData, e.Reason)
	}
	return fmt.Sprintf("%s: input data contains %s at index %d", ErrInvalidData, e.Reason, e.Index)
}

func (e *DataError) Unwrap() error { return ErrInvalidData }

// ClusterCountError describes an unusable cluster count.
// It unwraps to ErrInvalidClusterCount.
type ClusterCountError struct {
	K      int
	Len    int
	Reason string
}

func (e *ClusterCountError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidClusterCount, e.Reason)
}

func (e *ClusterCountError) Unwrap() error { return ErrInvalidClusterCount }

func computationError(err error) error {
	return fmt.Errorf("%w: %w", ErrComputation, err)
}
