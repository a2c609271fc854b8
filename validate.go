package ckmeans

import (
	"fmt"
	"math"
)

const (
	// MaxClusters is the largest supported k. It keeps every label packed by
	// Result.PackLabels within 16 bits.
	MaxClusters = math.MaxUint16
	// MaxObservations is the largest supported input length; split
	// positions are held as int32.
	MaxObservations = math.MaxInt32
)

// Validate checks data and k the way Cluster and Breaks do before any work
// starts. Checks run in order: empty data, k < 1, k > len(data), non-finite
// values (first offending index), k > MaxClusters, len(data) > MaxObservations.
func Validate(data []float64, k int) error {
	if len(data) == 0 {
		return &DataError{Index: -1, Reason: "input data array is empty"}
	}
	if k < 1 {
		return &ClusterCountError{K: k, Len: len(data),
			Reason: "number of clusters (k) must be greater than 0"}
	}
	if k > len(data) {
		return &ClusterCountError{K: k, Len: len(data),
			Reason: fmt.Sprintf("number of clusters (%d) cannot exceed the number of data points (%d)", k, len(data))}
	}
	for i, v := range data {
		if math.IsNaN(v) {
			return &DataError{Index: i, Value: v, Reason: "NaN"}
		}
		if math.IsInf(v, 0) {
			return &DataError{Index: i, Value: v, Reason: "infinite value"}
		}
	}
	if k > MaxClusters {
		return &ClusterCountError{K: k, Len: len(data),
			Reason: fmt.Sprintf("number of clusters is too large (%d > %d)", k, MaxClusters)}
	}
	if len(data) > MaxObservations {
		return &DataError{Index: -1,
			Reason: fmt.Sprintf("input data array is too long (%d > %d)", len(data), MaxObservations)}
	}
	return nil
}
