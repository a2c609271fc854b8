package sortview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	test := []struct {
		name   string
		data   []float64
		values []float64
		index  []int
	}{
		{"sorted", []float64{1, 2, 3}, []float64{1, 2, 3}, []int{0, 1, 2}},
		{"reversed", []float64{3, 2, 1}, []float64{1, 2, 3}, []int{2, 1, 0}},
		{"ties_keep_order", []float64{2, 1, 2, 1}, []float64{1, 1, 2, 2}, []int{1, 3, 0, 2}},
		{"single", []float64{42}, []float64{42}, []int{0}},
		{"negative", []float64{0, -1.5, 10, -3}, []float64{-3, -1.5, 0, 10}, []int{3, 1, 0, 2}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			orig := append([]float64(nil), tt.data...)
			v := New(tt.data)
			assert.Equal(t, tt.values, v.Values)
			assert.Equal(t, tt.index, v.Index)
			assert.Equal(t, len(tt.data), v.Len())
			// caller data is not mutated
			assert.Equal(t, orig, tt.data)
		})
	}
}

func TestRange(t *testing.T) {
	v := New([]float64{5, 4, 3, 2, 1})
	r := v.Range(1, 3)
	assert.Equal(t, []float64{2, 3}, r)
	assert.Equal(t, 2, cap(r))

	r = append(r, 100)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, v.Values)
}
