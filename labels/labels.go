// Package labels packs group labels into a compact bit stream, for shipping
// the classification of many features to a renderer.
//
// Every label takes Width(k) bits, most significant bit first.
package labels

import (
	"fmt"
	"math/bits"

	"github.com/yyyoichi/bitstream-go"
)

// Width returns the number of bits one label of k groups takes.
func Width(k int) int {
	if k <= 2 {
		return 1
	}
	return bits.Len(uint(k - 1))
}

// Packed is a sequence of labels in [0, k).
type Packed struct {
	n, k   int
	width  int
	reader *bitstream.BitReader[uint64]
}

// Encode packs labels, each of which must lie in [0, k).
func Encode(labels []int, k int) (*Packed, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be positive: %d", k)
	}
	width := Width(k)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i, l := range labels {
		if l < 0 || l >= k {
			return nil, fmt.Errorf("label %d at index %d out of range [0,%d)", l, i, k)
		}
		for b := width - 1; b >= 0; b-- {
			w.WriteBool((l>>b)&1 == 1)
		}
	}
	return newPacked(w.Data(), len(labels), k, width), nil
}

// FromData wraps a stream produced by Data of a Packed holding n labels of k groups.
func FromData(data []uint64, n, k int) (*Packed, error) {
	if k < 1 || n < 0 {
		return nil, fmt.Errorf("invalid shape: n=%d k=%d", n, k)
	}
	width := Width(k)
	if need := n * width; need > len(data)*64 {
		return nil, fmt.Errorf("stream too short: %d bits for %d labels of %d bits", len(data)*64, n, width)
	}
	return newPacked(data, n, k, width), nil
}

func newPacked(data []uint64, n, k, width int) *Packed {
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(n * width)
	return &Packed{n: n, k: k, width: width, reader: r}
}

// Len returns the number of labels.
func (p *Packed) Len() int { return p.n }

// K returns the number of groups.
func (p *Packed) K() int { return p.k }

// Width returns the bits per label.
func (p *Packed) Width() int { return p.width }

// Bits returns the number of meaningful bits in Data.
func (p *Packed) Bits() int { return p.reader.Bits() }

// Data returns the packed stream.
func (p *Packed) Data() []uint64 { return p.reader.Data() }

// At returns label i.
func (p *Packed) At(i int) (int, error) {
	if i < 0 || i >= p.n {
		return 0, fmt.Errorf("label index %d out of range [0,%d)", i, p.n)
	}
	var l int
	at := i * p.width
	for b := range p.width {
		bit, err := p.reader.ReadBitAt(at + b)
		if err != nil {
			return 0, fmt.Errorf("label %d: %w", i, err)
		}
		l <<= 1
		if bit {
			l |= 1
		}
	}
	return l, nil
}

// Decode unpacks every label.
func (p *Packed) Decode() ([]int, error) {
	out := make([]int, p.n)
	for i := range out {
		l, err := p.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}
	return out, nil
}
