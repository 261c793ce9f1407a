package allocbench

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MaxRandomSize is the inclusive upper bound for generated
	// non-zero-sized requests, in bytes.
	MaxRandomSize = 1024

	// Alignments are drawn from {1, 2, 4, 8}, i.e. 2^[0, maxAlignExp].
	maxAlignExp = 3
)

// Layout describes one allocation request: a size in bytes and a
// power-of-two alignment. A Layout with Size == 0 is zero-sized and
// needs no real memory behind it.
type Layout struct {
	Size  int
	Align int
}

// NewLayout returns a validated Layout. Size must be non-negative and
// align must be a positive power of two.
func NewLayout(size, align int) (Layout, error) {
	if size < 0 {
		return Layout{}, fmt.Errorf("layout: negative size %d", size)
	}
	if align <= 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("layout: alignment %d is not a positive power of two", align)
	}
	return Layout{Size: size, Align: align}, nil
}

// MakeLayouts produces exactly count layouts. If zeroSized is true
// every layout has Size 0; otherwise sizes are uniform over
// [1, MaxRandomSize]. Alignment is always uniform over {1, 2, 4, 8}.
// Ordering carries no meaning and the sequence is not reproducible
// across runs.
//
// Each layout is validated before it is returned; with the ranges
// above validation cannot fail, so an error here indicates a bug in
// the generator itself and should be treated as fatal.
func MakeLayouts(count int, zeroSized bool) ([]Layout, error) {
	layouts := make([]Layout, 0, count)
	for i := 0; i < count; i++ {
		size := 0
		if !zeroSized {
			size = 1 + rand.IntN(MaxRandomSize)
		}
		align := 1 << rand.IntN(maxAlignExp+1)
		l, err := NewLayout(size, align)
		if err != nil {
			return nil, fmt.Errorf("generate layout %d: %w", i, err)
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}
