package ranges

import (
	"math"

	"github.com/b97tsk/rangeset"
	"lukechampine.com/uint128"
)

// Index answers membership queries against a fixed list of ranges in
// logarithmic time. It holds the same points as the ranges it was built
// from, with overlaps and neighbors collapsed.
type Index struct {
	set rangeset.RangeSet[uint64] // half-open
	top bool                      // holds math.MaxUint64, which a half-open set can't
}

func NewIndex(rs []Range) *Index {
	ix := new(Index)
	for _, r := range rs {
		if r.Lo > r.Hi {
			continue
		}
		if r.Hi == math.MaxUint64 {
			ix.top = true
			ix.set.AddRange(r.Lo, r.Hi)
			continue
		}
		ix.set.AddRange(r.Lo, r.Hi+1)
	}
	return ix
}

func (ix *Index) Contains(v uint64) bool {
	if v == math.MaxUint64 {
		return ix.top
	}
	return ix.set.Contains(v)
}

// Count returns the number of distinct points held.
func (ix *Index) Count() uint128.Uint128 {
	var n uint128.Uint128
	for _, r := range ix.set {
		n = n.Add64(r.High - r.Low)
	}
	if ix.top {
		n = n.Add64(1)
	}
	return n
}

// Ranges returns the held points as disjoint closed ranges in ascending
// order.
func (ix *Index) Ranges() []Range {
	out := make([]Range, 0, len(ix.set))
	for _, r := range ix.set {
		out = append(out, Range{Lo: r.Low, Hi: r.High - 1})
	}
	if ix.top {
		if n := len(out); n > 0 && out[n-1].Hi == math.MaxUint64-1 {
			out[n-1].Hi = math.MaxUint64
		} else {
			out = append(out, Range{Lo: math.MaxUint64, Hi: math.MaxUint64})
		}
	}
	return out
}
