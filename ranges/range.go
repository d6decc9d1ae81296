// Package ranges is a small set of pure functions over closed uint64
// intervals: merging, coverage, membership and the repeated-digit search.
package ranges

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Range is the closed interval [Lo, Hi]. Callers must keep Lo <= Hi.
type Range struct {
	Lo, Hi uint64
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// Contains reports whether v lies in r.
func (r Range) Contains(v uint64) bool {
	return r.Lo <= v && v <= r.Hi
}

// Overlaps reports whether the start of either range lies inside the
// other. Ranges that only touch numerically, like 1-2 and 3-4, do not
// overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Contains(o.Lo) || o.Contains(r.Lo)
}

// Len returns the number of integers in r.
func (r Range) Len() uint128.Uint128 {
	return uint128.From64(r.Hi - r.Lo).Add64(1)
}

// Merge folds overlapping ranges together until no two ranges in the
// result overlap. The input is left untouched.
func Merge(rs []Range) []Range {
	out := append([]Range(nil), rs...)
	for {
		absorbed, next := mergePass(out)
		if absorbed == 0 {
			return next
		}
		out = next
	}
}

// mergePass adds each range to the first merged range it overlaps, or
// appends it. It returns how many ranges were absorbed. A range grown late
// in a pass may now overlap one placed earlier, so a single pass is not
// enough on its own.
func mergePass(rs []Range) (absorbed int, out []Range) {
	out = make([]Range, 0, len(rs))
	for _, r := range rs {
		i := indexOverlapping(out, r)
		if i < 0 {
			out = append(out, r)
			continue
		}
		absorbed++
		out[i].Lo = min(out[i].Lo, r.Lo)
		out[i].Hi = max(out[i].Hi, r.Hi)
	}
	return absorbed, out
}

func indexOverlapping(rs []Range, r Range) int {
	for i, e := range rs {
		if e.Overlaps(r) {
			return i
		}
	}
	return -1
}

// Coverage returns the total number of integers in rs. rs must already be
// disjoint; see Merge.
func Coverage(rs []Range) uint128.Uint128 {
	var total uint128.Uint128
	for _, r := range rs {
		total = total.Add(r.Len())
	}
	return total
}

// Contains reports whether any range in rs holds v.
func Contains(rs []Range, v uint64) bool {
	for _, r := range rs {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Covered returns the points held by at least one range, keeping their
// order and duplicates.
func Covered(points []uint64, rs []Range) []uint64 {
	var out []uint64
	for _, p := range points {
		if Contains(rs, p) {
			out = append(out, p)
		}
	}
	return out
}
