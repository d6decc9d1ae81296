package ranges

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
	"tailscale.com/util/set"
)

// DigitLength returns the number of decimal digits in n. Zero has one
// digit.
func DigitLength[T constraints.Unsigned](n T) int {
	l := 1
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

func pow10(n int) uint64 {
	v := uint64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

// Partials returns every partial whose k-fold repetition has as many digits
// as some number in r and whose leading digits are within r's bounds. The
// repetitions still need filtering against r; see RepeatedIn.
func Partials(r Range, k int) []uint64 {
	if k < 2 {
		return nil
	}
	var out []uint64
	for l := DigitLength(r.Lo); l <= DigitLength(r.Hi); l++ {
		if l%k != 0 {
			continue
		}
		pl := l / k
		div := pow10(l - pl)
		lo := max(r.Lo/div, pow10(pl-1))
		hi := min(r.Hi/div, pow10(pl)-1)
		for p := lo; p <= hi; p++ {
			out = append(out, p)
		}
	}
	return out
}

// Expander writes a partial out k times in a row. Multipliers are
// cached by partial length, so an Expander should be reused for a batch of
// partials with the same k.
type Expander struct {
	k     int
	mults map[int]uint128.Uint128
}

func NewExpander(k int) *Expander {
	return &Expander{k: k, mults: make(map[int]uint128.Uint128)}
}

// Expand returns p repeated k times, e.g. 123 with k=2 is 123123.
// It panics if the result does not fit in 128 bits.
func (e *Expander) Expand(p uint64) uint128.Uint128 {
	l := DigitLength(p)
	m, ok := e.mults[l]
	if !ok {
		m = multiplier(l, e.k)
		e.mults[l] = m
	}
	return m.Mul64(p)
}

// multiplier returns the sum of (10^l)^i for i in [0, k).
func multiplier(l, k int) uint128.Uint128 {
	base := uint128.From64(1)
	for range l {
		base = base.Mul64(10)
	}
	var sum uint128.Uint128
	term := uint128.From64(1)
	for i := range k {
		sum = sum.Add(term)
		if i < k-1 {
			term = term.Mul(base)
		}
	}
	return sum
}

// Repeat expands every partial with a single Expander.
func Repeat(partials []uint64, k int) []uint128.Uint128 {
	e := NewExpander(k)
	out := make([]uint128.Uint128, 0, len(partials))
	for _, p := range partials {
		out = append(out, e.Expand(p))
	}
	return out
}

// RepeatedIn returns the numbers in r made of one digit string repeated
// exactly k times.
func RepeatedIn(r Range, k int) []uint64 {
	var out []uint64
	for _, v := range Repeat(Partials(r, k), k) {
		if v.Cmp64(r.Lo) >= 0 && v.Cmp64(r.Hi) <= 0 {
			out = append(out, v.Lo)
		}
	}
	return out
}

// RepeatedSet returns the distinct numbers across rs that are a digit
// string repeated k times, for any k in ks.
func RepeatedSet(rs []Range, ks []int) set.Set[uint64] {
	found := make(set.Set[uint64])
	for _, r := range rs {
		for _, k := range ks {
			for _, v := range RepeatedIn(r, k) {
				found.Add(v)
			}
		}
	}
	return found
}

// SumRepeated sums RepeatedSet(rs, ks).
func SumRepeated(rs []Range, ks []int) uint128.Uint128 {
	var sum uint128.Uint128
	for v := range RepeatedSet(rs, ks) {
		sum = sum.Add64(v)
	}
	return sum
}

// MaxRepeats returns the largest repeat count worth trying for rs: the
// digit length of the largest upper bound, and at least 2.
func MaxRepeats(rs []Range) int {
	if len(rs) == 0 {
		return 2
	}
	hi := slices.MaxFunc(rs, func(a, b Range) int {
		return cmp.Compare(a.Hi, b.Hi)
	}).Hi
	return max(DigitLength(hi), 2)
}

// RepeatCounts returns 2..MaxRepeats(rs).
func RepeatCounts(rs []Range) []int {
	var ks []int
	for k := 2; k <= MaxRepeats(rs); k++ {
		ks = append(ks, k)
	}
	return ks
}
