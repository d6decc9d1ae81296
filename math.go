package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Digits returns the individual digits of the string, or an InvalidInput
// error naming line if any rune isn't a digit.
func Digits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, ok := Digit(c)
		if !ok {
			return nil, Invalid(line)
		}
		in = append(in, d)
	}
	return in, nil
}

// Digit returns the digit value of the rune.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Sum returns the sum of the numbers. It panics if the sum does not fit in
// 128 bits.
func Sum(nums ...uint64) uint128.Uint128 {
	var sum uint128.Uint128
	for _, v := range nums {
		sum = sum.Add64(v)
	}
	return sum
}

// Product returns the product of the numbers, or 1 for none. It panics if
// the product does not fit in 128 bits.
func Product(nums ...uint64) uint128.Uint128 {
	p := uint128.From64(1)
	for _, v := range nums {
		p = p.Mul64(v)
	}
	return p
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string. It panics if s isn't one.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Uint parses a base-10 uint64.
func Uint(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
