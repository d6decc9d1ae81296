package main

import (
	"github.com/lkrol/aoc2025"
	"lukechampine.com/uint128"
)

// parseBanks reads one bank of battery joltages per line. A bank must hold
// at least count batteries.
func parseBanks(lines []string, count int) ([][]int, error) {
	return aoc.ParseAll("battery banks", lines, func(line string) ([]int, error) {
		bank, err := aoc.Digits(line)
		if err != nil {
			return nil, err
		}
		if len(bank) < count {
			return nil, aoc.Invalid(line)
		}
		return bank, nil
	})
}

// pickBatteries returns the count batteries, in bank order, that make the
// largest number. Each pick takes the leftmost maximum that still leaves
// enough batteries after it for the remaining picks.
func pickBatteries(bank []int, count int) []int {
	out := make([]int, 0, count)
	start := 0
	for i := range count {
		end := len(bank) - (count - i - 1)
		best := start
		for j := start + 1; j < end; j++ {
			if bank[j] > bank[best] {
				best = j
			}
		}
		out = append(out, bank[best])
		start = best + 1
	}
	return out
}

func joltage(bank []int, count int) uint64 {
	var v uint64
	for _, d := range pickBatteries(bank, count) {
		v = v*10 + uint64(d)
	}
	return v
}

func totalJoltage(lines []string, count int) (uint128.Uint128, error) {
	banks, err := parseBanks(lines, count)
	if err != nil {
		return uint128.Zero, err
	}
	return aoc.ParallelMapFold(banks, func(bank []int) uint64 {
		return joltage(bank, count)
	}, func(sum uint128.Uint128, v uint64) uint128.Uint128 {
		return sum.Add64(v)
	}, uint128.Zero), nil
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	v, err := totalJoltage(s.NonEmptyLines(), 2)
	if err != nil {
		return err
	}
	return v
}

// want=3121910778619
func (s solver) D3p2() any {
	v, err := totalJoltage(s.NonEmptyLines(), 12)
	if err != nil {
		return err
	}
	return v
}
