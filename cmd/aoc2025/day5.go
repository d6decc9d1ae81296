package main

import (
	"fmt"
	"strings"

	"github.com/lkrol/aoc2025"
	"github.com/lkrol/aoc2025/ranges"
)

type inventory struct {
	fresh []ranges.Range
	ids   []uint64
}

// parseInventory reads fresh ID ranges ("3-5") and available ingredient
// IDs ("17"), one per line, in any order.
func parseInventory(lines []string) (inventory, error) {
	type entry struct {
		fresh   ranges.Range
		id      uint64
		isRange bool
	}
	entries, err := aoc.ParseAll("inventory", lines, func(line string) (entry, error) {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "-") {
			r, err := parseRange(line)
			if err != nil {
				return entry{}, err
			}
			if r.Lo > r.Hi {
				return entry{}, aoc.Invalid(line)
			}
			return entry{fresh: r, isRange: true}, nil
		}
		id, err := aoc.Uint(line)
		if err != nil {
			return entry{}, aoc.Invalid(line)
		}
		return entry{id: id}, nil
	})
	if err != nil {
		return inventory{}, err
	}
	var inv inventory
	for _, e := range entries {
		if e.isRange {
			inv.fresh = append(inv.fresh, e.fresh)
		} else {
			inv.ids = append(inv.ids, e.id)
		}
	}
	return inv, nil
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	inv, err := parseInventory(s.NonEmptyLines())
	if err != nil {
		return err
	}
	fresh := ranges.Covered(inv.ids, inv.fresh)
	s.Debugf("fresh ingredients: %v", fresh)
	return len(fresh)
}

// want=14
func (s solver) D5p2() any {
	inv, err := parseInventory(s.NonEmptyLines())
	if err != nil {
		return err
	}
	merged := ranges.Merge(inv.fresh)
	total := ranges.Coverage(merged)

	// The index joins touching ranges that Merge keeps apart, but both must
	// hold the same IDs.
	ix := ranges.NewIndex(inv.fresh)
	s.Debugf("%d ranges merged into %d, %d once touching ranges join", len(inv.fresh), len(merged), len(ix.Ranges()))
	if n := ix.Count(); !n.Equals(total) {
		return fmt.Errorf("merged ranges cover %v IDs, index holds %v", total, n)
	}
	return total
}
