package main

import "github.com/lkrol/aoc2025"

// maxCrowding is the most occupied neighbors an accessible roll may have.
const maxCrowding = 3

// parseRack reads a grid of '@' (a roll of paper) and '.' (empty).
func parseRack(lines []string) (aoc.Grid[bool], error) {
	rows, err := aoc.ParseAll("paper rolls", lines, func(line string) ([]bool, error) {
		row := make([]bool, 0, len(line))
		for _, c := range line {
			switch c {
			case '@':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, aoc.Invalid(line)
			}
		}
		return row, nil
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, aoc.Fail("paper rolls", aoc.InputError{Kind: aoc.EmptyInput})
	}
	for _, row := range rows[1:] {
		if len(row) != len(rows[0]) {
			return nil, aoc.Fail("paper rolls", aoc.InputError{Kind: aoc.MismatchedRowSize})
		}
	}
	return aoc.Grid[bool](rows), nil
}

func occupied(v bool) bool { return v }

// accessibleRolls counts the rolls with at most maxCrowding neighbors.
// With remove set, each one is taken off the rack as soon as it is found,
// so later rolls in the same pass see it gone.
func accessibleRolls(rack aoc.Grid[bool], remove bool) int {
	n := 0
	rack.ForEach(func(p aoc.Pt, roll bool) {
		if !roll || rack.CountNeighbors(p, occupied) > maxCrowding {
			return
		}
		if remove {
			rack.Set(p, false)
		}
		n++
	})
	return n
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	rack, err := parseRack(s.NonEmptyLines())
	if err != nil {
		return err
	}
	s.Debugf("rack size %v", rack.Size())
	return accessibleRolls(rack, false)
}

// want=43
func (s solver) D4p2() any {
	rack, err := parseRack(s.NonEmptyLines())
	if err != nil {
		return err
	}
	total := 0
	// The rack has settled once a pass leaves its contents unchanged.
	h := rack.Hash()
	for pass := 1; ; pass++ {
		total += accessibleRolls(rack, true)
		next := rack.Hash()
		if next == h {
			s.Debugf("rack settled after %d passes", pass)
			return total
		}
		h = next
	}
}
