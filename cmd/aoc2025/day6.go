package main

import (
	"strings"

	"github.com/lkrol/aoc2025"
	"lukechampine.com/uint128"
)

const worksheet = "worksheet"

type problem struct {
	nums []uint64
	op   byte
}

func (p problem) solve() uint128.Uint128 {
	if p.op == '*' {
		return aoc.Product(p.nums...)
	}
	return aoc.Sum(p.nums...)
}

// grandTotal panics if the total does not fit in 128 bits.
func grandTotal(ps []problem) uint128.Uint128 {
	return aoc.Fold(ps, func(sum uint128.Uint128, p problem) uint128.Uint128 {
		return sum.Add(p.solve())
	}, uint128.Zero)
}

func parseOp(tok string) (byte, error) {
	if tok != "+" && tok != "*" {
		return 0, aoc.InputError{Kind: aoc.UnknownOperation, Text: tok}
	}
	return tok[0], nil
}

func parseNumber(tok string) (uint64, error) {
	v, err := aoc.Uint(tok)
	if err != nil {
		return 0, aoc.Invalid(tok)
	}
	return v, nil
}

// parseProblems reads the worksheet the usual way: every whitespace
// separated column is one problem, with numbers on top and the operator in
// the last row.
func parseProblems(lines []string) ([]problem, error) {
	if len(lines) < 2 {
		return nil, aoc.Fail(worksheet, aoc.InputError{Kind: aoc.EmptyInput})
	}
	table := make([][]string, len(lines))
	for y, line := range lines {
		table[y] = strings.Fields(line)
		if len(table[y]) != len(table[0]) {
			return nil, aoc.Fail(worksheet, aoc.InputError{Kind: aoc.MismatchedColumns})
		}
	}

	var errs aoc.InputErrors
	rows := make([][]uint64, 0, len(table)-1)
	for _, row := range table[:len(table)-1] {
		nums, err := aoc.ParseAll(worksheet, row, parseNumber)
		errs.Add(err)
		rows = append(rows, nums)
	}
	ops, err := aoc.ParseAll(worksheet, table[len(table)-1], parseOp)
	errs.Add(err)
	if err := errs.Err(worksheet); err != nil {
		return nil, err
	}

	ps := make([]problem, len(ops))
	for x, op := range ops {
		ps[x].op = op
		for _, row := range rows {
			ps[x].nums = append(ps[x].nums, row[x])
		}
	}
	return ps, nil
}

type columnGroup struct {
	start, end int // character columns [start, end)
	op         byte
}

// columnGroups splits the worksheet's character columns into problems.
// A problem runs from its operator up to the next one; the first problem
// also takes any columns before its operator.
func columnGroups(opRow string, width int) ([]columnGroup, error) {
	var groups []columnGroup
	var errs aoc.InputErrors
	for x, c := range opRow {
		switch c {
		case ' ':
		case '+', '*':
			if n := len(groups); n > 0 {
				groups[n-1].end = x
			}
			groups = append(groups, columnGroup{start: x, op: byte(c)})
		default:
			errs = append(errs, aoc.InputError{Kind: aoc.UnknownOperation, Text: string(c)})
		}
	}
	if len(groups) == 0 && len(errs) == 0 {
		errs = append(errs, aoc.Invalid(opRow))
	}
	if err := errs.Err(worksheet); err != nil {
		return nil, err
	}
	groups[0].start = 0
	groups[len(groups)-1].end = width
	return groups, nil
}

// parseColumnProblems reads the worksheet column by column: within a
// problem, each character column holds one number written top to bottom,
// and numbers are read right to left. Blank columns separate problems.
func parseColumnProblems(lines []string) ([]problem, error) {
	if len(lines) < 2 {
		return nil, aoc.Fail(worksheet, aoc.InputError{Kind: aoc.EmptyInput})
	}
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	rows := make([]string, len(lines))
	for y, line := range lines {
		rows[y] = line + strings.Repeat(" ", width-len(line))
	}
	numRows, opRow := rows[:len(rows)-1], rows[len(rows)-1]

	var errs aoc.InputErrors
	for y, row := range numRows {
		if strings.Trim(row, " 0123456789") != "" {
			errs = append(errs, aoc.Invalid(lines[y]))
		}
	}
	groups, err := columnGroups(opRow, width)
	errs.Add(err)
	if err := errs.Err(worksheet); err != nil {
		return nil, err
	}

	ps := make([]problem, 0, len(groups))
	for _, g := range groups {
		var col []string
		for x := g.end - 1; x >= g.start; x-- {
			var sb strings.Builder
			for _, row := range numRows {
				if row[x] != ' ' {
					sb.WriteByte(row[x])
				}
			}
			if sb.Len() > 0 {
				col = append(col, sb.String())
			}
		}
		nums, err := aoc.ParseAll(worksheet, col, parseNumber)
		errs.Add(err)
		ps = append(ps, problem{nums: nums, op: g.op})
	}
	if err := errs.Err(worksheet); err != nil {
		return nil, err
	}
	return ps, nil
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	ps, err := parseProblems(s.NonEmptyLines())
	if err != nil {
		return err
	}
	return grandTotal(ps)
}

// want=3263827
func (s solver) D6p2() any {
	ps, err := parseColumnProblems(s.NonEmptyLines())
	if err != nil {
		return err
	}
	s.Debugf("%d problems", len(ps))
	return grandTotal(ps)
}
