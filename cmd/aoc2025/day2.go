package main

import (
	"strings"

	"github.com/lkrol/aoc2025"
	"github.com/lkrol/aoc2025/ranges"
)

// parseRange parses "lo-hi".
func parseRange(s string) (ranges.Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok || strings.Contains(hi, "-") {
		return ranges.Range{}, aoc.Invalid(s)
	}
	a, err := aoc.Uint(lo)
	if err != nil {
		return ranges.Range{}, aoc.Invalid(s)
	}
	b, err := aoc.Uint(hi)
	if err != nil {
		return ranges.Range{}, aoc.Invalid(s)
	}
	return ranges.Range{Lo: a, Hi: b}, nil
}

// parseIDRanges reads ranges separated by commas or semicolons, possibly
// spread over several lines. Every bad token is reported.
func parseIDRanges(lines []string) ([]ranges.Range, error) {
	var toks []string
	for _, line := range lines {
		line = strings.ReplaceAll(strings.TrimSpace(line), ";", ",")
		toks = append(toks, strings.Split(line, ",")...)
	}
	return aoc.ParseAll("ranges", toks, parseRange)
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565635-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	rs, err := parseIDRanges(s.NonEmptyLines())
	if err != nil {
		return err
	}
	return ranges.SumRepeated(rs, []int{2})
}

// want=4174379265
func (s solver) D2p2() any {
	rs, err := parseIDRanges(s.NonEmptyLines())
	if err != nil {
		return err
	}
	ks := ranges.RepeatCounts(rs)
	s.Debugf("trying repeat counts %v", ks)
	return ranges.SumRepeated(rs, ks)
}
