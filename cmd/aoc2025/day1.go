package main

import (
	"strconv"

	"github.com/lkrol/aoc2025"
)

const (
	dialSize  = 100
	dialStart = 50
)

// parseRotation turns "L42" into -42 and "R42" into 42.
func parseRotation(instruction string) (int, error) {
	if len(instruction) < 2 {
		return 0, aoc.Invalid(instruction)
	}
	distance, err := strconv.ParseUint(instruction[1:], 10, 31)
	if err != nil {
		return 0, aoc.Invalid(instruction)
	}
	switch instruction[0] {
	case 'L', 'l':
		return -int(distance), nil
	case 'R', 'r':
		return int(distance), nil
	}
	return 0, aoc.Invalid(instruction)
}

// turnDial rotates the dial from cur by rotation. It returns where the
// dial stops and how many times it went past 0 on the way, not counting
// stopping on 0.
func turnDial(cur, rotation int) (next, passed int) {
	passed = aoc.AbsDiff(rotation, 0) / dialSize
	next = cur + rotation%dialSize
	switch {
	case next >= dialSize:
		next -= dialSize
		if next != 0 {
			passed++
		}
	case next < 0:
		next += dialSize
		if cur != 0 {
			passed++
		}
	}
	return next, passed
}

// countZeros runs the instructions from start and returns how often the
// dial stopped on 0, and how often it stopped on or went past 0.
func countZeros(start int, instructions []string) (stops, clicks int, err error) {
	rotations, err := aoc.ParseAll("instructions", instructions, parseRotation)
	if err != nil {
		return 0, 0, err
	}
	cur := start
	for _, r := range rotations {
		var passed int
		cur, passed = turnDial(cur, r)
		clicks += passed
		if cur == 0 {
			stops++
			clicks++
		}
	}
	return stops, clicks, nil
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	stops, _, err := countZeros(dialStart, s.NonEmptyLines())
	if err != nil {
		return err
	}
	return stops
}

// want=6
func (s solver) D1p2() any {
	_, clicks, err := countZeros(dialStart, s.NonEmptyLines())
	if err != nil {
		return err
	}
	return clicks
}
