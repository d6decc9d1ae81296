package main

import (
	"testing"

	"github.com/lkrol/aoc2025"
	"github.com/stretchr/testify/require"
)

func TestParseRotation(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "L68", want: -68},
		{in: "R48", want: 48},
		{in: "r5", want: 5},
		{in: "l0", want: 0},
		{in: "R", wantErr: true},
		{in: "X12", wantErr: true},
		{in: "L-3", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseRotation(tt.in)
		if tt.wantErr {
			require.Equal(t, aoc.Invalid(tt.in), err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestTurnDial(t *testing.T) {
	tests := []struct {
		cur, rotation int
		next, passed  int
	}{
		{cur: 50, rotation: -68, next: 82, passed: 1},
		{cur: 52, rotation: 48, next: 0, passed: 0},
		{cur: 0, rotation: -5, next: 95, passed: 0},
		{cur: 95, rotation: 60, next: 55, passed: 1},
		{cur: 50, rotation: 1000, next: 50, passed: 10},
		{cur: 50, rotation: -250, next: 0, passed: 2},
		{cur: 0, rotation: 100, next: 0, passed: 1},
	}
	for _, tt := range tests {
		next, passed := turnDial(tt.cur, tt.rotation)
		require.Equal(t, tt.next, next, "turnDial(%d, %d)", tt.cur, tt.rotation)
		require.Equal(t, tt.passed, passed, "turnDial(%d, %d)", tt.cur, tt.rotation)
	}
}

func TestCountZeros(t *testing.T) {
	in := []string{"L68", "L30", "R48", "L5", "R60", "L55", "L1", "L99", "R14", "L82"}
	stops, clicks, err := countZeros(dialStart, in)
	require.NoError(t, err)
	require.Equal(t, 3, stops)
	require.Equal(t, 6, clicks)
}

func TestCountZerosCollectsErrors(t *testing.T) {
	_, _, err := countZeros(dialStart, []string{"L1", "Q2", "R", "R3"})
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, aoc.InputErrors{aoc.Invalid("Q2"), aoc.Invalid("R")}, pe.Errs)
}
