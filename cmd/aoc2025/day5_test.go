package main

import (
	"strings"
	"testing"

	"github.com/lkrol/aoc2025"
	"github.com/lkrol/aoc2025/ranges"
	"github.com/stretchr/testify/require"
)

const exampleInventory = "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32"

func nonEmpty(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

func TestParseInventory(t *testing.T) {
	inv, err := parseInventory(nonEmpty(exampleInventory))
	require.NoError(t, err)
	require.Equal(t, []ranges.Range{{3, 5}, {10, 14}, {16, 20}, {12, 18}}, inv.fresh)
	require.Equal(t, []uint64{1, 5, 8, 11, 17, 32}, inv.ids)
}

func TestParseInventoryErrors(t *testing.T) {
	_, err := parseInventory([]string{"3-5", "x-9", "7", "eight", "9-2", "1-2-3"})
	var pe *aoc.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "inventory", pe.What)
	require.Equal(t, aoc.InputErrors{
		aoc.Invalid("x-9"),
		aoc.Invalid("eight"),
		aoc.Invalid("9-2"),
		aoc.Invalid("1-2-3"),
	}, pe.Errs)
}

func TestFreshIngredients(t *testing.T) {
	inv, err := parseInventory(nonEmpty(exampleInventory))
	require.NoError(t, err)
	require.Equal(t, []uint64{5, 11, 17}, ranges.Covered(inv.ids, inv.fresh))
	require.Equal(t, "14", ranges.Coverage(ranges.Merge(inv.fresh)).String())
}
