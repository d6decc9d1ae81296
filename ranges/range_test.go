package ranges

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var exampleFresh = []Range{{3, 5}, {10, 14}, {16, 20}, {12, 18}}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b Range
		want bool
	}{
		{Range{1, 2}, Range{3, 4}, false},
		{Range{1, 2}, Range{2, 4}, true},
		{Range{2, 4}, Range{1, 2}, true},
		{Range{1, 3}, Range{2, 4}, true},
		{Range{2, 4}, Range{1, 3}, true},
		{Range{1, 10}, Range{2, 5}, true},
		{Range{2, 5}, Range{1, 10}, true},
		{Range{5, 5}, Range{5, 5}, true},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Range
		want []Range
	}{
		{"single", []Range{{1, 2}}, []Range{{1, 2}}},
		{"separate", []Range{{1, 2}, {4, 5}, {6, 10}}, []Range{{1, 2}, {4, 5}, {6, 10}}},
		{"adjacent", []Range{{1, 2}, {3, 4}}, []Range{{1, 2}, {3, 4}}},
		{"shared-end", []Range{{1, 2}, {2, 4}}, []Range{{1, 4}}},
		{"overlap-end", []Range{{1, 2}, {2, 5}, {10, 15}, {12, 20}}, []Range{{1, 5}, {10, 20}}},
		{"contains-first-larger", []Range{{1, 10}, {3, 5}}, []Range{{1, 10}}},
		{"contains-second-larger", []Range{{3, 5}, {1, 10}}, []Range{{1, 10}}},
		{"multi", exampleFresh, []Range{{3, 5}, {10, 20}}},
		{"late-bridge", []Range{{1, 3}, {7, 9}, {5, 6}, {2, 5}}, []Range{{1, 6}, {7, 9}}},
		{"needs-second-pass", []Range{{1, 2}, {5, 6}, {4, 8}, {2, 4}}, []Range{{1, 8}}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Merge(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestMergeLeavesInputAlone(t *testing.T) {
	in := []Range{{1, 5}, {2, 8}}
	Merge(in)
	if diff := cmp.Diff([]Range{{1, 5}, {2, 8}}, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestMergeIdempotent(t *testing.T) {
	disjoint := []Range{{1, 2}, {4, 9}, {11, 11}, {20, 40}}
	if diff := cmp.Diff(disjoint, Merge(disjoint)); diff != "" {
		t.Errorf("Merge of disjoint set changed it (-want +got):\n%s", diff)
	}
	once := Merge(exampleFresh)
	if diff := cmp.Diff(once, Merge(once)); diff != "" {
		t.Errorf("Merge not idempotent (-want +got):\n%s", diff)
	}
}

func TestCoverage(t *testing.T) {
	if got := Coverage(Merge(exampleFresh)); !got.Equals64(14) {
		t.Errorf("Coverage = %v, want 14", got)
	}
	full := []Range{{0, 1<<64 - 1}, {0, 1<<64 - 1}}
	got := Coverage(full)
	if got.Hi != 2 || got.Lo != 0 {
		t.Errorf("Coverage(%v) = %v, want 2^65", full, got)
	}
}

func TestCovered(t *testing.T) {
	points := []uint64{1, 5, 8, 11, 17, 32}
	want := []uint64{5, 11, 17}
	if diff := cmp.Diff(want, Covered(points, exampleFresh)); diff != "" {
		t.Errorf("Covered mismatch (-want +got):\n%s", diff)
	}
	dups := []uint64{11, 1, 11, 3}
	if diff := cmp.Diff([]uint64{11, 11, 3}, Covered(dups, exampleFresh)); diff != "" {
		t.Errorf("Covered dropped duplicates (-want +got):\n%s", diff)
	}
}

func randomRanges(rng *rand.Rand, n int, span uint64) []Range {
	rs := make([]Range, n)
	for i := range rs {
		lo := uint64(rng.Int63n(int64(span)))
		rs[i] = Range{lo, lo + uint64(rng.Int63n(int64(span/8)+1))}
	}
	return rs
}

func TestMergeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		rs := randomRanges(rng, 1+rng.Intn(12), 200)
		seen := map[uint64]bool{}
		for _, r := range rs {
			for v := r.Lo; v <= r.Hi; v++ {
				seen[v] = true
			}
		}
		merged := Merge(rs)
		if got := Coverage(merged); !got.Equals64(uint64(len(seen))) {
			t.Fatalf("Coverage(Merge(%v)) = %v, want %d", rs, got, len(seen))
		}
		for j, a := range merged {
			for _, b := range merged[j+1:] {
				if a.Overlaps(b) {
					t.Fatalf("Merge(%v) = %v: %v overlaps %v", rs, merged, a, b)
				}
			}
		}
		if got := NewIndex(rs).Count(); !got.Equals64(uint64(len(seen))) {
			t.Fatalf("Index(%v).Count() = %v, want %d", rs, got, len(seen))
		}
	}
}
