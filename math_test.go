package aoc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDigits(t *testing.T) {
	got, err := Digits("9012")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{9, 0, 1, 2}, got); diff != "" {
		t.Errorf("Digits mismatch (-want +got):\n%s", diff)
	}
	if _, err := Digits("90ab"); err != Invalid("90ab") {
		t.Errorf("Digits(90ab) error = %v, want %v", err, Invalid("90ab"))
	}
}

func TestSumProduct(t *testing.T) {
	if got := Sum(123, 45, 6); !got.Equals64(174) {
		t.Errorf("Sum = %v", got)
	}
	if got := Product(123, 45, 6); !got.Equals64(33210) {
		t.Errorf("Product = %v", got)
	}
	if got := Product(); !got.Equals64(1) {
		t.Errorf("Product() = %v, want 1", got)
	}
	if got := AbsDiff(-3, 4); got != 7 {
		t.Errorf("AbsDiff(-3, 4) = %d, want 7", got)
	}
}

func TestSumProductDoNotWrap(t *testing.T) {
	if got, want := Sum(math.MaxUint64, math.MaxUint64).String(), "36893488147419103230"; got != want {
		t.Errorf("Sum(max, max) = %s, want %s", got, want)
	}
	if got, want := Product(math.MaxUint64, 2).String(), "36893488147419103230"; got != want {
		t.Errorf("Product(max, 2) = %s, want %s", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Error("Product past 128 bits did not panic")
		}
	}()
	Product(math.MaxUint64, math.MaxUint64, math.MaxUint64)
}
