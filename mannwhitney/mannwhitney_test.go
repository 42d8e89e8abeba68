package mannwhitney

import (
	"math"
	"testing"
)

type expectations struct {
	X []float64
	Y []float64

	P float64
}

// Truth values calculated with the tie-corrected normal approximation
// (no continuity correction); cross-checked against scipy's
// mannwhitneyu(x, y, alternative="two-sided", use_continuity=False).
func TestTwoSided(t *testing.T) {
	for _, v := range []expectations{
		{[]float64{10, 12, 11}, []float64{40, 42, 41}, 0.0495346},
		{[]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}, 0.0209214},
		{[]float64{1, 2, 3}, []float64{3, 4, 5}, 0.0765223},
		{[]float64{1, 3}, []float64{2, 4}, 0.4385780},
	} {
		p, err := TwoSided(v.X, v.Y)
		if err != nil {
			t.Fatalf("unexpected error for input %+v: %v", v, err)
		}
		if math.Abs(p-v.P) > 1e-3 {
			t.Fatalf("\nError with input: %+v\nP: %.7f\nExpected: %.7f\nDiff: %.7f\n", v, p, v.P, p-v.P)
		}
	}
}

func TestTwoSidedSymmetry(t *testing.T) {
	x := []float64{10, 12, 11, 9}
	y := []float64{40, 42, 41}

	p1, err := TwoSided(x, y)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := TwoSided(y, x)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(p1-p2) > 1e-12 {
		t.Fatalf("expected symmetric P-values, got %v and %v", p1, p2)
	}
}

func TestTwoSidedDegenerate(t *testing.T) {
	if _, err := TwoSided(nil, []float64{1, 2}); err != ErrDegenerate {
		t.Fatalf("empty group: expected ErrDegenerate, got %v", err)
	}

	if _, err := TwoSided([]float64{5, 5}, []float64{5, 5}); err != ErrDegenerate {
		t.Fatalf("all-tied input: expected ErrDegenerate, got %v", err)
	}
}
