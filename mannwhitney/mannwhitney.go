// Package mannwhitney implements the two-sided Mann-Whitney U test, a
// rank-based comparison of two independent samples that does not assume
// normality. The P-value uses the tie-corrected normal approximation, without
// continuity correction, at every sample size: one documented variant rather
// than a size-dependent switch between exact and asymptotic forms.
package mannwhitney

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrDegenerate indicates that the test is undefined for the given input:
// one of the groups is empty, or every pooled value is identical so the rank
// variance is zero.
var ErrDegenerate = errors.New("mannwhitney: degenerate input")

// TwoSided tests whether the distributions of x and y differ. Tied values
// receive midranks and the variance is tie-corrected. The returned P-value is
// in [0, 1].
func TwoSided(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrDegenerate
	}

	n1 := float64(len(x))
	n2 := float64(len(y))
	n := n1 + n2

	rankSumX, tieTerm := midranks(x, y)

	// U statistic for x, its null mean, and the tie-corrected null variance.
	u := rankSumX - n1*(n1+1)/2
	mean := n1 * n2 / 2
	variance := n1 * n2 / 12 * ((n + 1) - tieTerm/(n*(n-1)))

	if variance <= 0 {
		return 0, ErrDegenerate
	}

	z := (u - mean) / math.Sqrt(variance)

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * normal.CDF(-math.Abs(z))
	if p > 1 {
		p = 1
	}

	return p, nil
}

type pooledValue struct {
	value float64
	fromX bool
}

// midranks pools x and y, assigns 1-based midranks, and returns the rank sum
// for x along with the tie-correction term Σ(t³-t) over tie groups of size t.
func midranks(x, y []float64) (rankSumX, tieTerm float64) {
	pooled := make([]pooledValue, 0, len(x)+len(y))
	for _, v := range x {
		pooled = append(pooled, pooledValue{value: v, fromX: true})
	}
	for _, v := range y {
		pooled = append(pooled, pooledValue{value: v})
	}

	sort.Slice(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	for i := 0; i < len(pooled); {
		// j runs past the tie group that starts at i.
		j := i + 1
		for j < len(pooled) && pooled[j].value == pooled[i].value {
			j++
		}

		// Positions i..j-1 (0-based) share the midrank of ranks i+1..j.
		midrank := float64(i+j+1) / 2

		for k := i; k < j; k++ {
			if pooled[k].fromX {
				rankSumX += midrank
			}
		}

		if t := float64(j - i); t > 1 {
			tieTerm += t*t*t - t
		}

		i = j
	}

	return rankSumX, tieTerm
}
