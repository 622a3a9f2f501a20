// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrEmptyCounts indicates a goodness-of-fit request with no observations.
var ErrEmptyCounts = errors.New("circuit: no observations")

// Counts maps a measured basis index to the number of shots that produced it.
type Counts map[int]int

// Total returns the number of shots.
func (c Counts) Total() int {
	var n int
	for _, k := range c {
		n += k
	}

	return n
}

// Outcomes returns the observed basis indices in ascending order.
func (c Counts) Outcomes() []int {
	out := make([]int, 0, len(c))
	for v := range c {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Frequencies returns count/total for every index in [0, dim).
func (c Counts) Frequencies(dim int) []float64 {
	out := make([]float64, dim)
	total := c.Total()
	if total == 0 {
		return out
	}
	for v, k := range c {
		if v >= 0 && v < dim {
			out[v] = float64(k) / float64(total)
		}
	}

	return out
}

// Bitstrings re-keys the counts by n-bit binary strings, qubit 0 first
// (e.g. 5 on three qubits is "101").
func (c Counts) Bitstrings(n int) map[string]int {
	out := make(map[string]int, len(c))
	for v, k := range c {
		out[Bitstring(v, n)] = k
	}

	return out
}

// String renders "{00:512 11:488}" with outcomes in ascending order.
func (c Counts) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range c.Outcomes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%d", v, c[v])
	}
	sb.WriteByte('}')

	return sb.String()
}

// Bitstring formats v as an n-bit binary string, zero padded.
func Bitstring(v, n int) string {
	s := strconv.FormatInt(int64(v), 2)
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}

// GoodnessOfFit runs Pearson's chi-square test of the observed counts against
// the expected distribution probs (indexed by basis state).
// Bins with zero expected probability are excluded from the statistic; an
// observation in such a bin makes the fit impossible (stat=+Inf, p=0).
// Returns the statistic and its p-value with (non-zero bins - 1) degrees of freedom.
// Complexity: O(len(probs)).
func GoodnessOfFit(counts Counts, probs []float64) (chi2, pValue float64, err error) {
	total := counts.Total()
	if total == 0 {
		return 0, 0, ErrEmptyCounts
	}
	for v := range counts {
		if v < 0 || v >= len(probs) || probs[v] == 0 {
			return math.Inf(1), 0, nil
		}
	}

	var obs, exp []float64
	for v, p := range probs {
		if p == 0 {
			continue
		}
		obs = append(obs, float64(counts[v]))
		exp = append(exp, p*float64(total))
	}
	if len(exp) < 2 {
		return 0, 1, nil // a single possible outcome always fits
	}

	chi2 = stat.ChiSquare(obs, exp)
	pValue = distuv.ChiSquared{K: float64(len(exp) - 1)}.Survival(chi2)

	return chi2, pValue, nil
}
