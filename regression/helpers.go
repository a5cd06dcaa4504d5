package regression

import (
	"math"

	"github.com/arloliu/montepi/montecarlo"
)

// calculateCheckpoints returns 1, 2, 5 × 10^k up to maxN, plus maxN itself when it
// is more than 20% past the last standard point.
func calculateCheckpoints(maxN int) []int {
	if maxN <= 0 {
		return nil
	}

	var out []int
	for decade := 1; decade <= maxN; decade *= 10 {
		for _, m := range []int{1, 2, 5} {
			if p := m * decade; p <= maxN {
				out = append(out, p)
			}
		}
		if decade > math.MaxInt/10 {
			break
		}
	}

	last := out[len(out)-1]
	if maxN > last && float64(maxN)/float64(last) > 1.2 {
		out = append(out, maxN)
	}

	return out
}

// selectCheckpoints keeps the requested checkpoints that fit in a series of
// length maxN, falling back to calculateCheckpoints when none were requested.
func selectCheckpoints(requested []int, maxN int) []int {
	if len(requested) == 0 {
		return calculateCheckpoints(maxN)
	}

	out := make([]int, 0, len(requested))
	for _, n := range requested {
		if n <= maxN {
			out = append(out, n)
		}
	}

	return out
}

// rmsErrors measures, at each checkpoint, the root mean square distance between
// the estimates of all series and target.
func rmsErrors(series []montecarlo.Series, checkpoints []int, target float64) []float64 {
	out := make([]float64, len(checkpoints))
	for i, k := range checkpoints {
		sumSq := 0.0
		count := 0
		for _, s := range series {
			v, ok := s.At(k)
			if !ok {
				continue
			}
			d := v - target
			sumSq += d * d
			count++
		}
		if count > 0 {
			out[i] = math.Sqrt(sumSq / float64(count))
		}
	}

	return out
}
