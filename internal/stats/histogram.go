package stats

// Histogram holds equal-width bin edges and per-bin counts.
// Edges has one more element than Counts and is strictly increasing;
// the sum of Counts equals the number of input values.
type Histogram struct {
	BinEdges []float64 `json:"bins"`
	Counts   []int     `json:"counts"`
}

// MakeHistogram bins values into binCount equal-width bins spanning
// [min, max]. Bins are half-open [edge_i, edge_i+1) except the last,
// which also includes the global maximum. Empty input yields empty
// edges and counts. When all values are equal the range is widened by
// 0.5 on each side so the edges stay strictly increasing.
func MakeHistogram(values []float64, binCount int) Histogram {
	if len(values) == 0 {
		return Histogram{BinEdges: []float64{}, Counts: []int{}}
	}
	if binCount < 1 {
		binCount = 1
	}

	lo := Min(values)
	hi := Max(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	// Edges derived from the index, not accumulated additions.
	edges := make([]float64, binCount+1)
	span := hi - lo
	for i := 0; i <= binCount; i++ {
		edges[i] = lo + span*float64(i)/float64(binCount)
	}
	edges[binCount] = hi

	counts := make([]int, binCount)
	for _, v := range values {
		idx := int(float64(binCount) * (v - lo) / span)
		if idx >= binCount {
			idx = binCount - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return Histogram{BinEdges: edges, Counts: counts}
}
