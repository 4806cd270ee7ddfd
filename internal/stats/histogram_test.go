package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeHistogram(t *testing.T) {
	t.Run("two bins over a simple range", func(t *testing.T) {
		h := MakeHistogram([]float64{0, 10}, 2)
		assert.Equal(t, []float64{0, 5, 10}, h.BinEdges)
		assert.Equal(t, []int{1, 1}, h.Counts)
	})

	t.Run("last bin includes the maximum", func(t *testing.T) {
		h := MakeHistogram([]float64{0, 2.5, 5, 7.5, 10}, 4)
		assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, h.BinEdges)
		assert.Equal(t, []int{1, 1, 1, 2}, h.Counts)
	})

	t.Run("identical values widen the range", func(t *testing.T) {
		h := MakeHistogram([]float64{3, 3, 3}, 2)
		require.Len(t, h.BinEdges, 3)
		assert.Equal(t, 2.5, h.BinEdges[0])
		assert.Equal(t, 3.5, h.BinEdges[2])
		assert.Equal(t, 3, h.Counts[0]+h.Counts[1])
	})

	t.Run("empty input yields empty histogram", func(t *testing.T) {
		h := MakeHistogram(nil, 5)
		assert.Empty(t, h.BinEdges)
		assert.Empty(t, h.Counts)
	})

	t.Run("counts sum to input size and edges stay increasing", func(t *testing.T) {
		values := []float64{1.1, 4.7, 9.3, 2.2, 8.8, 6.6, 3.3, 0.4, 7.7, 5.5}
		for _, bins := range []int{1, 3, 7, 24} {
			h := MakeHistogram(values, bins)

			require.Len(t, h.BinEdges, bins+1)
			require.Len(t, h.Counts, bins)

			total := 0
			for _, c := range h.Counts {
				total += c
			}
			assert.Equal(t, len(values), total, "bins=%d", bins)

			for i := 1; i < len(h.BinEdges); i++ {
				assert.Greater(t, h.BinEdges[i], h.BinEdges[i-1], "bins=%d edge=%d", bins, i)
			}
			assert.Equal(t, 0.4, h.BinEdges[0])
			assert.Equal(t, 9.3, h.BinEdges[bins])
		}
	})

	t.Run("non-positive bin count falls back to one bin", func(t *testing.T) {
		h := MakeHistogram([]float64{1, 2}, 0)
		assert.Equal(t, []float64{1, 2}, h.BinEdges)
		assert.Equal(t, []int{2}, h.Counts)
	})
}
