package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/spatial"
	"github.com/climsight/weather-probability-go/internal/stats"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

// RegionService fans the point analysis out over a region's sample
// coordinates and merges the per-point results.
type RegionService struct {
	analysis    *AnalysisService
	gridStep    float64
	concurrency int
	logger      *zap.Logger
}

// NewRegionService creates a new region service on top of the point
// analysis service.
func NewRegionService(analysis *AnalysisService, cfg *config.Config, logger *zap.Logger) *RegionService {
	return &RegionService{
		analysis:    analysis,
		gridStep:    cfg.GridStep,
		concurrency: cfg.FetchConcurrency,
		logger:      logger,
	}
}

// SamplePoints builds the region's sample set: explicit points unioned
// with the polygon rasterized onto the provider grid. A polygon too
// small to cover any grid point falls back to its centroid.
func (s *RegionService) SamplePoints(req models.RegionRequest) []spatial.Point {
	var points []spatial.Point
	for _, p := range req.Points {
		points = append(points, spatial.Point{Lat: p.Lat, Lon: p.Lon})
	}

	if len(req.Polygon) >= 3 {
		poly := make([]spatial.Point, len(req.Polygon))
		for i, c := range req.Polygon {
			poly[i] = spatial.Point{Lat: c.Lat, Lon: c.Lon}
		}
		sampled := spatial.SampleGrid(poly, s.gridStep)
		if len(sampled) == 0 {
			sampled = []spatial.Point{spatial.Centroid(poly)}
		}
		points = append(points, sampled...)
	}

	return points
}

// pointResult is one coordinate's contribution, privately owned by its
// goroutine until the join barrier.
type pointResult struct {
	probability float64
	ok          bool
	values      []float64
}

// Aggregate runs the fan-out/merge. Each sample coordinate is fetched
// and analyzed independently under bounded concurrency; coordinates
// whose fetch fails or whose filtered series has no valid readings are
// dropped rather than failing the request. The merge averages the
// per-point probabilities and summarizes the union of all valid
// values.
func (s *RegionService) Aggregate(ctx context.Context, req models.RegionRequest) (*models.RegionAggregate, error) {
	th, threshold, err := s.analysis.ResolveCondition(req.ConditionType, req.CustomThreshold)
	if err != nil {
		return nil, err
	}

	points := s.SamplePoints(req)
	if len(points) == 0 {
		return nil, ErrEmptyRegion
	}

	selector := req.TimeFilter.Selector()

	results := make([]pointResult, len(points))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, pt := range points {
		wg.Add(1)
		go func(i int, pt spatial.Point) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			raw, err := s.analysis.FetchSeries(ctx, pt.Lat, pt.Lon, th.Parameter)
			if err != nil {
				s.logger.Warn("dropping region sample point",
					zap.Float64("lat", pt.Lat),
					zap.Float64("lon", pt.Lon),
					zap.Error(err))
				return
			}

			data := selector.Apply(raw)
			prob, ok := stats.Probability(data, threshold, th.Direction)
			results[i] = pointResult{
				probability: prob,
				ok:          ok,
				values:      timeseries.ValidValues(data),
			}
		}(i, pt)
	}
	wg.Wait()

	var probs []float64
	var counts []float64
	var merged []float64
	for _, r := range results {
		if !r.ok {
			continue
		}
		probs = append(probs, r.probability)
		counts = append(counts, float64(len(r.values)))
		merged = append(merged, r.values...)
	}

	if len(probs) == 0 {
		return nil, ErrNoRegionData
	}

	info := models.RegionInfo{
		PointsUsed:   len(probs),
		TotalSamples: len(points),
	}
	if len(req.Polygon) >= 3 {
		poly := make([]spatial.Point, len(req.Polygon))
		for i, c := range req.Polygon {
			poly[i] = spatial.Point{Lat: c.Lat, Lon: c.Lon}
		}
		info.AreaKm2 = stats.Round2(spatial.PolygonAreaKm2(poly))
	}

	return &models.RegionAggregate{
		Region:        info,
		ConditionType: req.ConditionType,
		Parameter:     th.Parameter,
		Condition:     string(th.Direction),
		Threshold:     threshold,
		Probability:   stats.Round3(stats.Mean(probs)),
		RegionStats: models.RegionStats{
			MeanPointDays: int(stats.Mean(counts)),
			ValueSummary:  stats.Summarize(merged),
		},
	}, nil
}
