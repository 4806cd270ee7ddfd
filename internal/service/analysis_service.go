package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/climsight/weather-probability-go/internal/config"
	"github.com/climsight/weather-probability-go/internal/models"
	"github.com/climsight/weather-probability-go/internal/provider"
	"github.com/climsight/weather-probability-go/internal/stats"
	"github.com/climsight/weather-probability-go/internal/timeseries"
)

var monthNames = []string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DefaultHistogramBins is used when a histogram request leaves the bin
// count unset.
const DefaultHistogramBins = 24

// AnalysisService computes point-level probability reports from the
// external daily-series provider.
type AnalysisService struct {
	provider   provider.RawSeriesProvider
	thresholds config.Thresholds
	history    int
	timeout    time.Duration
	logger     *zap.Logger
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(p provider.RawSeriesProvider, thresholds config.Thresholds, cfg *config.Config, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		provider:   p,
		thresholds: thresholds,
		history:    cfg.HistoryYears,
		timeout:    cfg.ProviderTimeout,
		logger:     logger,
	}
}

// ResolveCondition looks up a condition type in the threshold table,
// applying the caller's override when present.
func (s *AnalysisService) ResolveCondition(conditionType string, custom *float64) (config.Threshold, float64, error) {
	th, ok := s.thresholds.Lookup(conditionType)
	if !ok {
		return config.Threshold{}, 0, fmt.Errorf("%w: %s", ErrUnknownCondition, conditionType)
	}
	threshold := th.DefaultThreshold
	if custom != nil {
		threshold = *custom
	}
	return th, threshold, nil
}

// historyWindow is the [start, end] range point analyses cover.
func (s *AnalysisService) historyWindow() (time.Time, time.Time) {
	end := time.Now().UTC()
	return end.AddDate(-s.history, 0, 0), end
}

// FetchSeries retrieves one parameter's daily history at a point.
func (s *AnalysisService) FetchSeries(ctx context.Context, lat, lon float64, parameter string) (timeseries.Series, error) {
	start, end := s.historyWindow()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	series, err := s.provider.FetchDaily(ctx, lat, lon, start, end, []string{parameter})
	if err != nil {
		return nil, err
	}
	return series[parameter], nil
}

// AnalyzePoint runs the full point pipeline: fetch, filter, then
// probability, extremes, distribution and yearly trend. A series with
// no valid readings yields a nil probability, not an error.
func (s *AnalysisService) AnalyzePoint(ctx context.Context, req models.ProbabilityRequest) (*models.PointAnalysis, error) {
	th, threshold, err := s.ResolveCondition(req.ConditionType, req.CustomThreshold)
	if err != nil {
		return nil, err
	}

	raw, err := s.FetchSeries(ctx, req.Lat, req.Lon, th.Parameter)
	if err != nil {
		return nil, err
	}

	data := req.TimeFilter.Selector().Apply(raw)

	result := &models.PointAnalysis{
		Location:      models.Location{Latitude: req.Lat, Longitude: req.Lon},
		TimeFilter:    req.TimeFilter,
		ConditionType: req.ConditionType,
		Parameter:     th.Parameter,
		Condition:     string(th.Direction),
		Threshold:     threshold,
		Statistics:    stats.ExtremeStatistics(data),
		Distribution:  stats.Summarize(timeseries.ValidValues(data)),
		Trend:         stats.YearlyTrend(data, threshold, th.Direction),
		Metadata:      powerMetadata(),
	}

	if prob, ok := stats.Probability(data, threshold, th.Direction); ok {
		result.Probability = &prob
		result.Summary = likelihoodSummary(prob)
	} else {
		s.logger.Info("no valid readings after filtering",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.String("condition", req.ConditionType))
	}

	return result, nil
}

// Histogram bins one raw parameter's filtered history at a point.
func (s *AnalysisService) Histogram(ctx context.Context, req models.HistogramRequest) (*models.HistogramResult, error) {
	bins := req.Bins
	if bins == 0 {
		bins = DefaultHistogramBins
	}

	raw, err := s.FetchSeries(ctx, req.Lat, req.Lon, req.Parameter)
	if err != nil {
		return nil, err
	}

	data := req.TimeFilter.Selector().Apply(raw)
	values := timeseries.ValidValues(data)

	return &models.HistogramResult{
		Histogram: stats.MakeHistogram(values, bins),
		Summary:   stats.Summarize(values),
		Metadata:  models.HistogramMetadata{Parameter: req.Parameter, Bins: bins},
	}, nil
}

// SeasonalHeatmap computes the per-month probability matrix for one
// condition, with the three least and most likely months.
func (s *AnalysisService) SeasonalHeatmap(ctx context.Context, lat, lon float64, conditionType string) (*models.SeasonalHeatmap, error) {
	th, threshold, err := s.ResolveCondition(conditionType, nil)
	if err != nil {
		return nil, err
	}

	raw, err := s.FetchSeries(ctx, lat, lon, th.Parameter)
	if err != nil {
		return nil, err
	}

	monthly := make(map[int]float64, 12)
	for month := 1; month <= 12; month++ {
		prob, ok := stats.Probability(timeseries.FilterByMonth(raw, month), threshold, th.Direction)
		if !ok {
			prob = 0
		}
		monthly[month] = prob
	}

	ranked := make([]models.MonthProbability, 0, 12)
	for month, prob := range monthly {
		ranked = append(ranked, models.MonthProbability{
			Month:       month,
			Name:        monthNames[month],
			Probability: prob,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Probability != ranked[j].Probability {
			return ranked[i].Probability < ranked[j].Probability
		}
		return ranked[i].Month < ranked[j].Month
	})

	best := ranked[:3]
	worst := ranked[len(ranked)-3:]

	names := ""
	for i, m := range best {
		if i > 0 {
			names += ", "
		}
		names += m.Name
	}

	return &models.SeasonalHeatmap{
		Location:       models.Location{Latitude: lat, Longitude: lon},
		ConditionType:  conditionType,
		HeatmapData:    monthly,
		BestMonths:     best,
		WorstMonths:    worst,
		Recommendation: fmt.Sprintf("Best time to avoid %s: %s", conditionType, names),
	}, nil
}

// maxMultiDayWindow bounds multi-day requests.
const maxMultiDayWindow = 30

// maxMultiDayEvents bounds the per-response event list.
const maxMultiDayEvents = 50

// MultiDay estimates the chance of at least one qualifying day inside
// a calendar window, by checking the same day-of-year span across
// every year of history.
func (s *AnalysisService) MultiDay(ctx context.Context, lat, lon float64, conditionType, startDate, endDate string) (*models.MultiDayProbability, error) {
	startDt, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start_date", ErrInvalidRequest)
	}
	endDt, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end_date", ErrInvalidRequest)
	}
	days := int(endDt.Sub(startDt).Hours() / 24)
	if days < 0 {
		return nil, fmt.Errorf("%w: end_date before start_date", ErrInvalidRequest)
	}
	if days > maxMultiDayWindow {
		return nil, fmt.Errorf("%w: maximum %d-day range allowed", ErrInvalidRequest, maxMultiDayWindow)
	}

	th, threshold, err := s.ResolveCondition(conditionType, nil)
	if err != nil {
		return nil, err
	}

	raw, err := s.FetchSeries(ctx, lat, lon, th.Parameter)
	if err != nil {
		return nil, err
	}

	startDoy := startDt.YearDay()
	endDoy := endDt.YearDay()

	var events []models.MultiDayEvent
	yearsAnalyzed := make(map[int]bool)
	yearsWithEvent := make(map[int]bool)

	for _, key := range raw.SortedKeys() {
		t, ok := timeseries.ParseDateKey(key)
		if !ok {
			continue
		}
		doy := t.YearDay()
		if doy < startDoy || doy > endDoy {
			continue
		}
		yearsAnalyzed[t.Year()] = true

		value := raw[key]
		if value == timeseries.MissingValue {
			continue
		}
		qualifies := stats.Exceeds(value, threshold, th.Direction)
		if qualifies {
			yearsWithEvent[t.Year()] = true
		}
		events = append(events, models.MultiDayEvent{
			Year:             t.Year(),
			Date:             key,
			Value:            value,
			ExceedsThreshold: qualifies,
		})
	}

	probability := 0.0
	if len(yearsAnalyzed) > 0 {
		probability = stats.Round3(float64(len(yearsWithEvent)) / float64(len(yearsAnalyzed)))
	}

	if len(events) > maxMultiDayEvents {
		events = events[:maxMultiDayEvents]
	}

	return &models.MultiDayProbability{
		Location:       models.Location{Latitude: lat, Longitude: lon},
		DateRange:      models.DateRange{Start: startDate, End: endDate, Days: days + 1},
		ConditionType:  conditionType,
		Probability:    probability,
		YearsAnalyzed:  len(yearsAnalyzed),
		YearsWithEvent: len(yearsWithEvent),
		Summary:        riskSummary(probability),
		Events:         events,
	}, nil
}

// ReportRow is one line of a downloadable report.
type ReportRow struct {
	Date  string
	Value float64
}

// Report returns the filtered valid readings for export, in date
// order, together with the resolved condition.
func (s *AnalysisService) Report(ctx context.Context, lat, lon float64, conditionType string, month *int) (config.Threshold, []ReportRow, error) {
	th, _, err := s.ResolveCondition(conditionType, nil)
	if err != nil {
		return config.Threshold{}, nil, err
	}

	raw, err := s.FetchSeries(ctx, lat, lon, th.Parameter)
	if err != nil {
		return config.Threshold{}, nil, err
	}

	data := raw
	if month != nil {
		data = timeseries.FilterByMonth(data, *month)
	}

	rows := make([]ReportRow, 0, len(data))
	for _, key := range data.SortedKeys() {
		if v := data[key]; v != timeseries.MissingValue {
			rows = append(rows, ReportRow{Date: key, Value: v})
		}
	}
	return th, rows, nil
}

func likelihoodSummary(prob float64) string {
	switch {
	case prob >= 0.6:
		return "High likelihood; plan accordingly"
	case prob >= 0.3:
		return "Moderate likelihood; monitor conditions"
	default:
		return "Low likelihood"
	}
}

func riskSummary(prob float64) string {
	switch {
	case prob > 0.5:
		return "High risk"
	case prob > 0.3:
		return "Moderate risk"
	default:
		return "Low risk"
	}
}

func powerMetadata() models.SourceMetadata {
	return models.SourceMetadata{
		Source:            "NASA POWER Daily API",
		SpatialResolution: "~0.5° grid",
		TemporalCoverage:  "1981-present (varies by parameter)",
	}
}
