package models

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lon float64 `json:"lon" binding:"min=-180,max=180"`
}

// TimeFilter carries the optional calendar selectors of a request.
// At most one of Doy/Season/Month is honored (day-of-year wins over
// season, season over month); the year range composes with any.
type TimeFilter struct {
	Month     *int    `json:"month" form:"month" binding:"omitempty,min=1,max=12"`
	Season    *string `json:"season" form:"season" binding:"omitempty,oneof=djf mam jja son"`
	Doy       *int    `json:"doy" form:"doy" binding:"omitempty,min=1,max=366"`
	StartYear *int    `json:"start_year" form:"start_year"`
	EndYear   *int    `json:"end_year" form:"end_year"`
}

// ProbabilityRequest is the query for a single-point probability
// analysis.
type ProbabilityRequest struct {
	Lat             float64  `form:"lat" binding:"min=-90,max=90"`
	Lon             float64  `form:"lon" binding:"min=-180,max=180"`
	ConditionType   string   `form:"condition_type" binding:"required"`
	CustomThreshold *float64 `form:"custom_threshold"`
	TimeFilter
}

// RegionRequest asks for an aggregate over explicit points and/or a
// polygon. A polygon needs at least three vertices.
type RegionRequest struct {
	Points  []Coordinate `json:"points" binding:"omitempty,dive"`
	Polygon []Coordinate `json:"polygon" binding:"omitempty,min=3,dive"`

	ConditionType   string   `json:"condition_type" binding:"required"`
	CustomThreshold *float64 `json:"custom_threshold"`
	TimeFilter
}

// HistogramRequest asks for a binned distribution of one raw
// parameter at a point.
type HistogramRequest struct {
	Lat       float64 `json:"lat" binding:"min=-90,max=90"`
	Lon       float64 `json:"lon" binding:"min=-180,max=180"`
	Parameter string  `json:"parameter" binding:"required"`
	Bins      int     `json:"bins" binding:"omitempty,min=4,max=200"`
	TimeFilter
}
