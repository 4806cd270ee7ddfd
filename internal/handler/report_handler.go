package handler

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/climsight/weather-probability-go/internal/service"
	"github.com/climsight/weather-probability-go/pkg/response"
)

// ReportHandler handles report downloads.
type ReportHandler struct {
	analysis *service.AnalysisService
}

// NewReportHandler creates a new report handler
func NewReportHandler(analysis *service.AnalysisService) *ReportHandler {
	return &ReportHandler{analysis: analysis}
}

// GetReport handles GET /api/v1/extreme-weather/report
// The filtered valid series is streamed as CSV, or returned as JSON
// when format=json.
func (h *ReportHandler) GetReport(c *gin.Context) {
	lat, lon, ok := parseLatLon(c)
	if !ok {
		return
	}
	conditionType := c.Query("condition_type")
	if conditionType == "" {
		response.BadRequest(c, "condition_type is required")
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "json" {
		response.BadRequest(c, "format must be csv or json")
		return
	}

	var month *int
	if m := c.Query("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(c, "Invalid month parameter")
			return
		}
		month = &n
	}

	threshold, rows, err := h.analysis.Report(c.Request.Context(), lat, lon, conditionType, month)
	if err != nil {
		writeError(c, err)
		return
	}

	if format == "json" {
		data := make(map[string]float64, len(rows))
		for _, row := range rows {
			data[row.Date] = row.Value
		}
		c.JSON(200, gin.H{
			"metadata": gin.H{
				"lat":       lat,
				"lon":       lon,
				"condition": conditionType,
				"parameter": threshold.Parameter,
				"unit":      threshold.Unit,
			},
			"data": data,
		})
		return
	}

	filename := fmt.Sprintf("weather_report_%s_%g_%g.csv", conditionType, lat, lon)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Value", "Parameter", "Unit", "Location_Lat", "Location_Lon"})
	for _, row := range rows {
		_ = w.Write([]string{
			row.Date,
			strconv.FormatFloat(row.Value, 'f', -1, 64),
			threshold.Parameter,
			threshold.Unit,
			strconv.FormatFloat(lat, 'f', -1, 64),
			strconv.FormatFloat(lon, 'f', -1, 64),
		})
	}
	w.Flush()
}
