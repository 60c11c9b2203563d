// Package aggregation derives dashboard metrics, chart series, and calendar
// events from a raw list of crop updates. Callers pre-scope the list (a
// farmer sees only its own records) before handing it over.
package aggregation

import (
	"time"

	"cropconnect/models"
)

// Metrics holds total and per-status submission counts.
type Metrics struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Count tallies submissions by status.
func Count(updates []models.CropUpdate) Metrics {
	var m Metrics
	for _, u := range updates {
		m.Total++
		switch u.Status {
		case models.StatusPending:
			m.Pending++
		case models.StatusApproved:
			m.Approved++
		case models.StatusRejected:
			m.Rejected++
		}
	}
	return m
}

// PercentOf returns count as a percentage of the total, 0 when empty.
func (m Metrics) PercentOf(count int) float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(count) / float64(m.Total) * 100
}

// ChartPoint is one bucket of a chart series with per-status counts.
type ChartPoint struct {
	Name     string `json:"name"`
	Pending  int    `json:"pending"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

func (p *ChartPoint) add(status string) {
	switch status {
	case models.StatusPending:
		p.Pending++
	case models.StatusApproved:
		p.Approved++
	case models.StatusRejected:
		p.Rejected++
	}
}

// MonthlySeries buckets submissions by calendar month of their submission
// timestamp. Only months present in the input appear, ordered Jan to Dec.
func MonthlySeries(updates []models.CropUpdate) []ChartPoint {
	buckets := make(map[time.Month]*ChartPoint)
	for _, u := range updates {
		month := u.CreatedAt.Month()
		point, ok := buckets[month]
		if !ok {
			point = &ChartPoint{Name: u.CreatedAt.Format("Jan")}
			buckets[month] = point
		}
		point.add(u.Status)
	}

	series := make([]ChartPoint, 0, len(buckets))
	for month := time.January; month <= time.December; month++ {
		if point, ok := buckets[month]; ok {
			series = append(series, *point)
		}
	}
	return series
}

// Season names in display order.
var seasonOrder = []string{"Spring", "Summer", "Fall", "Winter"}

// SeasonOf maps a calendar month to its season: Mar-May Spring, Jun-Aug
// Summer, Sep-Nov Fall, everything else Winter.
func SeasonOf(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return "Spring"
	case month >= time.June && month <= time.August:
		return "Summer"
	case month >= time.September && month <= time.November:
		return "Fall"
	default:
		return "Winter"
	}
}

// SeasonalSeries buckets submissions by season. All four buckets are always
// present, zero-filled, in order Spring, Summer, Fall, Winter.
func SeasonalSeries(updates []models.CropUpdate) []ChartPoint {
	buckets := make(map[string]*ChartPoint, len(seasonOrder))
	for _, name := range seasonOrder {
		buckets[name] = &ChartPoint{Name: name}
	}

	for _, u := range updates {
		buckets[SeasonOf(u.CreatedAt.Month())].add(u.Status)
	}

	series := make([]ChartPoint, 0, len(seasonOrder))
	for _, name := range seasonOrder {
		series = append(series, *buckets[name])
	}
	return series
}
