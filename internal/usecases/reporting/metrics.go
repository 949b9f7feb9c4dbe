package reporting

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/socialpulse/follower-report-api/internal/domain"
	"github.com/socialpulse/follower-report-api/pkg/utils"
)

// ComputeMetrics summarises a sparse series end to end: latest value,
// absolute growth against the earliest value, growth rate and consistency.
// An empty series yields all-zero defaults.
func ComputeMetrics(series map[string]float64) *domain.Metrics {
	if len(series) == 0 {
		return &domain.Metrics{}
	}

	dates := sortedDates(series)
	earliest := series[dates[0]]
	latest := series[dates[len(dates)-1]]
	growth := latest - earliest

	return &domain.Metrics{
		CurrentFollowers: latest,
		AbsoluteGrowth:   growth,
		GrowthRate:       growthRate(growth, earliest),
		ConsistencyScore: consistencyScore(series, dates),
	}
}

// ComputePeriodMetrics emits one record per pair of chronologically adjacent
// present entries, keyed by the later date. Gaps in the series are skipped:
// a missing month never registers as a drop to zero.
func ComputePeriodMetrics(series map[string]float64) map[string]*domain.PeriodMetric {
	dates := sortedDates(series)

	periods := make(map[string]*domain.PeriodMetric)
	for i := 1; i < len(dates); i++ {
		previous, current := dates[i-1], dates[i]
		start, end := series[previous], series[current]

		periods[current] = &domain.PeriodMetric{
			Label:      periodLabel(previous, current),
			Period:     current,
			Growth:     end - start,
			GrowthRate: growthRate(end-start, start),
			StartValue: start,
			EndValue:   end,
		}
	}

	return periods
}

func sortedDates(series map[string]float64) []string {
	dates := make([]string, 0, len(series))
	for date := range series {
		dates = append(dates, date)
	}
	// ISO day strings sort chronologically.
	sort.Strings(dates)
	return dates
}

// growthRate guards division by a zero or negative baseline: that counts as
// no growth, never an error or infinity.
func growthRate(delta, base float64) float64 {
	if base <= 0 {
		return 0
	}
	return utils.RoundWithOneDecimalPlace(delta / base * 100)
}

// consistencyScore is the rounded percentage of adjacent present pairs whose
// delta is non-negative, 0 when fewer than one pair exists.
func consistencyScore(series map[string]float64, dates []string) float64 {
	if len(dates) < 2 {
		return 0
	}

	nonNegative := 0
	for i := 1; i < len(dates); i++ {
		if series[dates[i]]-series[dates[i-1]] >= 0 {
			nonNegative++
		}
	}

	return math.Round(float64(nonNegative) / float64(len(dates)-1) * 100)
}

// periodLabel renders a human label for the pair: a single "January 2026"
// when both dates share the calendar month, a range otherwise.
func periodLabel(startDate, endDate string) string {
	start, startErr := time.Parse(time.DateOnly, startDate)
	end, endErr := time.Parse(time.DateOnly, endDate)
	if startErr != nil || endErr != nil {
		return fmt.Sprintf("%s - %s", startDate, endDate)
	}

	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%s %d", end.Month(), end.Year())
	case start.Year() == end.Year():
		return fmt.Sprintf("%s - %s %d", start.Month(), end.Month(), end.Year())
	default:
		return fmt.Sprintf("%s %d - %s %d", start.Month(), start.Year(), end.Month(), end.Year())
	}
}
