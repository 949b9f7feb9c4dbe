package reporting

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/socialpulse/follower-report-api/internal/domain"
	"github.com/socialpulse/follower-report-api/pkg/utils"
)

// winnerCandidate flattens the fields shared by employees and business lines
// so both run through the same ranking.
type winnerCandidate struct {
	name         string
	businessLine string
	profileLink  string
	periods      map[string]*domain.PeriodMetric
}

// EmployeeWinners ranks employees per period by growth.
func EmployeeWinners(employees []*domain.Employee) []*domain.Winner {
	candidates := make([]winnerCandidate, 0, len(employees))
	for _, employee := range employees {
		candidates = append(candidates, winnerCandidate{
			name:         employee.DisplayName(),
			businessLine: employee.BusinessLine,
			profileLink:  employee.ProfileLink,
			periods:      employee.PeriodMetrics,
		})
	}
	return rankWinners(candidates)
}

// BusinessLineWinners ranks business lines per period by growth.
func BusinessLineWinners(lines []*domain.BusinessLine) []*domain.Winner {
	candidates := make([]winnerCandidate, 0, len(lines))
	for _, line := range lines {
		candidates = append(candidates, winnerCandidate{
			name:    line.Name,
			periods: line.PeriodMetrics,
		})
	}
	return rankWinners(candidates)
}

// rankWinners picks, for each period present in any candidate, the candidate
// with the highest strictly positive growth. Periods where nobody grew emit
// no winner. Ties keep candidate encounter order; output is most recent
// first.
func rankWinners(candidates []winnerCandidate) []*domain.Winner {
	type entry struct {
		candidate winnerCandidate
		metric    *domain.PeriodMetric
	}

	byPeriod := make(map[string][]entry)
	for _, candidate := range candidates {
		for period, metric := range candidate.periods {
			if metric.Growth > 0 {
				byPeriod[period] = append(byPeriod[period], entry{candidate, metric})
			}
		}
	}

	periods := make([]string, 0, len(byPeriod))
	for period := range byPeriod {
		periods = append(periods, period)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(periods)))

	winners := make([]*domain.Winner, 0, len(periods))
	for _, period := range periods {
		entries := byPeriod[period]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].metric.Growth > entries[j].metric.Growth
		})

		top := entries[0]
		winners = append(winners, &domain.Winner{
			Period:       period,
			Name:         top.candidate.name,
			BusinessLine: top.candidate.businessLine,
			ProfileLink:  top.candidate.profileLink,
			Metric:       top.metric,
		})
	}

	return winners
}

// ComputeSummary derives the report-wide aggregates from the included
// employees. The top grower is the strictly greatest growth rate, first
// encountered wins on ties; nil when there are no employees.
func ComputeSummary(employees []*domain.Employee, generatedAt time.Time) *domain.Summary {
	summary := &domain.Summary{
		TotalEmployees: len(employees),
		GeneratedAt:    generatedAt,
	}

	rates := make([]float64, 0, len(employees))
	var topGrower *domain.Employee
	for _, employee := range employees {
		if employee.Metrics == nil {
			continue
		}

		summary.TotalFollowers += employee.Metrics.CurrentFollowers
		rates = append(rates, employee.Metrics.GrowthRate)

		if topGrower == nil || employee.Metrics.GrowthRate > topGrower.Metrics.GrowthRate {
			topGrower = employee
		}
	}

	if len(rates) > 0 {
		if mean, err := stats.Mean(rates); err == nil {
			summary.AverageGrowthRate = utils.RoundWithOneDecimalPlace(mean)
		}
	}

	if topGrower != nil {
		name := topGrower.DisplayName()
		summary.TopGrower = &name
	}

	return summary
}
