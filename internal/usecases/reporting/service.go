package reporting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

// SheetSource provides the raw sheets the report is built from.
type SheetSource interface {
	FetchEmployeeSheet(ctx context.Context) (*domain.RawSheet, error)
	FetchTotalsSheet(ctx context.Context) (*domain.RawSheet, error)
}

// Reporter builds the full follower growth report.
type Reporter interface {
	GetFollowerReport(ctx context.Context) (*domain.Report, error)
}

type Service struct {
	cfg    *config.Config
	sheets SheetSource
}

func NewService(cfg *config.Config, sheets SheetSource) Reporter {
	return &Service{
		cfg:    cfg,
		sheets: sheets,
	}
}

// GetFollowerReport runs the fetch, classify, normalize and aggregate
// pipeline. Everything is recomputed per request; nothing is cached.
func (s *Service) GetFollowerReport(ctx context.Context) (*domain.Report, error) {
	sheet, err := s.sheets.FetchEmployeeSheet(ctx)
	if err != nil {
		return nil, err
	}

	headers := ClassifyHeaders(sheet.Headers, s.cfg.Report)
	normalized := NormalizeEmployees(sheet, headers)

	// Employees without a single data point are excluded from the result set
	// entirely, not emitted with zeroed metrics.
	employees := make([]*domain.Employee, 0, len(normalized))
	for _, employee := range normalized {
		if len(employee.Followers) == 0 {
			continue
		}
		employee.Metrics = ComputeMetrics(employee.Followers)
		employee.PeriodMetrics = ComputePeriodMetrics(employee.Followers)
		employees = append(employees, employee)
	}

	employeeWinners := EmployeeWinners(employees)

	report := &domain.Report{
		Employees:      employees,
		MonthlyWinners: employeeWinners,
		Summary:        ComputeSummary(employees, time.Now().UTC()),
	}

	if !s.cfg.Report.BusinessLinesEnabled {
		return report, nil
	}

	lines := s.fetchBusinessLines(ctx, employees)
	report.BusinessLines = lines
	report.MonthlyWinners = &domain.MonthlyWinners{
		Employees:     employeeWinners,
		BusinessLines: BusinessLineWinners(lines),
	}

	return report, nil
}

// fetchBusinessLines is best-effort: a failing totals fetch is logged and
// yields an empty result instead of failing the whole request.
func (s *Service) fetchBusinessLines(ctx context.Context, employees []*domain.Employee) []*domain.BusinessLine {
	totals, err := s.sheets.FetchTotalsSheet(ctx)
	if err != nil {
		logrus.WithError(err).Warn("business-line totals fetch failed, continuing without business lines")
		return []*domain.BusinessLine{}
	}

	lines := ParseBusinessLines(totals, s.cfg.Report)
	for _, line := range lines {
		line.EmployeeCount = CountEmployees(line.Name, employees)
		line.Metrics = ComputeMetrics(line.Followers)
		line.PeriodMetrics = ComputePeriodMetrics(line.Followers)
	}

	return lines
}
