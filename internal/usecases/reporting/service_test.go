package reporting_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting"
	"github.com/socialpulse/follower-report-api/internal/usecases/reporting/mocks"
)

func serviceConfig(businessLines bool) *config.Config {
	cfg := &config.Config{}
	cfg.Report = config.Report{
		HeaderMode:           config.HeaderModeMonthName,
		DefaultYear:          2025,
		BusinessLinesEnabled: businessLines,
		TotalsStartMonth:     1,
		TotalsStartYear:      2025,
		TotalsColumnOffset:   2,
	}
	return cfg
}

func employeeSheet() *domain.RawSheet {
	return &domain.RawSheet{
		Headers: []string{"First name", "Last name", "Status", "Business line", "January", "February"},
		Rows: [][]string{
			{"Ann", "Lee", "Active", "Technology", "100", "120"},
			{"Bob", "Ray", "Active", "Sales", "", ""},
		},
	}
}

func TestGetFollowerReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSheetSource(ctrl)
	source.EXPECT().FetchEmployeeSheet(gomock.Any()).Return(employeeSheet(), nil)

	service := reporting.NewService(serviceConfig(false), source)

	report, err := service.GetFollowerReport(context.Background())

	require.NoError(t, err)

	// Bob has no data points at all and is excluded entirely.
	require.Len(t, report.Employees, 1)
	ann := report.Employees[0]
	assert.Equal(t, "Ann Lee", ann.DisplayName())
	require.NotNil(t, ann.Metrics)
	assert.Equal(t, float64(120), ann.Metrics.CurrentFollowers)
	assert.Equal(t, float64(20), ann.Metrics.AbsoluteGrowth)
	assert.Equal(t, float64(20), ann.Metrics.GrowthRate)

	winners, ok := report.MonthlyWinners.([]*domain.Winner)
	require.True(t, ok)
	require.Len(t, winners, 1)
	assert.Equal(t, "2025-02-01", winners[0].Period)
	assert.Equal(t, "Ann Lee", winners[0].Name)
	assert.Equal(t, float64(20), winners[0].Metric.Growth)

	require.NotNil(t, report.Summary)
	assert.Equal(t, 1, report.Summary.TotalEmployees)
	assert.Equal(t, float64(120), report.Summary.TotalFollowers)
	require.NotNil(t, report.Summary.TopGrower)
	assert.Equal(t, "Ann Lee", *report.Summary.TopGrower)

	assert.Nil(t, report.BusinessLines)
}

func TestGetFollowerReport_WithBusinessLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSheetSource(ctrl)
	source.EXPECT().FetchEmployeeSheet(gomock.Any()).Return(employeeSheet(), nil)
	source.EXPECT().FetchTotalsSheet(gomock.Any()).Return(&domain.RawSheet{
		Headers: []string{"Technology", "", "January", "February"},
		Rows: [][]string{
			{"", "Total", "400", "520"},
		},
	}, nil)

	service := reporting.NewService(serviceConfig(true), source)

	report, err := service.GetFollowerReport(context.Background())

	require.NoError(t, err)

	require.Len(t, report.BusinessLines, 1)
	tech := report.BusinessLines[0]
	assert.Equal(t, "Technology", tech.Name)
	assert.Equal(t, 1, tech.EmployeeCount)
	require.NotNil(t, tech.Metrics)
	assert.Equal(t, float64(520), tech.Metrics.CurrentFollowers)
	assert.Equal(t, float64(120), tech.Metrics.AbsoluteGrowth)

	winners, ok := report.MonthlyWinners.(*domain.MonthlyWinners)
	require.True(t, ok)
	require.Len(t, winners.Employees, 1)
	require.Len(t, winners.BusinessLines, 1)
	assert.Equal(t, "Technology", winners.BusinessLines[0].Name)
}

func TestGetFollowerReport_TotalsFetchFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSheetSource(ctrl)
	source.EXPECT().FetchEmployeeSheet(gomock.Any()).Return(employeeSheet(), nil)
	source.EXPECT().FetchTotalsSheet(gomock.Any()).Return(nil, errors.New("range not found"))

	service := reporting.NewService(serviceConfig(true), source)

	report, err := service.GetFollowerReport(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.BusinessLines)

	winners, ok := report.MonthlyWinners.(*domain.MonthlyWinners)
	require.True(t, ok)
	require.Len(t, winners.Employees, 1)
	assert.Empty(t, winners.BusinessLines)
}

func TestGetFollowerReport_EmployeeFetchFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSheetSource(ctrl)
	fetchErr := errors.New("credentials missing")
	source.EXPECT().FetchEmployeeSheet(gomock.Any()).Return(nil, fetchErr)

	service := reporting.NewService(serviceConfig(true), source)

	report, err := service.GetFollowerReport(context.Background())

	assert.Nil(t, report)
	assert.Equal(t, fetchErr, err)
}
