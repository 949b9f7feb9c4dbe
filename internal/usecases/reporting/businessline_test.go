package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

func totalsReport() config.Report {
	return config.Report{
		TotalsStartMonth:   3,
		TotalsStartYear:    2025,
		TotalsColumnOffset: 2,
	}
}

func TestParseBusinessLines(t *testing.T) {
	sheet := &domain.RawSheet{
		Headers: []string{"Technology team", "", "March", "April", "May"},
		Rows: [][]string{
			{"", "Ann Lee", "100", "120", "130"},
			{"", "Total", "400", "", "520"},
			{"Sales org", "", "", "", ""},
			{"", "total", "200", "210", "190"},
			{"Design", "", "", "", ""},
			{"", "Total", "", "n/a", ""},
		},
	}

	lines := ParseBusinessLines(sheet, totalsReport())

	require.Len(t, lines, 2)

	tech := lines[0]
	assert.Equal(t, "Technology", tech.Name)
	// The empty April cell leaves a gap in the series.
	assert.Equal(t, map[string]float64{
		"2025-03-01": 400,
		"2025-05-01": 520,
	}, tech.Followers)

	sales := lines[1]
	assert.Equal(t, "Sales", sales.Name)
	assert.Equal(t, map[string]float64{
		"2025-03-01": 200,
		"2025-04-01": 210,
		"2025-05-01": 190,
	}, sales.Followers)
}

func TestParseBusinessLines_FirstTotalsRowWins(t *testing.T) {
	sheet := &domain.RawSheet{
		Headers: []string{"Marketing", "", "March"},
		Rows: [][]string{
			{"", "Total", "300"},
			{"", "Total", "999"},
		},
	}

	lines := ParseBusinessLines(sheet, totalsReport())

	require.Len(t, lines, 1)
	assert.Equal(t, map[string]float64{"2025-03-01": 300}, lines[0].Followers)
}

func TestParseBusinessLines_NoDataPointsExcluded(t *testing.T) {
	sheet := &domain.RawSheet{
		Headers: []string{"Finance", "", "March"},
		Rows: [][]string{
			{"", "Total", "n/a"},
			{"", "Total", ""},
		},
	}

	assert.Empty(t, ParseBusinessLines(sheet, totalsReport()))
}

func TestParseBusinessLines_TotalsBeforeAnyKeywordIgnored(t *testing.T) {
	sheet := &domain.RawSheet{
		Headers: []string{"Overview", "", "March"},
		Rows: [][]string{
			{"", "Total", "300"},
			{"People", "", ""},
			{"", "Total", "50"},
		},
	}

	lines := ParseBusinessLines(sheet, totalsReport())

	require.Len(t, lines, 1)
	assert.Equal(t, "People", lines[0].Name)
}

func TestCountEmployees(t *testing.T) {
	employees := []*domain.Employee{
		{FirstName: "Ann", BusinessLine: "Technology"},
		{FirstName: "Bob", BusinessLine: "tech"},
		{FirstName: "Eve", BusinessLine: "Product Marketing"},
		{FirstName: "Kim", BusinessLine: "Sales"},
	}

	// Containment runs both ways: "tech" is inside "Technology" and
	// "Product" is inside "Product Marketing".
	assert.Equal(t, 2, CountEmployees("Technology", employees))
	assert.Equal(t, 1, CountEmployees("Product", employees))
	assert.Equal(t, 1, CountEmployees("Marketing", employees))
	assert.Equal(t, 0, CountEmployees("Finance", employees))
}
