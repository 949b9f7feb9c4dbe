package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

func rosterHeaders(t *testing.T) ClassifiedHeaders {
	t.Helper()

	headers := ClassifyHeaders(
		[]string{"First name", "Last name", "Status", "Business line", "January", "February"},
		config.Report{HeaderMode: config.HeaderModeMonthName, DefaultYear: 2025},
	)
	require.Len(t, headers.DateColumns, 2)
	return headers
}

func TestNormalizeEmployees(t *testing.T) {
	headers := rosterHeaders(t)

	sheet := &domain.RawSheet{
		Headers: []string{"First name", "Last name", "Status", "Business line", "January", "February"},
		Rows: [][]string{
			{"Ann", "Lee", "Active", "Tech", "100", "120"},
			{"Bob", "Ray", "", "", "1,234"},
			{"", "  ", "Active", "Tech", "100", "120"},
			{"Eve", "Cho", "Inactive", "Tech", "100", "120"},
			{"Ann", "Wu", "ACTIVE", "Sales", "", "abc"},
		},
	}

	employees := NormalizeEmployees(sheet, headers)

	require.Len(t, employees, 3)

	ann := employees[0]
	assert.Equal(t, "Ann Lee", ann.DisplayName())
	assert.Equal(t, "Tech", ann.BusinessLine)
	assert.Equal(t, map[string]float64{"2025-01-01": 100, "2025-02-01": 120}, ann.Followers)

	// Empty status is implicitly active; thousands separators are stripped;
	// the short row's missing February cell is absent, not zero.
	bob := employees[1]
	assert.Equal(t, domain.UnassignedBusinessLine, bob.BusinessLine)
	assert.Equal(t, map[string]float64{"2025-01-01": 1234}, bob.Followers)

	// Unparseable cells leave no data point at all.
	wu := employees[2]
	assert.Equal(t, "Ann Wu", wu.DisplayName())
	assert.Empty(t, wu.Followers)
}

func TestNormalizeEmployees_DropsNamelessRows(t *testing.T) {
	headers := rosterHeaders(t)

	sheet := &domain.RawSheet{
		Headers: []string{"First name", "Last name", "Status", "Business line", "January", "February"},
		Rows:    [][]string{{"", "", "Active", "Tech", "100", "120"}},
	}

	assert.Empty(t, NormalizeEmployees(sheet, headers))
}

func TestNormalizeEmployees_DropsInactiveRows(t *testing.T) {
	headers := rosterHeaders(t)

	sheet := &domain.RawSheet{
		Headers: []string{"First name", "Last name", "Status", "Business line", "January", "February"},
		Rows:    [][]string{{"Eve", "Cho", "Inactive", "Tech", "100", "120"}},
	}

	assert.Empty(t, NormalizeEmployees(sheet, headers))
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"120", 120, true},
		{" 1,234 ", 1234, true},
		{"0", 0, true},
		{"12.5", 12.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseCount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
