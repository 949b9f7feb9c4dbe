package reporting

import (
	"strings"
	"time"

	"github.com/socialpulse/follower-report-api/internal/config"
	"github.com/socialpulse/follower-report-api/internal/domain"
)

// Keywords used to tag totals-sheet rows with their business-line section.
var businessLineKeywords = []string{
	"Technology",
	"Product",
	"Marketing",
	"Sales",
	"Operations",
	"Design",
	"People",
	"Finance",
}

// ParseBusinessLines scans the totals sheet row by row. Rows carry the most
// recently seen business-line keyword; a row whose second column reads
// "total" holds that line's monthly series, starting at the configured
// column offset and month sequence. Duplicate totals rows for a line are
// ignored (first wins); lines without a single data point are excluded.
func ParseBusinessLines(sheet *domain.RawSheet, report config.Report) []*domain.BusinessLine {
	lines := make([]*domain.BusinessLine, 0)
	seen := make(map[string]bool)

	current := ""
	for _, row := range sheet.AllRows() {
		if keyword := matchKeyword(row); keyword != "" {
			current = keyword
		}

		if current == "" || seen[current] {
			continue
		}
		if len(row) < 2 || !strings.EqualFold(strings.TrimSpace(row[1]), "total") {
			continue
		}

		series := totalsSeries(row, report)
		if len(series) == 0 {
			continue
		}

		seen[current] = true
		lines = append(lines, &domain.BusinessLine{
			Name:      current,
			Followers: series,
		})
	}

	return lines
}

// matchKeyword returns the first keyword found in any cell of the row,
// case-insensitively, in keyword-list order.
func matchKeyword(row []string) string {
	for _, keyword := range businessLineKeywords {
		for _, cell := range row {
			if cell != "" && containsFold(cell, keyword) {
				return keyword
			}
		}
	}
	return ""
}

// totalsSeries reads the numeric tail of a totals row into a sparse series.
// Cell i maps to the i-th month after the configured start month.
func totalsSeries(row []string, report config.Report) map[string]float64 {
	series := make(map[string]float64)

	start := time.Date(report.TotalsStartYear, time.Month(report.TotalsStartMonth), 1, 0, 0, 0, 0, time.UTC)
	offset := report.TotalsColumnOffset
	if offset > len(row) {
		offset = len(row)
	}

	for i, cell := range row[offset:] {
		if value, ok := parseCount(cell); ok {
			series[start.AddDate(0, i, 0).Format(time.DateOnly)] = value
		}
	}

	return series
}

// CountEmployees matches roster employees to a business line by bidirectional
// case-insensitive substring containment. Deliberately loose to tolerate
// labeling drift between the two sheets; overlapping names ("Product" vs
// "Product Marketing") can miscount.
func CountEmployees(line string, employees []*domain.Employee) int {
	count := 0
	for _, employee := range employees {
		if containsFold(employee.BusinessLine, line) || containsFold(line, employee.BusinessLine) {
			count++
		}
	}
	return count
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
