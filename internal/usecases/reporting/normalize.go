package reporting

import (
	"math"
	"strconv"
	"strings"

	"github.com/socialpulse/follower-report-api/internal/domain"
)

// NormalizeEmployees converts raw rows into employee records using the
// classified headers. Rows without any name are dropped, as are rows whose
// non-empty status is not "active" (an empty status counts as active).
func NormalizeEmployees(sheet *domain.RawSheet, headers ClassifiedHeaders) []*domain.Employee {
	employees := make([]*domain.Employee, 0, len(sheet.Rows))

	for _, record := range sheet.Records() {
		firstName := strings.TrimSpace(valueOf(record, headers.FirstName))
		lastName := strings.TrimSpace(valueOf(record, headers.LastName))
		if firstName == "" && lastName == "" {
			continue
		}

		status := strings.TrimSpace(valueOf(record, headers.Status))
		if status != "" && !strings.EqualFold(status, "active") {
			continue
		}

		businessLine := strings.TrimSpace(valueOf(record, headers.BusinessLine))
		if businessLine == "" {
			businessLine = domain.UnassignedBusinessLine
		}

		followers := make(map[string]float64, len(headers.DateColumns))
		for _, column := range headers.DateColumns {
			if value, ok := parseCount(record[column.Header]); ok {
				followers[column.Date] = value
			}
		}

		employees = append(employees, &domain.Employee{
			FirstName:    firstName,
			LastName:     lastName,
			BusinessLine: businessLine,
			Status:       status,
			ProfileLink:  strings.TrimSpace(valueOf(record, headers.ProfileLink)),
			Followers:    followers,
		})
	}

	return employees
}

func valueOf(record map[string]string, header string) string {
	if header == "" {
		return ""
	}
	return record[header]
}

// parseCount coerces a raw cell into a follower count. Empty, missing and
// non-finite cells mean "no data point", which must stay distinct from a
// measured zero for earliest/latest selection.
func parseCount(raw string) (float64, bool) {
	cell := strings.TrimSpace(raw)
	if cell == "" {
		return 0, false
	}

	cell = strings.ReplaceAll(cell, ",", "")
	cell = strings.ReplaceAll(cell, " ", "")

	value, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
