package domain

import "strings"

// UnassignedBusinessLine is the fallback label for rows without a business line.
const UnassignedBusinessLine = "Unassigned"

// Employee is one roster row together with its sparse follower series.
// Absent dates mean "not measured", never zero.
type Employee struct {
	FirstName     string                   `json:"firstName"`
	LastName      string                   `json:"lastName"`
	BusinessLine  string                   `json:"businessLine"`
	Status        string                   `json:"status,omitempty"`
	ProfileLink   string                   `json:"profileLink,omitempty"`
	Followers     map[string]float64       `json:"followers"`
	Metrics       *Metrics                 `json:"metrics,omitempty"`
	PeriodMetrics map[string]*PeriodMetric `json:"periodMetrics,omitempty"`
}

// DisplayName joins first and last name with a single space, trimmed.
func (e *Employee) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}
