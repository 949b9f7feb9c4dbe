package domain

// BusinessLine is one business line from the totals sheet: its own sparse
// follower series plus the number of roster employees matched to it.
type BusinessLine struct {
	Name          string                   `json:"name"`
	Followers     map[string]float64       `json:"followers"`
	EmployeeCount int                      `json:"employeeCount"`
	Metrics       *Metrics                 `json:"metrics,omitempty"`
	PeriodMetrics map[string]*PeriodMetric `json:"periodMetrics,omitempty"`
}
