package domain

import "time"

// Winner is the top-ranked entity by growth in one period, among entities
// whose growth in that period is strictly positive.
type Winner struct {
	Period       string        `json:"period"`
	Name         string        `json:"name"`
	BusinessLine string        `json:"businessLine,omitempty"`
	ProfileLink  string        `json:"profileLink,omitempty"`
	Metric       *PeriodMetric `json:"metric"`
}

// MonthlyWinners groups winners by entity kind. Used when the business-line
// aggregation path is enabled; otherwise the report carries a flat winner list.
type MonthlyWinners struct {
	Employees     []*Winner `json:"employees"`
	BusinessLines []*Winner `json:"businessLines"`
}

// Summary carries the report-wide aggregates.
type Summary struct {
	TotalEmployees    int       `json:"totalEmployees"`
	TotalFollowers    float64   `json:"totalFollowers"`
	AverageGrowthRate float64   `json:"averageGrowthRate"`
	TopGrower         *string   `json:"topGrower"`
	GeneratedAt       time.Time `json:"generatedAt"`
}

// Report is the full response payload of the report endpoint.
// MonthlyWinners is either []*Winner or *MonthlyWinners depending on whether
// the business-line path is enabled.
type Report struct {
	Employees      []*Employee     `json:"employees"`
	BusinessLines  []*BusinessLine `json:"businessLines,omitempty"`
	MonthlyWinners any             `json:"monthlyWinners"`
	Summary        *Summary        `json:"summary"`
}
