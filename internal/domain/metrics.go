package domain

// Metrics summarises a sparse follower series end to end.
type Metrics struct {
	CurrentFollowers float64 `json:"currentFollowers"`
	AbsoluteGrowth   float64 `json:"absoluteGrowth"`
	GrowthRate       float64 `json:"growthRate"`
	ConsistencyScore float64 `json:"consistencyScore"`
}

// PeriodMetric covers one pair of chronologically adjacent measurements.
// Period is the later date of the pair.
type PeriodMetric struct {
	Label      string  `json:"label"`
	Period     string  `json:"period"`
	Growth     float64 `json:"growth"`
	GrowthRate float64 `json:"growthRate"`
	StartValue float64 `json:"startValue"`
	EndValue   float64 `json:"endValue"`
}
