package stats

import "time"

// TypeDistributionRow is one group of the count-by-type statistic.
// Percentage is a 2-decimal string ("42.86"); when there are no reports at
// all, every percentage is "0.00" rather than the undefined 0/0.
type TypeDistributionRow struct {
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
	Count       int64  `json:"count"`
	Percentage  string `json:"percentage"`
}

// AverageResponse is the mean response time over resolved reports.
// Value is minutes rounded to 2 decimals; 0 when nothing is resolved yet.
type AverageResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// DetailedReport is one resolved report with its response-time breakdown.
// ResolvedAt is the report's updated_at; ResponseTime is minutes between
// creation and resolution, rendered with 2 decimals.
type DetailedReport struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	ResolvedAt   time.Time `json:"resolvedAt"`
	ResponseTime string    `json:"responseTime"`
}

// Summary composes the aggregate statistics into one payload.
type Summary struct {
	TotalReports        int64                 `json:"totalReports"`
	CountByType         []TypeDistributionRow `json:"countByType"`
	AverageResponseTime AverageResponse       `json:"averageResponseTime"`
	DetailedReports     []DetailedReport      `json:"detailedReports"`
}

type distributionResponse struct {
	Success bool                  `json:"success"`
	Data    []TypeDistributionRow `json:"data"`
}

type responseTimeResponse struct {
	Success             bool    `json:"success"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	Unit                string  `json:"unit"`
}

type summaryResponse struct {
	Success bool    `json:"success"`
	Summary Summary `json:"summary"`
}
