package domain

// DashboardSummary aggregates the product and contact collections into
// scalar statistics. Totals are zero, never null, when the collections are
// empty.
type DashboardSummary struct {
	TotalProducts int64   `json:"totalProducts"`
	TotalContacts int64   `json:"totalContacts"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProfit   float64 `json:"totalProfit"`
}
