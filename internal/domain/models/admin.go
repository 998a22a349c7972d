package models

// AdminDashboardStats backs the admin dashboard cards.
type AdminDashboardStats struct {
	TotalRevenue     int64 `json:"totalRevenue"` // platform commission, whole reais
	NewUsers         int   `json:"newUsers"`
	PendingApprovals int   `json:"pendingApprovals"`
	ActiveBookings   int   `json:"activeBookings"`
}

// MonthlyRevenue is one point of the admin revenue chart.
type MonthlyRevenue struct {
	Month   string `json:"month"` // YYYY-MM
	Revenue int64  `json:"revenue"`
}
