package domain

// DeliveryStats is a snapshot of order counters used by the dashboard.
type DeliveryStats struct {
	DeliveredToday    int `json:"delivered_today"`
	DueToday          int `json:"due_today"`
	DueTomorrow       int `json:"due_tomorrow"`
	NotAvailableToday int `json:"not_available_today"`
	NewOrders         int `json:"new_orders"`
}

type ProductDeliveries struct {
	ProductName string `json:"product"`
	Quantity    int    `json:"quantity"`
}

type DashboardData struct {
	DeliveryStats DeliveryStats `json:"delivery_stats"`
	// DeliveriesThisMonth is indexed by day of month minus one.
	DeliveriesThisMonth []int `json:"deliveries_this_month"`
	// DeliveriesThisYear is indexed by month minus one.
	DeliveriesThisYear []int `json:"deliveries_this_year"`
	// SalesPerMonth holds sales in cents, one row per year, latest year first.
	SalesPerMonth     [][]int64           `json:"sales_per_month"`
	ProductDeliveries []ProductDeliveries `json:"product_deliveries"`
}

// OrdersCountData is one counter tile of the dashboard.
type OrdersCountData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Count    int    `json:"count"`
	// Overall is set only for tiles drawn with a progress chart.
	Overall *int `json:"overall,omitempty"`
}
