package domain

// StatsRequest selects the recency window for the active-tourist count.
// Zero means the default window (7 days).
type StatsRequest struct {
	WindowDays int `json:"window_days" validate:"min=0,max=90"`
}

type DashboardStats struct {
	ActiveTourists int64                 `json:"active_tourists"`
	AlertsByStatus map[AlertStatus]int64 `json:"alerts_by_status"`
	WindowDays     int                   `json:"window_days"`
}
