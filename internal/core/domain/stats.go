package domain

// DashboardStats is the flat set of headline counts shown on the dashboard.
type DashboardStats struct {
	TotalClients    int64 `json:"total_clients"`
	ActiveDevices   int64 `json:"active_devices"`
	OpenTickets     int64 `json:"open_tickets"`
	AvailableAssets int64 `json:"available_assets"`
	PendingRequests int64 `json:"pending_requests"`
	ResolvedToday   int64 `json:"resolved_today"`
}

// BucketCount is one row of a grouped breakdown (status, priority, or type).
type BucketCount struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// DetailedStats extends the headline counts with per-dimension breakdowns.
type DetailedStats struct {
	Basic          DashboardStats `json:"basic_stats"`
	DeviceStatus   []BucketCount  `json:"device_status_breakdown"`
	TicketStatus   []BucketCount  `json:"request_status_breakdown"`
	TicketPriority []BucketCount  `json:"request_priority_breakdown"`
	AssetStatus    []BucketCount  `json:"asset_status_breakdown"`
	ClientType     []BucketCount  `json:"client_type_breakdown"`
}
