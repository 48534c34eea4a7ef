package response_models

type DashboardResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalTrips      int64 `json:"total_trips"`
	TotalExperts    int64 `json:"total_experts"`
	TotalBookings   int64 `json:"total_bookings"`
	PendingBookings int64 `json:"pending_bookings"`
}
