package models

// Every API response uses the same envelope: a success flag, an optional
// human-readable message, and an operation-specific payload at the top
// level. Failures always reduce to ErrorResponse.

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LoginResponse carries the issued session token and the authenticated
// principal's public view.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    Principal `json:"user"`
}

// ProfileResponse returns the acting principal's own profile.
type ProfileResponse struct {
	Success bool      `json:"success"`
	User    Principal `json:"user"`
}

// ResidentResponse wraps a single resident record.
type ResidentResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Resident *Resident `json:"resident"`
}

// ResidentsListResponse is the admin-facing resident listing. The
// entries use the admin view, which includes the retained plaintext
// password.
type ResidentsListResponse struct {
	Success   bool                `json:"success"`
	Count     int                 `json:"count"`
	Residents []ResidentAdminView `json:"residents"`
}

// MessageResponse is the envelope of mutations that return no payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotificationResponse wraps a single notification with its identity
// summaries attached.
type NotificationResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	Notification *Notification `json:"notification"`
}

// Pagination describes one page of a notification listing. UnreadCount
// is present only on the recipient-facing listing.
type Pagination struct {
	CurrentPage        int  `json:"currentPage"`
	TotalPages         int  `json:"totalPages"`
	TotalNotifications int  `json:"totalNotifications"`
	UnreadCount        *int `json:"unreadCount,omitempty"`
}

// NotificationsListResponse is one page of notifications, newest first.
type NotificationsListResponse struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
	Pagination    Pagination     `json:"pagination"`
}

// DashboardStats aggregates read-only projections over the identity
// store for the admin dashboard.
type DashboardStats struct {
	TotalResidents  int             `json:"totalResidents"`
	ActiveResidents int             `json:"activeResidents"`
	FloorStats      []FloorCount    `json:"floorStats"`
	RecentResidents []ResidentBrief `json:"recentResidents"`
}

// DashboardStatsResponse wraps the dashboard aggregation payload.
type DashboardStatsResponse struct {
	Success bool            `json:"success"`
	Stats   *DashboardStats `json:"stats"`
}
