package apiclient

// The client keeps its own lightweight DTOs instead of reusing the
// server's models: the login envelope carries a role-dependent identity
// object that only the server can decode into a concrete principal.

// LoginResult is the decoded login envelope.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// User is the identity block of the login envelope.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Resident is one entry of the admin residents listing.
type Resident struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	RoomNumber string `json:"roomNumber"`
	Floor      int    `json:"floor"`
	IsActive   bool   `json:"isActive"`
}

type residentsListResult struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Residents []Resident `json:"residents"`
}

// SendNotificationParams is the request body of the send operation.
type SendNotificationParams struct {
	RecipientID string `json:"recipientId"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	IsUrgent    bool   `json:"isUrgent"`
}

// Notification is one notification as seen over the wire.
type Notification struct {
	ID          string  `json:"id"`
	RecipientID string  `json:"recipientId"`
	SenderID    string  `json:"senderId"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Message     string  `json:"message"`
	IsUrgent    bool    `json:"isUrgent"`
	IsRead      bool    `json:"isRead"`
	HasResponse bool    `json:"hasResponse"`
	Response    *string `json:"response"`
}

type notificationResult struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	Notification Notification `json:"notification"`
}

// Pagination is the pagination block of the listing responses.
type Pagination struct {
	CurrentPage        int  `json:"currentPage"`
	TotalPages         int  `json:"totalPages"`
	TotalNotifications int  `json:"totalNotifications"`
	UnreadCount        *int `json:"unreadCount"`
}

// NotificationsPage is one decoded page of a notifications listing.
type NotificationsPage struct {
	Success       bool           `json:"success"`
	Notifications []Notification `json:"notifications"`
	Pagination    Pagination     `json:"pagination"`
}
