package models

import "github.com/google/uuid"

// LoginRequest carries the credentials submitted to POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateResidentRequest is the admin-submitted payload for creating a
// new resident account. Every field except ImageURL and VehicleDetails
// is required.
type CreateResidentRequest struct {
	Username         string            `json:"username"`
	Password         string            `json:"password"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	RoomNumber       string            `json:"roomNumber"`
	Floor            *int              `json:"floor"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	ImageURL         *string           `json:"imageUrl"`
	VehicleDetails   *VehicleDetails   `json:"vehicleDetails"`
}

// UpdateResidentRequest is the partial-update payload for an existing
// resident. Nil fields are left untouched; username, password, and role
// cannot be changed through this request.
type UpdateResidentRequest struct {
	FullName         *string           `json:"fullName"`
	Email            *string           `json:"email"`
	Phone            *string           `json:"phone"`
	ImageURL         *string           `json:"imageUrl"`
	RoomNumber       *string           `json:"roomNumber"`
	Floor            *int              `json:"floor"`
	EmergencyContact *EmergencyContact `json:"emergencyContact"`
	VehicleDetails   *VehicleDetails   `json:"vehicleDetails"`
	IsActive         *bool             `json:"isActive"`
}

// SendNotificationRequest is the admin-submitted payload for creating a
// notification. Type defaults to "general" when empty.
type SendNotificationRequest struct {
	RecipientID uuid.UUID        `json:"recipientId"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	IsUrgent    bool             `json:"isUrgent"`
}

// RespondRequest records a resident's answer to a notification.
// Response must be exactly "coming" or "not_coming".
type RespondRequest struct {
	Response        ResponseChoice `json:"response"`
	ResponseMessage string         `json:"responseMessage"`
}
