package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType categorises a notification for display purposes.
type NotificationType string

const (
	NotificationParcel      NotificationType = "parcel"
	NotificationVisitor     NotificationType = "visitor"
	NotificationMaintenance NotificationType = "maintenance"
	NotificationGeneral     NotificationType = "general"
	NotificationEmergency   NotificationType = "emergency"
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationParcel, NotificationVisitor, NotificationMaintenance,
		NotificationGeneral, NotificationEmergency:
		return true
	}
	return false
}

// ResponseChoice is the binary answer a resident can record on a
// notification.
type ResponseChoice string

const (
	ResponseComing    ResponseChoice = "coming"
	ResponseNotComing ResponseChoice = "not_coming"
)

// Valid reports whether c is one of the two accepted response values.
func (c ResponseChoice) Valid() bool {
	return c == ResponseComing || c == ResponseNotComing
}

// Label returns the human-readable form used in API confirmation
// messages ("Coming" / "Not Coming").
func (c ResponseChoice) Label() string {
	if c == ResponseComing {
		return "Coming"
	}
	return "Not Coming"
}

// Notification is a one-directional message from an admin to a resident.
//
// Its lifecycle is UNREAD → READ → RESPONDED. Reading is idempotent:
// ReadAt is set on the first mark-read and never overwritten. Responding
// implies reading, so a response on a never-read notification sets both
// sets of fields at once. The invariants below hold for every persisted
// record:
//
//	HasResponse == true  ⇔  Response != nil  ⇔  ResponseAt != nil
//	HasResponse == true  ⇒  IsRead == true
//	IsRead == true       ⇔  ReadAt != nil
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipientId"`
	SenderID    uuid.UUID        `json:"senderId"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`

	IsUrgent bool       `json:"isUrgent"`
	IsRead   bool       `json:"isRead"`
	ReadAt   *time.Time `json:"readAt"`

	HasResponse     bool            `json:"hasResponse"`
	Response        *ResponseChoice `json:"response"`
	ResponseAt      *time.Time      `json:"responseAt"`
	ResponseMessage *string         `json:"responseMessage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Sender and Recipient are identity summaries attached by a
	// read-side join at response-construction time. Never persisted.
	Sender    *UserSummary `json:"sender,omitempty"`
	Recipient *UserSummary `json:"recipient,omitempty"`
}

// TableName returns the name of the database table backing notifications.
func (n Notification) TableName() string {
	return "notifications"
}
