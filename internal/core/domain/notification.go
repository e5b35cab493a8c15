package domain

import "time"

// NotificationAudience distinguishes user-facing from admin-facing notices.
type NotificationAudience string

const (
	NotifyUser  NotificationAudience = "user"
	NotifyAdmin NotificationAudience = "admin"
)

// Notification is a message delivered to one user's inbox.
type Notification struct {
	ID        string               `json:"id" bson:"_id,omitempty"`
	UserID    string               `json:"user_id" bson:"user_id"`
	Title     string               `json:"title" bson:"title"`
	Message   string               `json:"message" bson:"message"`
	Read      bool                 `json:"is_read" bson:"is_read"`
	Audience  NotificationAudience `json:"type" bson:"type"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}
