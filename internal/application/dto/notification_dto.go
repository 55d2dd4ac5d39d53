package dto

import "time"

// NotificationDTO alerte de stock critique.
type NotificationDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	CodeProduit string    `json:"codeProduit"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationsResponse réponse de GET /api/notifications.
type NotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int               `json:"total"`
}
