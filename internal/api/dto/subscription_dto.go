package dto

import "time"

// SubscribeRequest is the subscription form. Both urlencoded forms and JSON are accepted.
type SubscribeRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// SubscribeResponse acknowledges a pending subscription.
type SubscribeResponse struct {
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
