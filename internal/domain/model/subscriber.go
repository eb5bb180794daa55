package model

import "time"

// Subscriber — подписчик рассылки.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
