package models

import "time"

type Appointment struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	ServiceID string `json:"service_id"`

	Date string `json:"date"` // 2006-01-02
	Time string `json:"time"` // 15:04

	Status       string    `json:"status"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}
