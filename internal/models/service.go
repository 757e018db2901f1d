package models

import "time"

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    Decimal   `json:"duration"`
	Price       Decimal   `json:"price"`
	Active      Flag      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
