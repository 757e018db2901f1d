package models

import "time"

// Cliente do estabelecimento, sem login próprio.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	TaxID        string    `json:"tax_id"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
}
