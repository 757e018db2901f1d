package models

import "time"

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // consumo | venda | uso

	Quantity    Decimal `json:"quantity"`
	MinQuantity Decimal `json:"min_quantity"`
	Unit        string  `json:"unit"`

	CostPrice Decimal `json:"cost_price"`
	SalePrice Decimal `json:"sale_price"`

	Supplier string `json:"supplier"`
	Barcode  string `json:"barcode"`

	Active    Flag      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
