package models

import "time"

// Account representa tanto contas a receber quanto contas a pagar; o lado é
// definido pela coleção em que o registro vive.
type Account struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      Decimal `json:"amount"`

	DueDate     string `json:"due_date"`     // 2006-01-02
	PaymentDate string `json:"payment_date"` // 2006-01-02, vazio enquanto em aberto

	Status        string `json:"status"` // pendente | pago | atrasado | cancelado
	PaymentMethod string `json:"payment_method"`
	Category      string `json:"category"`
	Observations  string `json:"observations"`

	CreatedAt time.Time `json:"created_at"`
}
