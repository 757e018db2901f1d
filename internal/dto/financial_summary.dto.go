package dto

import "github.com/AveiroDigital/studio-agenda/internal/models"

// FinancialSummary agrega os dois lados do financeiro; entradas canceladas
// ficam de fora de todos os totais.
type FinancialSummary struct {
	ReceivablePending  models.Decimal `json:"receivable_pending"`
	ReceivableReceived models.Decimal `json:"receivable_received"`
	ReceivableOverdue  models.Decimal `json:"receivable_overdue"`

	PayablePending models.Decimal `json:"payable_pending"`
	PayablePaid    models.Decimal `json:"payable_paid"`
	PayableOverdue models.Decimal `json:"payable_overdue"`

	Balance models.Decimal `json:"balance"`
}
