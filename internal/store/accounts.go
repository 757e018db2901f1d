package store

import (
	"github.com/AveiroDigital/studio-agenda/internal/dto"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

// AccountKind escolhe entre as duas coleções financeiras, que compartilham
// o mesmo formato de registro.
type AccountKind int

const (
	KindReceivable AccountKind = iota
	KindPayable
)

const (
	AccountStatusPending   = "pendente"
	AccountStatusPaid      = "pago"
	AccountStatusOverdue   = "atrasado"
	AccountStatusCancelled = "cancelado"
)

type AccountInput struct {
	Description   string
	Amount        models.Decimal
	DueDate       string
	PaymentDate   string
	Status        string // vazio = pendente
	PaymentMethod string
	Category      string
	Observations  string
}

type AccountUpdate struct {
	Description   *string
	Amount        *models.Decimal
	DueDate       *string
	PaymentDate   *string
	Status        *string
	PaymentMethod *string
	Category      *string
	Observations  *string
}

func (s *Store) accounts(kind AccountKind) *collection[models.Account] {
	if kind == KindPayable {
		return s.payables
	}
	return s.receivables
}

func (s *Store) CreateAccount(kind AccountKind, in AccountInput) models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = AccountStatusPending
	}

	acc := models.Account{
		ID:            newID(),
		Description:   in.Description,
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		PaymentDate:   in.PaymentDate,
		Status:        status,
		PaymentMethod: in.PaymentMethod,
		Category:      in.Category,
		Observations:  in.Observations,
		CreatedAt:     timezone.Now(),
	}
	s.accounts(kind).put(acc.ID, acc)
	return acc
}

func (s *Store) GetAccount(kind AccountKind, id string) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts(kind).get(id)
}

func (s *Store) ListAccounts(kind AccountKind) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts(kind).all()
}

func (s *Store) UpdateAccount(kind AccountKind, id string, up AccountUpdate) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts(kind).get(id)
	if !ok {
		return models.Account{}, httperr.ErrBusiness("account_not_found")
	}

	if up.Description != nil {
		acc.Description = *up.Description
	}
	if up.Amount != nil {
		acc.Amount = *up.Amount
	}
	if up.DueDate != nil {
		acc.DueDate = *up.DueDate
	}
	if up.PaymentDate != nil {
		acc.PaymentDate = *up.PaymentDate
	}
	if up.Status != nil {
		acc.Status = *up.Status
	}
	if up.PaymentMethod != nil {
		acc.PaymentMethod = *up.PaymentMethod
	}
	if up.Category != nil {
		acc.Category = *up.Category
	}
	if up.Observations != nil {
		acc.Observations = *up.Observations
	}

	s.accounts(kind).put(acc.ID, acc)
	return acc, nil
}

func (s *Store) DeleteAccount(kind AccountKind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accounts(kind).remove(id)
}

// FinancialSummary totaliza os dois lados na data de referência (formato
// 2006-01-02). Uma conta pendente vencida antes de today conta como
// atrasada mesmo sem o status ter sido atualizado.
func (s *Store) FinancialSummary(today string) dto.FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum dto.FinancialSummary

	for _, acc := range s.receivables.all() {
		switch {
		case acc.Status == AccountStatusPaid:
			sum.ReceivableReceived += acc.Amount
		case acc.Status == AccountStatusOverdue:
			sum.ReceivableOverdue += acc.Amount
		case acc.Status == AccountStatusPending && acc.DueDate != "" && acc.DueDate < today:
			sum.ReceivableOverdue += acc.Amount
		case acc.Status == AccountStatusPending:
			sum.ReceivablePending += acc.Amount
		}
	}

	for _, acc := range s.payables.all() {
		switch {
		case acc.Status == AccountStatusPaid:
			sum.PayablePaid += acc.Amount
		case acc.Status == AccountStatusOverdue:
			sum.PayableOverdue += acc.Amount
		case acc.Status == AccountStatusPending && acc.DueDate != "" && acc.DueDate < today:
			sum.PayableOverdue += acc.Amount
		case acc.Status == AccountStatusPending:
			sum.PayablePending += acc.Amount
		}
	}

	sum.Balance = sum.ReceivableReceived - sum.PayablePaid
	return sum
}
