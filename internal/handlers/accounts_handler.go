package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

// AccountsHandler serve tanto contas a receber quanto contas a pagar; o
// kind decide a coleção e o nome da entidade nos eventos de auditoria.
type AccountsHandler struct {
	store  *store.Store
	audit  *audit.Dispatcher
	kind   store.AccountKind
	entity string
}

func NewReceivablesHandler(st *store.Store, ad *audit.Dispatcher) *AccountsHandler {
	return &AccountsHandler{store: st, audit: ad, kind: store.KindReceivable, entity: "account_receivable"}
}

func NewPayablesHandler(st *store.Store, ad *audit.Dispatcher) *AccountsHandler {
	return &AccountsHandler{store: st, audit: ad, kind: store.KindPayable, entity: "account_payable"}
}

// --------- Requests ---------

type CreateAccountRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        *models.Decimal `json:"amount" binding:"required,min=0"`
	DueDate       string          `json:"due_date" binding:"required,datetime=2006-01-02"`
	PaymentDate   string          `json:"payment_date" binding:"omitempty,datetime=2006-01-02"`
	Status        string          `json:"status" binding:"omitempty,oneof=pendente pago atrasado cancelado"`
	PaymentMethod string          `json:"payment_method"`
	Category      string          `json:"category"`
	Observations  string          `json:"observations"`
}

type UpdateAccountRequest struct {
	Description   *string         `json:"description,omitempty"`
	Amount        *models.Decimal `json:"amount,omitempty" binding:"omitempty,min=0"`
	DueDate       *string         `json:"due_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	PaymentDate   *string         `json:"payment_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status        *string         `json:"status,omitempty" binding:"omitempty,oneof=pendente pago atrasado cancelado"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Observations  *string         `json:"observations,omitempty"`
}

// --------- Handlers ---------

func (h *AccountsHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.ListAccounts(h.kind))
}

func (h *AccountsHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	acc := h.store.CreateAccount(h.kind, store.AccountInput{
		Description:   req.Description,
		Amount:        *req.Amount,
		DueDate:       req.DueDate,
		PaymentDate:   req.PaymentDate,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
		Observations:  req.Observations,
	})

	h.audit.Dispatch(audit.Event{Action: "account_created", Entity: h.entity, EntityID: acc.ID})

	httpresp.Created(c, "account", acc, "Conta cadastrada com sucesso")
}

func (h *AccountsHandler) Get(c *gin.Context) {
	acc, ok := h.store.GetAccount(h.kind, c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Conta não encontrada")
		return
	}
	httpresp.OK(c, acc)
}

func (h *AccountsHandler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	acc, err := h.store.UpdateAccount(h.kind, c.Param("id"), store.AccountUpdate{
		Description:   req.Description,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		PaymentDate:   req.PaymentDate,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
		Observations:  req.Observations,
	})
	if err != nil {
		if httperr.IsBusiness(err, "account_not_found") {
			httperr.NotFound(c, "Conta não encontrada")
			return
		}
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "account_updated", Entity: h.entity, EntityID: acc.ID})

	httpresp.Updated(c, "account", acc, "Conta atualizada com sucesso")
}

func (h *AccountsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteAccount(h.kind, id) {
		httperr.NotFound(c, "Conta não encontrada")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "account_deleted", Entity: h.entity, EntityID: id})

	httpresp.Deleted(c, "Conta excluída com sucesso")
}
