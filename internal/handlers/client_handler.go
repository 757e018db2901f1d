package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

type ClientHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewClientHandler(st *store.Store, ad *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{store: st, audit: ad}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Address      string `json:"address"`
	TaxID        string `json:"tax_id"`
	Observations string `json:"observations"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email"`
	Address      *string `json:"address,omitempty"`
	TaxID        *string `json:"tax_id,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.ListClients())
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	client, err := h.store.CreateClient(store.ClientInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		TaxID:        req.TaxID,
		Observations: req.Observations,
	})
	if err != nil {
		if httperr.IsBusiness(err, "email_in_use") {
			httperr.BadRequest(c, "E-mail já cadastrado no sistema")
			return
		}
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "client_created", Entity: "client", EntityID: client.ID})

	httpresp.Created(c, "client", client, "Cliente cadastrado com sucesso")
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, ok := h.store.GetClient(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}
	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	client, err := h.store.UpdateClient(c.Param("id"), store.ClientUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		TaxID:        req.TaxID,
		Observations: req.Observations,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "Cliente não encontrado")
		case httperr.IsBusiness(err, "email_in_use"):
			httperr.BadRequest(c, "E-mail já cadastrado no sistema")
		default:
			httperr.Internal(c)
		}
		return
	}

	h.audit.Dispatch(audit.Event{Action: "client_updated", Entity: "client", EntityID: client.ID})

	httpresp.Updated(c, "client", client, "Cliente atualizado com sucesso")
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteClient(id) {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "client_deleted", Entity: "client", EntityID: id})

	httpresp.Deleted(c, "Cliente excluído com sucesso")
}
