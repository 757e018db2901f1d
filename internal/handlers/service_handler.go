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

type ServiceHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(st *store.Store, ad *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: st, audit: ad}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Duration    *models.Decimal `json:"duration" binding:"required,min=0"`
	Price       *models.Decimal `json:"price" binding:"required,min=0"`
	Active      *models.Flag    `json:"active,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Duration    *models.Decimal `json:"duration,omitempty" binding:"omitempty,min=0"`
	Price       *models.Decimal `json:"price,omitempty" binding:"omitempty,min=0"`
	Active      *models.Flag    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.ListServices())
}

func (h *ServiceHandler) ListActive(c *gin.Context) {
	httpresp.List(c, h.store.ListActiveServices())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	svc := h.store.CreateService(store.ServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Duration:    *req.Duration,
		Price:       *req.Price,
		Active:      req.Active,
	})

	h.audit.Dispatch(audit.Event{Action: "service_created", Entity: "service", EntityID: svc.ID})

	httpresp.Created(c, "service", svc, "Serviço cadastrado com sucesso")
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.store.GetService(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	svc, err := h.store.UpdateService(c.Param("id"), store.ServiceUpdate{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "Serviço não encontrado")
			return
		}
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "service_updated", Entity: "service", EntityID: svc.ID})

	httpresp.Updated(c, "service", svc, "Serviço atualizado com sucesso")
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteService(id) {
		httperr.NotFound(c, "Serviço não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "service_deleted", Entity: "service", EntityID: id})

	httpresp.Deleted(c, "Serviço excluído com sucesso")
}
