package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

type AppointmentHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewAppointmentHandler(st *store.Store, ad *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{store: st, audit: ad}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string `json:"time" binding:"required,datetime=15:04"`
	Status       string `json:"status" binding:"omitempty,oneof=pendente confirmado cancelado concluido"`
	Observations string `json:"observations"`
}

type UpdateAppointmentRequest struct {
	ClientID     *string `json:"client_id,omitempty"`
	ServiceID    *string `json:"service_id,omitempty"`
	Date         *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time         *string `json:"time,omitempty" binding:"omitempty,datetime=15:04"`
	Status       *string `json:"status,omitempty" binding:"omitempty,oneof=pendente confirmado cancelado concluido"`
	Observations *string `json:"observations,omitempty"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	httpresp.List(c, h.store.ListAppointments())
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	httpresp.List(c, h.store.ListAppointmentsByDate(c.Param("date")))
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	httpresp.List(c, h.store.ListAppointmentsByClient(c.Param("clientId")))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	ap, err := h.store.CreateAppointment(store.AppointmentInput{
		ClientID:     req.ClientID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		Observations: req.Observations,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "appointment_created", Entity: "appointment", EntityID: ap.ID})

	httpresp.Created(c, "appointment", ap, "Agendamento criado com sucesso")
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, ok := h.store.GetAppointment(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	ap, err := h.store.UpdateAppointment(c.Param("id"), store.AppointmentUpdate{
		ClientID:     req.ClientID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Status:       req.Status,
		Observations: req.Observations,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "appointment_updated", Entity: "appointment", EntityID: ap.ID})

	httpresp.Updated(c, "appointment", ap, "Agendamento atualizado com sucesso")
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteAppointment(id) {
		httperr.NotFound(c, "Agendamento não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "appointment_deleted", Entity: "appointment", EntityID: id})

	httpresp.Deleted(c, "Agendamento excluído com sucesso")
}

func writeAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c)
		return
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, "Agendamento não encontrado")
	case "client_not_found":
		httperr.BadRequest(c, "Cliente não encontrado")
	case "service_not_found":
		httperr.BadRequest(c, "Serviço não encontrado")
	case "service_inactive":
		httperr.BadRequest(c, "Serviço não está ativo")
	case "time_conflict":
		httperr.BadRequest(c, "Já existe um agendamento neste horário")
	default:
		httperr.Internal(c)
	}
}
