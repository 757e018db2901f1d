package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
)

type AuditLogsHandler struct {
	log *audit.Log
}

func NewAuditLogsHandler(log *audit.Log) *AuditLogsHandler {
	return &AuditLogsHandler{log: log}
}

// List aceita os filtros ?action=, ?entity= e ?limit= (máximo 200).
func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	httpresp.List(c, h.log.List(action, entity, limit))
}
