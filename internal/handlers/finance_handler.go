package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type FinanceHandler struct {
	store *store.Store
}

func NewFinanceHandler(st *store.Store) *FinanceHandler {
	return &FinanceHandler{store: st}
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	httpresp.OK(c, h.store.FinancialSummary(timezone.Today()))
}
