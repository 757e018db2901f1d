package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AveiroDigital/studio-agenda/internal/audit"
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/httpresp"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/store"
	"github.com/AveiroDigital/studio-agenda/internal/validators"
)

type ProductHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewProductHandler(st *store.Store, ad *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{store: st, audit: ad}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required,oneof=consumo venda uso"`
	Quantity    *models.Decimal `json:"quantity,omitempty" binding:"omitempty,min=0"`
	MinQuantity *models.Decimal `json:"min_quantity,omitempty" binding:"omitempty,min=0"`
	Unit        string          `json:"unit"`
	CostPrice   *models.Decimal `json:"cost_price,omitempty" binding:"omitempty,min=0"`
	SalePrice   *models.Decimal `json:"sale_price,omitempty" binding:"omitempty,min=0"`
	Supplier    string          `json:"supplier"`
	Barcode     string          `json:"barcode"`
	Active      *models.Flag    `json:"active,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty" binding:"omitempty,oneof=consumo venda uso"`
	Quantity    *models.Decimal `json:"quantity,omitempty" binding:"omitempty,min=0"`
	MinQuantity *models.Decimal `json:"min_quantity,omitempty" binding:"omitempty,min=0"`
	Unit        *string         `json:"unit,omitempty"`
	CostPrice   *models.Decimal `json:"cost_price,omitempty" binding:"omitempty,min=0"`
	SalePrice   *models.Decimal `json:"sale_price,omitempty" binding:"omitempty,min=0"`
	Supplier    *string         `json:"supplier,omitempty"`
	Barcode     *string         `json:"barcode,omitempty"`
	Active      *models.Flag    `json:"active,omitempty"`
}

// --------- Handlers ---------

// List aceita os filtros ?category=, ?low_stock=true e ?active=true|false.
func (h *ProductHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	lowStock := strings.TrimSpace(c.Query("low_stock")) == "true"
	activeStr := strings.TrimSpace(c.Query("active"))

	var products []models.Product
	switch {
	case lowStock:
		products = h.store.ListLowStockProducts()
	case category != "":
		products = h.store.ListProductsByCategory(category)
	default:
		products = h.store.ListProducts()
	}

	if activeStr == "true" || activeStr == "false" {
		want := activeStr == "true"
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if bool(p.Active) == want {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	in := store.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    strings.ToLower(req.Category),
		Unit:        req.Unit,
		Supplier:    req.Supplier,
		Barcode:     req.Barcode,
		Active:      req.Active,
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	if req.MinQuantity != nil {
		in.MinQuantity = *req.MinQuantity
	}
	if req.CostPrice != nil {
		in.CostPrice = *req.CostPrice
	}
	if req.SalePrice != nil {
		in.SalePrice = *req.SalePrice
	}

	p := h.store.CreateProduct(in)

	h.audit.Dispatch(audit.Event{Action: "product_created", Entity: "product", EntityID: p.ID})

	httpresp.Created(c, "product", p, "Produto cadastrado com sucesso")
}

func (h *ProductHandler) Get(c *gin.Context) {
	p, ok := h.store.GetProduct(c.Param("id"))
	if !ok {
		httperr.NotFound(c, "Produto não encontrado")
		return
	}
	httpresp.OK(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, validators.FieldErrors(err))
		return
	}

	p, err := h.store.UpdateProduct(c.Param("id"), store.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		CostPrice:   req.CostPrice,
		SalePrice:   req.SalePrice,
		Supplier:    req.Supplier,
		Barcode:     req.Barcode,
		Active:      req.Active,
	})
	if err != nil {
		if httperr.IsBusiness(err, "product_not_found") {
			httperr.NotFound(c, "Produto não encontrado")
			return
		}
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{Action: "product_updated", Entity: "product", EntityID: p.ID})

	httpresp.Updated(c, "product", p, "Produto atualizado com sucesso")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteProduct(id) {
		httperr.NotFound(c, "Produto não encontrado")
		return
	}

	h.audit.Dispatch(audit.Event{Action: "product_deleted", Entity: "product", EntityID: id})

	httpresp.Deleted(c, "Produto excluído com sucesso")
}
