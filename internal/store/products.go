package store

import (
	"github.com/AveiroDigital/studio-agenda/internal/httperr"
	"github.com/AveiroDigital/studio-agenda/internal/models"
	"github.com/AveiroDigital/studio-agenda/internal/timezone"
)

type ProductInput struct {
	Name        string
	Description string
	Category    string
	Quantity    models.Decimal
	MinQuantity models.Decimal
	Unit        string
	CostPrice   models.Decimal
	SalePrice   models.Decimal
	Supplier    string
	Barcode     string
	Active      *models.Flag // nil = ativo
}

type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Quantity    *models.Decimal
	MinQuantity *models.Decimal
	Unit        *string
	CostPrice   *models.Decimal
	SalePrice   *models.Decimal
	Supplier    *string
	Barcode     *string
	Active      *models.Flag
}

func (s *Store) CreateProduct(in ProductInput) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := models.Flag(true)
	if in.Active != nil {
		active = *in.Active
	}

	p := models.Product{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Unit:        in.Unit,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		Supplier:    in.Supplier,
		Barcode:     in.Barcode,
		Active:      active,
		CreatedAt:   timezone.Now(),
	}
	s.products.put(p.ID, p)
	return p
}

func (s *Store) GetProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.get(id)
}

func (s *Store) ListProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.all()
}

func (s *Store) ListProductsByCategory(category string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products.all() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ListLowStockProducts devolve os produtos com quantidade menor ou igual ao
// estoque mínimo.
func (s *Store) ListLowStockProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0)
	for _, p := range s.products.all() {
		if p.Quantity <= p.MinQuantity {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) UpdateProduct(id string, up ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products.get(id)
	if !ok {
		return models.Product{}, httperr.ErrBusiness("product_not_found")
	}

	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Description != nil {
		p.Description = *up.Description
	}
	if up.Category != nil {
		p.Category = *up.Category
	}
	if up.Quantity != nil {
		p.Quantity = *up.Quantity
	}
	if up.MinQuantity != nil {
		p.MinQuantity = *up.MinQuantity
	}
	if up.Unit != nil {
		p.Unit = *up.Unit
	}
	if up.CostPrice != nil {
		p.CostPrice = *up.CostPrice
	}
	if up.SalePrice != nil {
		p.SalePrice = *up.SalePrice
	}
	if up.Supplier != nil {
		p.Supplier = *up.Supplier
	}
	if up.Barcode != nil {
		p.Barcode = *up.Barcode
	}
	if up.Active != nil {
		p.Active = *up.Active
	}

	s.products.put(p.ID, p)
	return p, nil
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.remove(id)
}
