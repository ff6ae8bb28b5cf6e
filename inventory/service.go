// Package inventory implements the store's catalog and transaction ledgers.
package inventory

import (
	"sync"

	"github.com/google/uuid"

	"storemgr/domain"
)

// autoProvisionDescription is assigned to products created implicitly when a
// purchase references an unknown product name.
const autoProvisionDescription = "Newly purchased product"

// Service owns the product catalog plus the purchase and sale ledgers and
// keeps them mutually consistent. The catalog preserves insertion order; the
// ledgers are append-only. Every operation validates fully before touching
// any state, so a failed call never leaves a partial mutation behind, and
// holds one mutex across the whole validate-then-mutate sequence.
type Service struct {
	mu        sync.Mutex
	products  []domain.Product
	purchases []domain.PurchaseRecord
	sales     []domain.SaleRecord
}

// NewService constructs an empty Service.
func NewService() *Service {
	return &Service{}
}

// compile-time assertion that Service implements domain.Service
var _ domain.Service = (*Service)(nil)

// indexOf returns the index of the first product whose name matches exactly,
// or -1. Callers must hold s.mu.
func (s *Service) indexOf(name string) int {
	for i := range s.products {
		if s.products[i].Name == name {
			return i
		}
	}
	return -1
}

// AddProduct appends a new product to the catalog. Price and quantity must be
// positive. A name that already exists is appended as a second entry, not
// merged.
func (s *Service) AddProduct(name, description string, price float64, quantity int) error {
	if price <= 0 {
		return domain.NewInvalidPriceError(price)
	}
	if quantity <= 0 {
		return domain.NewInvalidQuantityError(quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, domain.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
	})
	return nil
}

// EditProduct applies the present fields of update to the first product whose
// name matches exactly. Present fields overwrite unconditionally; unlike
// AddProduct there is no positivity check on a new price or quantity. Returns
// ProductNotFoundError without mutating anything when no product matches.
func (s *Service) EditProduct(name string, update domain.ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return domain.NewProductNotFoundError(name)
	}

	p := &s.products[i]
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Quantity != nil {
		p.Quantity = *update.Quantity
	}
	return nil
}

// DeleteProduct removes the first product whose name matches exactly. Ledger
// records referencing the name are kept; they are historical log entries, not
// live joins.
func (s *Service) DeleteProduct(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return domain.NewProductNotFoundError(name)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// Products returns a snapshot of the catalog in insertion order.
func (s *Service) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// RecordPurchase adds purchased stock to the catalog and appends a
// PurchaseRecord. An existing product gets its quantity incremented and its
// price left untouched; an unknown product name is auto-provisioned as a new
// catalog entry priced at the purchase price. There is no stock ceiling.
func (s *Service) RecordPurchase(productName string, quantity int, unitPrice float64) error {
	if quantity <= 0 || unitPrice <= 0 {
		return domain.NewInvalidInputError("quantity purchased and purchase price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productName); i >= 0 {
		s.products[i].Quantity += quantity
	} else {
		s.products = append(s.products, domain.Product{
			Name:        productName,
			Description: autoProvisionDescription,
			Price:       unitPrice,
			Quantity:    quantity,
		})
	}

	s.purchases = append(s.purchases, domain.PurchaseRecord{
		ID:                uuid.NewString(),
		ProductName:       productName,
		QuantityPurchased: quantity,
		UnitPrice:         unitPrice,
		TotalCost:         unitPrice * float64(quantity),
	})
	return nil
}

// RecordSale removes sold stock from the catalog and appends a SaleRecord.
// Selling the exact remaining stock is allowed; one unit more fails with
// OutOfStockError. Profit uses the product's current catalog price as the
// cost basis, not the historical purchase price.
func (s *Service) RecordSale(productName string, quantity int, unitPrice float64) error {
	if quantity <= 0 || unitPrice <= 0 {
		return domain.NewInvalidInputError("quantity sold and sale price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productName)
	if i < 0 {
		return domain.NewProductNotFoundError(productName)
	}
	p := &s.products[i]
	if p.Quantity < quantity {
		return domain.NewOutOfStockError(productName)
	}
	p.Quantity -= quantity

	totalSale := unitPrice * float64(quantity)
	s.sales = append(s.sales, domain.SaleRecord{
		ID:           uuid.NewString(),
		ProductName:  productName,
		QuantitySold: quantity,
		UnitPrice:    unitPrice,
		TotalSale:    totalSale,
		Profit:       totalSale - p.Price*float64(quantity),
	})
	return nil
}

// Purchases returns a snapshot of the purchase ledger in record order.
func (s *Service) Purchases() []domain.PurchaseRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PurchaseRecord, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// Sales returns a snapshot of the sale ledger in record order.
func (s *Service) Sales() []domain.SaleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.SaleRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

// TotalPurchaseCost sums TotalCost over all purchase records. Recomputed on
// every call; the ledgers stay small enough that a running total is not worth
// its bookkeeping.
func (s *Service) TotalPurchaseCost() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, r := range s.purchases {
		total += r.TotalCost
	}
	return total
}

// TotalSales sums TotalSale over all sale records.
func (s *Service) TotalSales() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, r := range s.sales {
		total += r.TotalSale
	}
	return total
}

// TotalProfit sums Profit over all sale records.
func (s *Service) TotalProfit() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, r := range s.sales {
		total += r.Profit
	}
	return total
}
