// Package domain defines core business types and interfaces for the store
// management system.
package domain

// Product is a catalog entry, keyed by exact name. The catalog does not
// reject duplicate names: adding a name that already exists appends a second
// entry rather than merging.
type Product struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductUpdate carries the optional fields of an edit. A nil field is left
// untouched; a present field overwrites unconditionally, without the
// positivity checks applied at creation time.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Quantity == nil
}

// PurchaseRecord is an immutable ledger entry for one stock purchase. It
// references the product by name only; deleting the product later does not
// invalidate the record.
type PurchaseRecord struct {
	ID                string  `json:"id"`
	ProductName       string  `json:"product_name"`
	QuantityPurchased int     `json:"quantity_purchased"`
	UnitPrice         float64 `json:"unit_price"`
	TotalCost         float64 `json:"total_cost"`
}

// SaleRecord is an immutable ledger entry for one sale. Profit is computed
// against the product's catalog price at the time of sale, not the historical
// purchase price.
type SaleRecord struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	UnitPrice    float64 `json:"unit_price"`
	TotalSale    float64 `json:"total_sale"`
	Profit       float64 `json:"profit"`
}

// CatalogManager maintains the live product catalog.
type CatalogManager interface {
	AddProduct(name, description string, price float64, quantity int) error
	EditProduct(name string, update ProductUpdate) error
	DeleteProduct(name string) error
	Products() []Product
}

// PurchaseRecorder records stock purchases against the catalog.
type PurchaseRecorder interface {
	RecordPurchase(productName string, quantity int, unitPrice float64) error
	TotalPurchaseCost() float64
}

// SaleRecorder records sales against the catalog.
type SaleRecorder interface {
	RecordSale(productName string, quantity int, unitPrice float64) error
	TotalSales() float64
	TotalProfit() float64
}

// LedgerReader exposes read-only snapshots of the purchase and sale ledgers.
type LedgerReader interface {
	Purchases() []PurchaseRecord
	Sales() []SaleRecord
}

// Service is the full store-management surface: catalog maintenance, purchase
// and sale recording, and ledger access over one shared state.
type Service interface {
	CatalogManager
	PurchaseRecorder
	SaleRecorder
	LedgerReader
}
