// Package report renders console tables over catalog and ledger snapshots.
// The core exposes plain data; every formatting decision lives here so a
// different renderer can be substituted without touching the service.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"storemgr/domain"
)

var (
	accent = lipgloss.Color("#D97706") // amber
	dim    = lipgloss.Color("#6B7280") // muted gray

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(dim)
	emptyStyle   = lipgloss.NewStyle().Foreground(dim)
)

func writeHeader(b *strings.Builder, title, columns string, width int) {
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(columns))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("-", width)))
	b.WriteString("\n")
}

// Inventory renders the catalog, one row per product in insertion order.
func Inventory(products []domain.Product) string {
	var b strings.Builder
	if len(products) == 0 {
		b.WriteString(titleStyle.Render("--- Inventory Report ---"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("No products in inventory."))
		b.WriteString("\n")
		return b.String()
	}

	writeHeader(&b, "--- Inventory Report ---",
		fmt.Sprintf("%-20s %-10s %-10s %s", "Product Name", "Quantity", "Price", "Description"), 60)
	for _, p := range products {
		fmt.Fprintf(&b, "%-20s %-10d $%-9.2f %s\n", p.Name, p.Quantity, p.Price, p.Description)
	}
	return b.String()
}

// Sales renders the sale ledger in record order.
func Sales(sales []domain.SaleRecord) string {
	var b strings.Builder
	if len(sales) == 0 {
		b.WriteString(titleStyle.Render("--- Sales Report ---"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("No sales recorded."))
		b.WriteString("\n")
		return b.String()
	}

	writeHeader(&b, "--- Sales Report ---",
		fmt.Sprintf("%-20s %-10s %-10s %-10s %s", "Product Name", "Quantity", "Sale Price", "Total Sale", "Profit"), 70)
	for _, s := range sales {
		fmt.Fprintf(&b, "%-20s %-10d $%-9.2f $%-9.2f $%-9.2f\n",
			s.ProductName, s.QuantitySold, s.UnitPrice, s.TotalSale, s.Profit)
	}
	return b.String()
}

// Purchases renders the purchase ledger in record order.
func Purchases(purchases []domain.PurchaseRecord) string {
	var b strings.Builder
	if len(purchases) == 0 {
		b.WriteString(titleStyle.Render("--- Purchase Report ---"))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("No purchases recorded."))
		b.WriteString("\n")
		return b.String()
	}

	writeHeader(&b, "--- Purchase Report ---",
		fmt.Sprintf("%-20s %-10s %-15s %s", "Product Name", "Quantity", "Purchase Price", "Total Cost"), 60)
	for _, p := range purchases {
		fmt.Fprintf(&b, "%-20s %-10d $%-14.2f $%-9.2f\n",
			p.ProductName, p.QuantityPurchased, p.UnitPrice, p.TotalCost)
	}
	return b.String()
}

// Totals renders the three ledger aggregates.
func Totals(purchaseCost, sales, profit float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("--- Totals ---"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-20s $%.2f\n", "Total Purchase Cost", purchaseCost)
	fmt.Fprintf(&b, "%-20s $%.2f\n", "Total Sales", sales)
	fmt.Fprintf(&b, "%-20s $%.2f\n", "Total Profit", profit)
	return b.String()
}
