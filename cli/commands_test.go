package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"storemgr/auth"
	"storemgr/domain"
	"storemgr/inventory"
)

// capture stdout during cobra execution
func captureOutput(f func() error) (string, error) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), err
}

// reset cobra + injected collaborators between tests
func resetCLI() {
	rootCmd.SetArgs(nil)
	svc = nil
	gate = nil
}

func injectTestService(t *testing.T) domain.Service {
	t.Helper()
	svc = inventory.NewService()
	g, err := auth.NewGate(auth.Credential{Username: "tester", Password: "pw", Role: auth.RoleAdmin})
	if err != nil {
		t.Fatalf("test gate setup failed: %v", err)
	}
	gate = g
	return svc
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return captureOutput(func() error {
		rootCmd.SetArgs(args)
		return rootCmd.Execute()
	})
}

func TestAddEditDeleteFlow(t *testing.T) {
	defer resetCLI()
	s := injectTestService(t)

	// ADD
	out, err := run(t, "add",
		"--name", "Laptop",
		"--description", "A high-performance laptop",
		"--price", "1200",
		"--quantity", "10",
	)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Product added successfully.") {
		t.Fatalf("unexpected add output: %q", out)
	}

	// EDIT with only one flag supplied; the others must stay untouched
	out, err = run(t, "edit", "Laptop", "--description", "Updated laptop")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "Product updated successfully.") {
		t.Fatalf("unexpected edit output: %q", out)
	}
	p := s.Products()[0]
	if p.Description != "Updated laptop" {
		t.Fatalf("description not updated: %+v", p)
	}
	if p.Name != "Laptop" || p.Price != 1200.0 || p.Quantity != 10 {
		t.Fatalf("unsupplied fields mutated: %+v", p)
	}

	// DELETE
	out, err = run(t, "delete", "Laptop", "--force")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(out, "Product deleted successfully.") {
		t.Fatalf("unexpected delete output: %q", out)
	}
	if len(s.Products()) != 0 {
		t.Fatalf("product not deleted")
	}
}

func TestListOutputs(t *testing.T) {
	defer resetCLI()
	s := injectTestService(t)
	if err := s.AddProduct("Phone", "A latest smartphone", 800.0, 20); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Phone | 20 | 800.00 | A latest smartphone") {
		t.Fatalf("unexpected list output: %q", out)
	}

	out, err = run(t, "list", "--output", "json")
	if err != nil {
		t.Fatalf("list --output json failed: %v", err)
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(out), &products); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if len(products) != 1 || products[0].Name != "Phone" {
		t.Fatalf("unexpected json products: %+v", products)
	}
}

func TestBuySellAndReports(t *testing.T) {
	defer resetCLI()
	s := injectTestService(t)
	if err := s.AddProduct("Laptop", "desc", 1200.0, 10); err != nil {
		t.Fatalf("setup add failed: %v", err)
	}

	// BUY
	out, err := run(t, "buy", "Laptop", "--quantity", "5", "--price", "950")
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if !strings.Contains(out, "Purchase recorded successfully.") {
		t.Fatalf("unexpected buy output: %q", out)
	}
	if got := s.Products()[0].Quantity; got != 15 {
		t.Fatalf("expected quantity 15, got %d", got)
	}

	// SELL
	out, err = run(t, "sell", "Laptop", "--quantity", "2", "--price", "1200")
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if !strings.Contains(out, "Sale recorded successfully.") {
		t.Fatalf("unexpected sell output: %q", out)
	}

	// REPORTS
	out, err = run(t, "report", "inventory")
	if err != nil || !strings.Contains(out, "Inventory Report") {
		t.Fatalf("inventory report failed: %v\n%s", err, out)
	}
	out, err = run(t, "report", "sales")
	if err != nil || !strings.Contains(out, "Sales Report") {
		t.Fatalf("sales report failed: %v\n%s", err, out)
	}
	out, err = run(t, "report", "purchases")
	if err != nil || !strings.Contains(out, "Purchase Report") {
		t.Fatalf("purchase report failed: %v\n%s", err, out)
	}

	// TOTALS
	out, err = run(t, "totals")
	if err != nil {
		t.Fatalf("totals failed: %v", err)
	}
	for _, want := range []string{"Total Purchase Cost", "4750.00", "Total Sales", "2400.00", "Total Profit", "0.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("totals output missing %q:\n%s", want, out)
		}
	}
}
