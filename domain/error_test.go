package domain

import (
	"errors"
	"testing"
)

func TestProductNotFoundError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewProductNotFoundError("Laptop")
		expected := "product not found: name=Laptop"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewProductNotFoundError("Laptop")
		target := &ProductNotFoundError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect ProductNotFoundError")
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewProductNotFoundError("Phone")
		var pnf *ProductNotFoundError
		if !errors.As(err, &pnf) {
			t.Fatal("errors.As should convert to ProductNotFoundError")
		}
		if pnf.Name != "Phone" {
			t.Errorf("expected Name Phone, got %s", pnf.Name)
		}
	})

	t.Run("IsProductNotFoundError helper", func(t *testing.T) {
		err := NewProductNotFoundError("Tablet")
		if !IsProductNotFoundError(err) {
			t.Error("IsProductNotFoundError should return true")
		}
	})
}

func TestInvalidQuantityError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidQuantityError(0)
		expected := "invalid quantity: 0"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidQuantityError(-3)
		target := &InvalidQuantityError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidQuantityError")
		}
	})

	t.Run("IsInvalidQuantityError helper", func(t *testing.T) {
		if !IsInvalidQuantityError(NewInvalidQuantityError(0)) {
			t.Error("IsInvalidQuantityError should return true")
		}
		if IsInvalidQuantityError(NewInvalidPriceError(0)) {
			t.Error("IsInvalidQuantityError should not match InvalidPriceError")
		}
	})
}

func TestInvalidPriceError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidPriceError(0.0)
		expected := "invalid price: 0"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.As conversion", func(t *testing.T) {
		err := NewInvalidPriceError(-10.5)
		var ipe *InvalidPriceError
		if !errors.As(err, &ipe) {
			t.Fatal("errors.As should convert to InvalidPriceError")
		}
		if ipe.Price != -10.5 {
			t.Errorf("expected Price -10.5, got %v", ipe.Price)
		}
	})

	t.Run("IsInvalidPriceError helper", func(t *testing.T) {
		if !IsInvalidPriceError(NewInvalidPriceError(-1)) {
			t.Error("IsInvalidPriceError should return true")
		}
	})
}

func TestOutOfStockError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewOutOfStockError("Smartphone")
		expected := "out of stock: name=Smartphone"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("IsOutOfStockError helper", func(t *testing.T) {
		if !IsOutOfStockError(NewOutOfStockError("Smartphone")) {
			t.Error("IsOutOfStockError should return true")
		}
		if IsOutOfStockError(NewProductNotFoundError("Smartphone")) {
			t.Error("IsOutOfStockError should not match ProductNotFoundError")
		}
	})
}

func TestInvalidInputError(t *testing.T) {
	t.Run("Error message formatting", func(t *testing.T) {
		err := NewInvalidInputError("quantity sold and sale price must be positive")
		expected := "invalid input: quantity sold and sale price must be positive"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	})

	t.Run("errors.Is detection", func(t *testing.T) {
		err := NewInvalidInputError("bad")
		target := &InvalidInputError{}
		if !errors.Is(err, target) {
			t.Error("errors.Is should detect InvalidInputError")
		}
	})

	t.Run("IsInvalidInputError helper", func(t *testing.T) {
		if !IsInvalidInputError(NewInvalidInputError("bad")) {
			t.Error("IsInvalidInputError should return true")
		}
	})
}

func TestErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{
		NewProductNotFoundError("x"),
		NewInvalidQuantityError(0),
		NewInvalidPriceError(0),
		NewOutOfStockError("x"),
		NewInvalidInputError("x"),
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Errorf("error kinds %d and %d should be distinct", i, j)
			}
		}
	}
}
