// Package domain defines error types for the store management system.
package domain

import (
	"errors"
	"fmt"
)

// ProductNotFoundError is returned when no product with the given name exists
type ProductNotFoundError struct {
	Name string
}

// Error implements the error interface for ProductNotFoundError
func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

// InvalidQuantityError is returned when a product quantity fails validation
type InvalidQuantityError struct {
	Quantity int
}

// Error implements the error interface for InvalidQuantityError
func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity: %d", e.Quantity)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

// InvalidPriceError is returned when a product price fails validation
type InvalidPriceError struct {
	Price float64
}

// Error implements the error interface for InvalidPriceError
func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: %v", e.Price)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidPriceError) Is(target error) bool {
	_, ok := target.(*InvalidPriceError)
	return ok
}

// OutOfStockError is returned when a sale requests more units than are in
// stock
type OutOfStockError struct {
	Name string
}

// Error implements the error interface for OutOfStockError
func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: name=%s", e.Name)
}

// Is allows proper error type checking with errors.Is()
func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

// InvalidInputError is returned when a transaction's quantity or unit price
// fails validation. Both conditions collapse into this one kind.
type InvalidInputError struct {
	Message string
}

// Error implements the error interface for InvalidInputError
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

// Helper functions for creating errors with context

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(name string) error {
	return &ProductNotFoundError{Name: name}
}

// NewInvalidQuantityError creates a new InvalidQuantityError
func NewInvalidQuantityError(quantity int) error {
	return &InvalidQuantityError{Quantity: quantity}
}

// NewInvalidPriceError creates a new InvalidPriceError
func NewInvalidPriceError(price float64) error {
	return &InvalidPriceError{Price: price}
}

// NewOutOfStockError creates a new OutOfStockError
func NewOutOfStockError(name string) error {
	return &OutOfStockError{Name: name}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(message string) error {
	return &InvalidInputError{Message: message}
}

// Type assertion helpers for use with errors.As()

// IsProductNotFoundError checks if an error is a ProductNotFoundError
func IsProductNotFoundError(err error) bool {
	var pnf *ProductNotFoundError
	return errors.As(err, &pnf)
}

// IsInvalidQuantityError checks if an error is an InvalidQuantityError
func IsInvalidQuantityError(err error) bool {
	var iqe *InvalidQuantityError
	return errors.As(err, &iqe)
}

// IsInvalidPriceError checks if an error is an InvalidPriceError
func IsInvalidPriceError(err error) bool {
	var ipe *InvalidPriceError
	return errors.As(err, &ipe)
}

// IsOutOfStockError checks if an error is an OutOfStockError
func IsOutOfStockError(err error) bool {
	var oos *OutOfStockError
	return errors.As(err, &oos)
}

// IsInvalidInputError checks if an error is an InvalidInputError
func IsInvalidInputError(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
