// Package forms validates raw form input before it reaches the stores.
//
// The two forms validate differently on purpose: the product form surfaces a
// single message (first failing rule wins), while the farm setup form collects
// a field-keyed map so several errors can be shown at once.
package forms

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"farmstead/internal/models"
	"farmstead/internal/products"
)

// Product form errors. The messages are shown to the user verbatim.
var (
	ErrProductNameRequired = errors.New("Product name is required")
	ErrStockInvalid        = errors.New("Stock must be >= 0")
	ErrPriceInvalid        = errors.New("Price must be >= 0")
)

// ProductForm carries the raw string fields of the product form. Category and
// unit are trusted to be one of the enumerated values: the input widget
// constrains them, so they are not re-validated here.
type ProductForm struct {
	Name          string
	Category      models.ProductCategory
	Unit          models.ProductUnit
	CurrentStock  string
	PurchasePrice string
}

// ParseProduct checks the form rules in order and returns the first failure.
// On success it returns a normalized record with numeric stock and price,
// ready for the product store.
func ParseProduct(f ProductForm) (products.Input, error) {
	if strings.TrimSpace(f.Name) == "" {
		return products.Input{}, ErrProductNameRequired
	}

	stock, err := parseNonNegative(f.CurrentStock)
	if err != nil {
		return products.Input{}, ErrStockInvalid
	}

	price, err := parseNonNegative(f.PurchasePrice)
	if err != nil {
		return products.Input{}, ErrPriceInvalid
	}

	return products.Input{
		Name:          strings.TrimSpace(f.Name),
		Category:      f.Category,
		Unit:          f.Unit,
		CurrentStock:  stock,
		PurchasePrice: price,
	}, nil
}

func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 {
		return 0, strconv.ErrRange
	}
	return v, nil
}
