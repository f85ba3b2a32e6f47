package forms

import (
	"testing"

	"farmstead/internal/models"
	"farmstead/internal/products"

	"github.com/stretchr/testify/require"
)

func validProductForm() ProductForm {
	return ProductForm{
		Name:          "Wheat Seeds",
		Category:      models.CategorySeeds,
		Unit:          models.UnitKg,
		CurrentStock:  "100",
		PurchasePrice: "120",
	}
}

func TestParseProduct_Valid(t *testing.T) {
	in, err := ParseProduct(validProductForm())
	require.NoError(t, err)
	require.Equal(t, products.Input{
		Name:          "Wheat Seeds",
		Category:      models.CategorySeeds,
		Unit:          models.UnitKg,
		CurrentStock:  100,
		PurchasePrice: 120,
	}, in)
}

func TestParseProduct_TrimsName(t *testing.T) {
	f := validProductForm()
	f.Name = "  Animal Feed  "
	in, err := ParseProduct(f)
	require.NoError(t, err)
	require.Equal(t, "Animal Feed", in.Name)
}

func TestParseProduct_FractionalValues(t *testing.T) {
	f := validProductForm()
	f.CurrentStock = "2.5"
	f.PurchasePrice = "19.99"
	in, err := ParseProduct(f)
	require.NoError(t, err)
	require.Equal(t, 2.5, in.CurrentStock)
	require.Equal(t, 19.99, in.PurchasePrice)
}

func TestParseProduct_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductForm)
		wantErr error
	}{
		{"empty name", func(f *ProductForm) { f.Name = "" }, ErrProductNameRequired},
		{"whitespace name", func(f *ProductForm) { f.Name = "   " }, ErrProductNameRequired},
		{"negative stock", func(f *ProductForm) { f.CurrentStock = "-5" }, ErrStockInvalid},
		{"empty stock", func(f *ProductForm) { f.CurrentStock = "" }, ErrStockInvalid},
		{"non-numeric stock", func(f *ProductForm) { f.CurrentStock = "many" }, ErrStockInvalid},
		{"NaN stock", func(f *ProductForm) { f.CurrentStock = "NaN" }, ErrStockInvalid},
		{"negative price", func(f *ProductForm) { f.PurchasePrice = "-0.01" }, ErrPriceInvalid},
		{"empty price", func(f *ProductForm) { f.PurchasePrice = "" }, ErrPriceInvalid},
		{"non-numeric price", func(f *ProductForm) { f.PurchasePrice = "free" }, ErrPriceInvalid},
		// name is checked before the numeric fields
		{"name beats stock", func(f *ProductForm) { f.Name = ""; f.CurrentStock = "-1" }, ErrProductNameRequired},
		// stock is checked before price
		{"stock beats price", func(f *ProductForm) { f.CurrentStock = "-1"; f.PurchasePrice = "-1" }, ErrStockInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validProductForm()
			tt.mutate(&f)
			_, err := ParseProduct(f)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseProduct_ZeroIsValid(t *testing.T) {
	f := validProductForm()
	f.CurrentStock = "0"
	f.PurchasePrice = "0"
	in, err := ParseProduct(f)
	require.NoError(t, err)
	require.Zero(t, in.CurrentStock)
	require.Zero(t, in.PurchasePrice)
}
