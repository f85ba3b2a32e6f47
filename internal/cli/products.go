package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"farmstead/internal/forms"
	"farmstead/internal/models"
	"farmstead/internal/products"
	"farmstead/internal/routes"
)

// ListProducts opens the products page.
func (a *App) ListProducts(ctx context.Context) error {
	return a.Open(ctx, routes.RouteProducts)
}

// AddProduct prompts the product form and, when it validates, prepends the
// new record to the list. A validation failure renders its single message and
// leaves the store unchanged.
func (a *App) AddProduct(ctx context.Context) error {
	in, ok, err := a.promptProductForm(nil)
	if err != nil || !ok {
		return err
	}

	p := a.products.Create(in)
	a.logger.Info(ctx, "product created", "id", p.ID, "name", p.Name)
	printlnFn(fmt.Sprintf("Added %s", p.Name))
	a.renderProducts()
	return nil
}

// EditProduct re-runs the product form for an existing record. Empty answers
// keep the current values. The record keeps its id and its position in the
// list.
func (a *App) EditProduct(ctx context.Context, id string) error {
	current, err := a.products.Get(id)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			printlnFn("Product not found")
			return nil
		}
		return err
	}

	in, ok, err := a.promptProductForm(&current)
	if err != nil || !ok {
		return err
	}

	updated, err := a.products.Update(id, in)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			printlnFn("Product not found")
			return nil
		}
		return err
	}

	a.logger.Info(ctx, "product updated", "id", updated.ID, "name", updated.Name)
	printlnFn(fmt.Sprintf("Updated %s", updated.Name))
	a.renderProducts()
	return nil
}

// DeleteProduct removes a record after an explicit confirmation.
func (a *App) DeleteProduct(ctx context.Context, id string) error {
	ok, err := confirm(a.reader, "Delete this product?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.products.Delete(id); err != nil {
		if errors.Is(err, products.ErrNotFound) {
			printlnFn("Product not found")
			return nil
		}
		return err
	}

	a.logger.Info(ctx, "product deleted", "id", id)
	printlnFn("Product deleted")
	a.renderProducts()
	return nil
}

// promptProductForm collects the raw form fields and runs them through the
// product validator. With a non-nil initial record, empty answers fall back
// to the record's current values (the CLI analog of a prefilled form). The
// second return value is false when validation rejected the input; the
// message has already been rendered in that case.
func (a *App) promptProductForm(initial *models.Product) (products.Input, bool, error) {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return products.Input{}, false, err
	}

	defCategory := string(models.CategorySeeds)
	defUnit := string(models.UnitKg)
	defStock := "0"
	defPrice := "0"
	if initial != nil {
		if name == "" {
			name = initial.Name
		}
		defCategory = string(initial.Category)
		defUnit = string(initial.Unit)
		defStock = strconv.FormatFloat(initial.CurrentStock, 'f', -1, 64)
		defPrice = strconv.FormatFloat(initial.PurchasePrice, 'f', -1, 64)
	}

	category, err := getChoice(a.reader, "Category", categoryOptions(), defCategory, os.Stdout)
	if err != nil {
		return products.Input{}, false, err
	}
	unit, err := getChoice(a.reader, "Unit", unitOptions(), defUnit, os.Stdout)
	if err != nil {
		return products.Input{}, false, err
	}
	stock, err := getSimpleText(a.reader, "Current stock", os.Stdout)
	if err != nil {
		return products.Input{}, false, err
	}
	if stock == "" {
		stock = defStock
	}
	price, err := getSimpleText(a.reader, "Purchase price", os.Stdout)
	if err != nil {
		return products.Input{}, false, err
	}
	if price == "" {
		price = defPrice
	}

	in, err := forms.ParseProduct(forms.ProductForm{
		Name:          name,
		Category:      models.ProductCategory(category),
		Unit:          models.ProductUnit(unit),
		CurrentStock:  stock,
		PurchasePrice: price,
	})
	if err != nil {
		printlnFn(err.Error())
		return products.Input{}, false, nil
	}
	return in, true, nil
}

func (a *App) renderProducts() {
	items := a.products.List()
	if len(items) == 0 {
		printlnFn("No products found")
		return
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tUNIT\tSTOCK\tPRICE")
	for _, p := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\n",
			p.ID, p.Name, p.Category, p.Unit,
			strconv.FormatFloat(p.CurrentStock, 'f', -1, 64), p.PurchasePrice)
	}
	_ = tw.Flush()
	printlnFn(strings.TrimRight(b.String(), "\n"))
}

func categoryOptions() []string {
	opts := make([]string, len(models.ProductCategories))
	for i, c := range models.ProductCategories {
		opts[i] = string(c)
	}
	return opts
}

func unitOptions() []string {
	opts := make([]string, len(models.ProductUnits))
	for i, u := range models.ProductUnits {
		opts[i] = string(u)
	}
	return opts
}
