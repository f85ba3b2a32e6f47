package products

import "errors"

// ErrNotFound is returned by Update, Delete and Get when no product with the
// given id exists.
var ErrNotFound = errors.New("product not found")
