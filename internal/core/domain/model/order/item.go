package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Item is a value object representing one line of an order: a product
// reference with its display name, an optional variant label, a quantity
// and a unit price. The item set of an order is created atomically with
// the order and is immutable afterwards.
type Item struct {
	productID    kernel.UUID
	productName  string
	variantLabel string
	quantity     int
	unitPrice    float64
}

// NewItem creates a validated order line.
//
// Validation rules:
//   - productID must be a constructed UUID
//   - productName must not be empty
//   - quantity must be at least 1
//   - unitPrice must not be negative
//
// variantLabel is optional free text (size, color, ...).
func NewItem(productID kernel.UUID, productName, variantLabel string, quantity int, unitPrice float64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than or equal to 0", unitPrice))
	}

	return Item{
		productID:    productID,
		productName:  productName,
		variantLabel: variantLabel,
		quantity:     quantity,
		unitPrice:    unitPrice,
	}, nil
}

// maxItemQuantity bounds a single order line.
const maxItemQuantity = 10000

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if err := i.productID.Validate(); err != nil {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product display name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// VariantLabel returns the variant label, or an empty string if none.
func (i Item) VariantLabel() string {
	return i.variantLabel
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}
