package order

import (
	"fmt"
	"strings"

	"pedidos/internal/pkg/errs"
)

// Item is one line of an order: a product name and how many units of it.
type Item struct {
	name     string
	quantity int
}

func NewItem(name string, quantity int) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return Item{name: name, quantity: quantity}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}
