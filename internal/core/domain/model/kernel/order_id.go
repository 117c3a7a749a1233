package kernel

import (
	"fmt"
	"strconv"

	"pedidos/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("order id must be a positive integer")

// OrderID identifies an order. Ids are assigned once, at insertion, and never reused.
type OrderID int64

// NewOrderID validates a raw integer id coming from storage or a request body.
func NewOrderID(raw int64) (OrderID, error) {
	id := OrderID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseOrderID parses the decimal form used in request paths such as /api/pedidos/:id.
func ParseOrderID(s string) (OrderID, error) {
	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q is not an integer", s))
	}
	return NewOrderID(raw)
}

// Validate rejects zero and negative ids.
func (id OrderID) Validate() error {
	if id <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// Int64 returns the raw value for persistence and wire encoding.
func (id OrderID) Int64() int64 {
	return int64(id)
}

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
