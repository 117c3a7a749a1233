package order

import (
	"errors"
	"fmt"
	"strings"

	"pedidos/internal/pkg/errs"
	"pedidos/internal/pkg/guard"
)

// ErrDetailsIsNotConstructed is returned for a Details value not built by NewDetails.
var ErrDetailsIsNotConstructed = errors.New("Details must be created via NewDetails constructor")

// Details is everything the client supplies when submitting an order.
// The order date is kept as sent: it is a business date, not the receipt time.
type Details struct {
	company      string
	orderDate    string
	totalVolumes int
	items        []Item

	guard guard.ConstructorGuard
}

// NewDetails validates client input. All violations are reported together.
func NewDetails(company, orderDate string, totalVolumes int, items []Item) (Details, error) {
	d := Details{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setCompany(company),
		d.setOrderDate(orderDate),
		d.setTotalVolumes(totalVolumes),
	); err != nil {
		return Details{}, err
	}

	d.items = append(make([]Item, 0, len(items)), items...)
	return d, nil
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsIsNotConstructed)
}

func (d Details) Company() string {
	return d.company
}

func (d Details) OrderDate() string {
	return d.orderDate
}

func (d Details) TotalVolumes() int {
	return d.totalVolumes
}

// Items returns a copy in submission order.
func (d Details) Items() []Item {
	return append(make([]Item, 0, len(d.items)), d.items...)
}

func (d *Details) setCompany(company string) error {
	company = strings.TrimSpace(company)
	if company == "" {
		return errs.NewValueIsRequiredError("company")
	}
	d.company = company
	return nil
}

func (d *Details) setOrderDate(orderDate string) error {
	orderDate = strings.TrimSpace(orderDate)
	if orderDate == "" {
		return errs.NewValueIsRequiredError("orderDate")
	}
	d.orderDate = orderDate
	return nil
}

func (d *Details) setTotalVolumes(totalVolumes int) error {
	if totalVolumes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalVolumes is invalid",
			fmt.Errorf("%d is not greater than 0", totalVolumes),
		)
	}
	d.totalVolumes = totalVolumes
	return nil
}
