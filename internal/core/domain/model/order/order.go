package order

import (
	"errors"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is one shipment request received from a client company.
//
// Invariants:
//   - id is valid and never changes
//   - receivedAt is set once, at insertion, and never changes
//   - status is always one of Received, Picking, Finalized
type Order struct {
	id         kernel.OrderID
	details    Details
	receivedAt time.Time
	status     Status

	isConstructed bool
}

// NewOrder creates an order in Received status. Only repositories call it, because
// they own id and receipt-time assignment:
//
//	o, err := order.NewOrder(r.ids.Next(), r.clock.Now(), details)
func NewOrder(id kernel.OrderID, receivedAt time.Time, details Details) (*Order, error) {
	return RestoreOrder(id, receivedAt, details, Received)
}

// RestoreOrder rehydrates an order from storage with its persisted status.
func RestoreOrder(id kernel.OrderID, receivedAt time.Time, details Details, status Status) (*Order, error) {
	var zeroTime error
	if receivedAt.IsZero() {
		zeroTime = errs.NewValueIsRequiredError("receivedAt")
	}

	if err := errors.Join(
		id.Validate(),
		details.Validate(),
		status.Validate(),
		zeroTime,
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		details:       details,
		receivedAt:    receivedAt,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) ReceivedAt() time.Time {
	return o.receivedAt
}

func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to any valid status, including its current one.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
