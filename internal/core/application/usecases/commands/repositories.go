// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler follows the same sequence: validate, write inside a unit of work,
// then commit and publish the matching event as one step through a shared
// EventSequencer.
package commands

import (
	"context"

	"pedidos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   created, err := uow.OrderRepository().Insert(ctx, details)
	//   err = sequencer.CommitAndPublish(ctx, uow, order.OrderCreated{Order: created})
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
