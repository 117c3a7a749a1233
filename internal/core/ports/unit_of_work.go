package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command, so concurrent
// requests never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the repository calls of one command into a single atomic
// write. A batch status update either changes every matching order or none.
type UnitOfWork interface {
	// Begin opens the transaction. It honors ctx while waiting for the store.
	Begin(ctx context.Context) error

	// Commit makes the staged writes visible. Events are published only after
	// it returns nil.
	Commit(ctx context.Context) error

	// Rollback discards the staged writes. Calling it after Commit returns an
	// error, which handlers ignore in their deferred cleanup.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the open transaction, or to
	// the store itself when none is open.
	OrderRepository() OrderRepository
}
