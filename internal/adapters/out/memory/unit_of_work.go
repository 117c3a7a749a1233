package memory

import (
	"context"

	"pedidos/internal/core/ports"
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store from Begin until Commit or Rollback.
// It is not safe for use by more than one goroutine.
type UnitOfWork struct {
	store  *Store
	staged *state
}

// Begin waits for the store or for ctx to end. A second call is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.staged != nil {
		return nil
	}
	if err := uow.store.acquire(ctx); err != nil {
		return err
	}

	staged := uow.store.state.clone()
	uow.staged = &staged
	return nil
}

// Commit publishes the staged state. On a snapshot write failure the staged
// changes are dropped and the store keeps its previous state.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	defer uow.finish()

	return uow.store.commitLocked(*uow.staged)
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.staged == nil {
		return ErrNoActiveTransaction
	}
	uow.finish()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &Repository{store: uow.store, uow: uow}
}

func (uow *UnitOfWork) finish() {
	uow.staged = nil
	uow.store.release()
}
