// Package postgres provides GORM-based implementation of the Unit of Work pattern.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, ids, clock)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	created, err := uow.OrderRepository().Insert(ctx, details)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - DeleteByID takes a row lock so concurrent deletes of one order resolve to one winner
package postgres

import (
	"context"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool,
// id generator and clock.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	ids   kernel.IDGenerator
	clock kernel.Clock
}

func NewGormUnitOfWorkFactory(db *gorm.DB, ids kernel.IDGenerator, clock kernel.Clock) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, ids: ids, clock: clock}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:    f.db,
		ids:   f.ids,
		clock: f.clock,
	}
}

// GormUnitOfWork wraps one GORM transaction.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	ids   kernel.IDGenerator
	clock kernel.Clock
}

// Begin opens the transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewPersistenceError("begin transaction", tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewPersistenceError("commit transaction", err)
	}
	return nil
}

// Rollback returns gorm.ErrInvalidTransaction if no transaction is open, which is
// the normal outcome of the deferred Rollback after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository runs inside the open transaction, or on the pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow.ids, uow.clock)
}
