// Package memory keeps orders in process memory, optionally mirrored to a JSON
// snapshot file. It is the storage used for local runs and single-node setups
// where running PostgreSQL is not worth it.
//
// A Store admits one unit of work at a time. Begin takes the store, mutations
// go to a staged copy, Commit writes the snapshot and swaps the copy in, and
// Rollback drops it. Operations outside a unit of work commit on their own.
package memory

import (
	"context"
	"errors"
	"maps"
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback on a unit of work
// that has no open transaction.
var ErrNoActiveTransaction = errors.New("no active transaction")

type record struct {
	id         kernel.OrderID
	details    order.Details
	receivedAt time.Time
	status     order.Status
}

func (r record) toDomain() (*order.Order, error) {
	return order.RestoreOrder(r.id, r.receivedAt, r.details, r.status)
}

type state struct {
	orders map[kernel.OrderID]record
	maxID  kernel.OrderID
}

func (s state) clone() state {
	return state{orders: maps.Clone(s.orders), maxID: s.maxID}
}

// Store is the in-memory order table.
type Store struct {
	sem   chan struct{}
	state state
	ids   kernel.IDGenerator
	clock kernel.Clock
	file  string
}

// NewStore creates an empty store that lives only as long as the process.
func NewStore(ids kernel.IDGenerator, clock kernel.Clock) *Store {
	return &Store{
		sem:   make(chan struct{}, 1),
		state: state{orders: make(map[kernel.OrderID]record)},
		ids:   ids,
		clock: clock,
	}
}

// NewFileStore loads path if it exists and rewrites it after every commit.
func NewFileStore(path string, ids kernel.IDGenerator, clock kernel.Clock) (*Store, error) {
	s := NewStore(ids, clock)
	s.file = path

	loaded, err := loadSnapshot(path)
	if err != nil {
		return nil, errs.NewPersistenceError("load snapshot", err)
	}
	s.state = loaded
	return s, nil
}

// Repository returns a repository whose every call commits on its own.
func (s *Store) Repository() *Repository {
	return &Repository{store: s}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// commitLocked must be called while holding the store.
func (s *Store) commitLocked(next state) error {
	if s.file != "" {
		if err := writeSnapshot(s.file, next); err != nil {
			return errs.NewPersistenceError("write snapshot", err)
		}
	}
	s.state = next
	return nil
}
