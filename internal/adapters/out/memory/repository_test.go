package memory_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"pedidos/internal/adapters/out/memory"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *memory.Store {
	return memory.NewStore(kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())
}

func details(t *testing.T, company string) order.Details {
	t.Helper()
	box, err := order.NewItem("box", 2)
	require.NoError(t, err)
	d, err := order.NewDetails(company, "2024-01-01", 2, []order.Item{box})
	require.NoError(t, err)
	return d
}

func TestRepository_InsertAndGet(t *testing.T) {
	ctx := t.Context()
	repo := newStore().Repository()

	created, err := repo.Insert(ctx, details(t, "Acme"))
	require.NoError(t, err)
	assert.Equal(t, order.Received, created.Status())

	stored, err := repo.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), stored.ID())
	assert.Equal(t, "Acme", stored.Details().Company())
	assert.Equal(t, created.ReceivedAt(), stored.ReceivedAt())
}

func TestRepository_ConcurrentInsertsGetDistinctIDs(t *testing.T) {
	ctx := t.Context()
	repo := newStore().Repository()
	d := details(t, "Acme")

	const n = 100
	ids := make(chan kernel.OrderID, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Insert(ctx, d)
			if err == nil {
				ids <- created.ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[kernel.OrderID]struct{}, n)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "id %s issued twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestRepository_ListAllOrderedByReceipt(t *testing.T) {
	ctx := t.Context()
	// Frozen source: the clock has to break ties on its own.
	frozen := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore(
		kernel.NewMonotonicIDGenerator(),
		kernel.NewMonotonicClockWithSource(func() time.Time { return frozen }),
	)
	repo := store.Repository()

	var want []kernel.OrderID
	for _, company := range []string{"A", "B", "C", "D"} {
		created, err := repo.Insert(ctx, details(t, company))
		require.NoError(t, err)
		want = append(want, created.ID())
	}

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	got := make([]kernel.OrderID, 0, len(orders))
	for _, o := range orders {
		got = append(got, o.ID())
	}
	assert.Equal(t, want, got)
}

func TestRepository_UpdateStatusForIDs(t *testing.T) {
	ctx := t.Context()
	repo := newStore().Repository()
	a, err := repo.Insert(ctx, details(t, "A"))
	require.NoError(t, err)
	b, err := repo.Insert(ctx, details(t, "B"))
	require.NoError(t, err)

	updated, err := repo.UpdateStatusForIDs(ctx, []kernel.OrderID{a.ID(), a.ID(), 99}, order.Finalized)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	stored, err := repo.Get(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Finalized, stored.Status())

	untouched, err := repo.Get(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Received, untouched.Status())

	updated, err = repo.UpdateStatusForIDs(ctx, []kernel.OrderID{a.ID()}, order.Received)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated, "moving back to received is allowed")

	_, err = repo.UpdateStatusForIDs(ctx, []kernel.OrderID{a.ID()}, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_DeleteByID(t *testing.T) {
	ctx := t.Context()
	repo := newStore().Repository()
	created, err := repo.Insert(ctx, details(t, "Acme"))
	require.NoError(t, err)

	deleted, err := repo.DeleteByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), deleted.ID())

	_, err = repo.Get(ctx, created.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.DeleteByID(ctx, created.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID(), maxID, "deleted ids still count towards the maximum")
}

func TestUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	factory := memory.NewUnitOfWorkFactory(store)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	created, err := uow.OrderRepository().Insert(ctx, details(t, "Acme"))
	require.NoError(t, err)

	visible, err := uow.OrderRepository().Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), visible.ID())

	require.NoError(t, uow.Rollback(ctx))

	_, err = store.Repository().Get(ctx, created.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_CommitPublishesChanges(t *testing.T) {
	ctx := t.Context()
	store := newStore()
	uow := memory.NewUnitOfWorkFactory(store).Create()

	require.NoError(t, uow.Begin(ctx))
	created, err := uow.OrderRepository().Insert(ctx, details(t, "Acme"))
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)

	stored, err := store.Repository().Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, created.ID(), stored.ID())
}

func TestUnitOfWork_ErrorsWithoutTransaction(t *testing.T) {
	ctx := t.Context()
	uow := memory.NewUnitOfWorkFactory(newStore()).Create()

	require.ErrorIs(t, uow.Commit(ctx), memory.ErrNoActiveTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoActiveTransaction)
}

func TestUnitOfWork_BeginHonorsContext(t *testing.T) {
	store := newStore()
	factory := memory.NewUnitOfWorkFactory(store)

	holder := factory.Create()
	require.NoError(t, holder.Begin(t.Context()))
	defer func() { _ = holder.Rollback(t.Context()) }()

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	err := factory.Create().Begin(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "orders.json")

	store, err := memory.NewFileStore(path, kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())
	require.NoError(t, err)
	repo := store.Repository()

	kept, err := repo.Insert(ctx, details(t, "Kept"))
	require.NoError(t, err)
	gone, err := repo.Insert(ctx, details(t, "Gone"))
	require.NoError(t, err)
	_, err = repo.UpdateStatusForIDs(ctx, []kernel.OrderID{kept.ID()}, order.Picking)
	require.NoError(t, err)
	_, err = repo.DeleteByID(ctx, gone.ID())
	require.NoError(t, err)

	reopened, err := memory.NewFileStore(path, kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())
	require.NoError(t, err)

	orders, err := reopened.Repository().ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, kept.ID(), orders[0].ID())
	assert.Equal(t, order.Picking, orders[0].Status())
	assert.Equal(t, "box", orders[0].Details().Items()[0].Name())
	assert.True(t, kept.ReceivedAt().Equal(orders[0].ReceivedAt()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status": "picking"`)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	store, err := memory.NewFileStore(path, kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())
	require.NoError(t, err)

	orders, err := store.Repository().ListAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestFileStore_CorruptFileIsPersistenceError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := memory.NewFileStore(path, kernel.NewMonotonicIDGenerator(), kernel.NewMonotonicClock())

	require.ErrorIs(t, err, errs.ErrPersistence)
}
