package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"pedidos/cmd"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig(file string) cmd.Config {
	return cmd.Config{
		HTTPPort:         "3000",
		StorageDriver:    cmd.StorageMemory,
		OrdersFile:       file,
		SubscriberBuffer: 4,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createOrder(t *testing.T, root *cmd.CompositionRoot, company string) int64 {
	t.Helper()
	command, err := commands.NewCreateOrderCommand(company, "2026-10-19", 1, nil)
	require.NoError(t, err)

	handler := root.CreateCreateOrderCommandHandler()
	created, err := handler.Handle(context.Background(), command)
	require.NoError(t, err)
	return created.ID().Int64()
}

func TestCompositionRoot_MemoryStoreBroadcastsCreatedOrders(t *testing.T) {
	root, err := cmd.NewCompositionRoot(context.Background(), memoryConfig(""), discardLogger())
	require.NoError(t, err)
	defer root.Close()

	sub := root.Registry().Subscribe()
	defer root.Registry().Unregister(sub)

	id := createOrder(t, root, "Acme")

	select {
	case frame := <-sub.Messages():
		assert.Contains(t, string(frame), "event: orderCreated\n")
	case <-time.After(time.Second):
		t.Fatal("orderCreated not broadcast")
	}

	list := root.CreateListOrdersQueryHandler()
	orders, err := list.Handle(context.Background(), queries.NewListOrdersQuery())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, id, orders[0].ID().Int64())
}

func TestCompositionRoot_SeedsIDsFromOrdersFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "orders.json")

	first, err := cmd.NewCompositionRoot(context.Background(), memoryConfig(file), discardLogger())
	require.NoError(t, err)
	firstID := createOrder(t, first, "Acme")
	require.NoError(t, first.Close())

	second, err := cmd.NewCompositionRoot(context.Background(), memoryConfig(file), discardLogger())
	require.NoError(t, err)
	defer second.Close()

	secondID := createOrder(t, second, "Globex")
	assert.Greater(t, secondID, firstID)
}

func TestCompositionRoot_UnknownDriver(t *testing.T) {
	c := memoryConfig("")
	c.StorageDriver = "sqlite"

	_, err := cmd.NewCompositionRoot(context.Background(), c, discardLogger())

	require.Error(t, err)
}
