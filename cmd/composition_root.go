package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"pedidos/internal/adapters/out/broadcast"
	"pedidos/internal/adapters/out/kafka"
	"pedidos/internal/adapters/out/memory"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/adapters/out/postgres/migrations"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  ports.UnitOfWorkFactory
	lister      queries.OrderLister
	registry    *broadcast.Registry
	broadcaster *broadcast.Broadcaster
	kafka       *kafka.Publisher
	sequencer   *commands.EventSequencer
}

// NewCompositionRoot opens the configured storage, seeds the id generator from
// it and builds the event fan-out.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	ids := kernel.NewMonotonicIDGenerator()
	clock := kernel.NewMonotonicClock()

	root := &CompositionRoot{}
	var seed ports.OrderRepository

	switch configs.StorageDriver {
	case StorageMemory:
		store, err := openMemoryStore(configs.OrdersFile, ids, clock)
		if err != nil {
			return nil, err
		}
		root.uowFactory = memory.NewUnitOfWorkFactory(store)
		root.lister = store.Repository()
		seed = store.Repository()
	case StoragePostgres:
		dsn := configs.DSN()
		if err := migrations.Up(dsn); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		root.gormDB = db
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(db, ids, clock)
		repo := orderrepo.NewGormOrderRepository(db, ids, clock)
		root.lister = repo
		seed = repo
	default:
		return nil, fmt.Errorf("unknown storage driver %q", configs.StorageDriver)
	}

	maxID, err := seed.MaxID(ctx)
	if err != nil {
		root.Close()
		return nil, fmt.Errorf("failed to read highest order id: %w", err)
	}
	ids.Observe(maxID)

	root.registry = broadcast.NewRegistry(configs.SubscriberBuffer)
	root.broadcaster = broadcast.NewBroadcaster(root.registry, logger)

	publishers := multiPublisher{root.broadcaster}
	if configs.KafkaEnabled() {
		root.kafka = kafka.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
		publishers = append(publishers, root.kafka)
	}
	root.sequencer = commands.NewEventSequencer(publishers)

	logger.Info("Storage ready",
		"component", "composition_root",
		"driver", configs.StorageDriver,
		"max_order_id", maxID.Int64(),
		"kafka", configs.KafkaEnabled(),
	)
	return root, nil
}

func openMemoryStore(path string, ids kernel.IDGenerator, clock kernel.Clock) (*memory.Store, error) {
	if path == "" {
		return memory.NewStore(ids, clock), nil
	}
	store, err := memory.NewFileStore(path, ids, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders file: %w", err)
	}
	return store, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.sequencer)
}

func (c *CompositionRoot) CreateUpdateOrdersStatusCommandHandler() commands.UpdateOrdersStatusCommandHandler {
	return commands.NewUpdateOrdersStatusCommandHandler(c.orderUoWFactory(), c.sequencer)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.sequencer)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.lister)
}

func (c *CompositionRoot) Registry() *broadcast.Registry {
	return c.registry
}

func (c *CompositionRoot) Broadcaster() *broadcast.Broadcaster {
	return c.broadcaster
}

// Close releases the Kafka writer and the database pool.
func (c *CompositionRoot) Close() error {
	var firstErr error
	if c.kafka != nil {
		if err := c.kafka.Close(); err != nil {
			firstErr = err
		}
	}
	if c.gormDB != nil {
		sqlDB, err := c.gormDB.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// multiPublisher hands each event to every sink in order. Sinks are best-effort
// and never report failures, so one slow sink cannot hide an event from another.
type multiPublisher []ports.EventPublisher

func (m multiPublisher) Publish(ctx context.Context, event order.Event) {
	for _, p := range m {
		p.Publish(ctx, event)
	}
}
