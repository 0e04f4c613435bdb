package backend

import (
	"context"
	"fmt"

	"billtracker/internal/amqp"
	applog "billtracker/internal/log"
	"billtracker/internal/services"
	"billtracker/internal/storage"
	"billtracker/internal/store"
	"billtracker/internal/store/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		bills store.BillStore
		err   error
	)
	switch config.Type {
	case SQLiteBackend:
		bills, err = f.createSQLiteStore(ctx)
	case MemoryBackend:
		bills = f.createMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	publisher := f.createPublisher(config)
	service := services.NewBillService(bills, publisher, f.logger)

	f.logger.InfoContext(ctx, "Initialized backend",
		applog.FieldBackend, config.Type,
		"events_enabled", publisher != nil)

	return &BackendResult{
		Backend: service,
		Cleanup: service.Close,
	}, nil
}

func (f *DefaultFactory) createSQLiteStore(ctx context.Context) (store.BillStore, error) {
	repo, err := storage.NewSQLiteRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	return repo, nil
}

func (f *DefaultFactory) createMemoryStore() store.BillStore {
	return memory.New()
}

// createPublisher returns nil when events are disabled or the broker is
// unreachable; the bill tracker works the same without events.
func (f *DefaultFactory) createPublisher(config Config) services.EventPublisher {
	if config.AMQPURL == "" {
		return nil
	}

	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPRoutingKey)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without events", applog.FieldError, err)
		return nil
	}

	f.logger.Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"routing_key", config.AMQPRoutingKey)
	return client
}
