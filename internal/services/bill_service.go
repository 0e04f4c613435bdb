package services

import (
	"context"
	"errors"
	"fmt"

	"billtracker/internal/amqp"
	"billtracker/internal/core"
	applog "billtracker/internal/log"
	"billtracker/internal/store"
)

// EventPublisher is satisfied by *amqp.Client
type EventPublisher interface {
	PublishBillEvent(ctx context.Context, evt *amqp.BillEvent) error
	Close() error
}

// BillService orchestrates bill operations across a store backend and an
// optional event publisher. It implements store.BillStore.
type BillService struct {
	store     store.BillStore
	publisher EventPublisher
	logger    *applog.Logger
}

var _ store.BillStore = (*BillService)(nil)

func NewBillService(s store.BillStore, publisher EventPublisher, logger *applog.Logger) *BillService {
	if logger == nil {
		logger = applog.Discard()
	}
	return &BillService{
		store:     s,
		publisher: publisher,
		logger:    logger.WithComponent(applog.ComponentBills),
	}
}

// Add saves the bill and publishes a bill.added event
func (s *BillService) Add(ctx context.Context, b core.Bill) error {
	if err := s.store.Add(ctx, b); err != nil {
		return fmt.Errorf("add bill: %w", err)
	}

	s.logger.InfoContext(ctx, "Bill added", applog.NewFields().
		WithOperation(applog.OpAdd).
		WithBill(b.Name, b.Amount).
		ToSlice()...)
	s.publish(ctx, amqp.BillAdded, b)
	return nil
}

func (s *BillService) List(ctx context.Context) ([]core.Bill, error) {
	bills, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	s.logger.DebugContext(ctx, "Bills listed", applog.FieldOperation, applog.OpList, "count", len(bills))
	return bills, nil
}

// Update changes the amount and publishes bill.updated when the bill exists
func (s *BillService) Update(ctx context.Context, name string, amount float64) (core.Bill, bool, error) {
	b, found, err := s.store.Update(ctx, name, amount)
	if err != nil {
		return core.Bill{}, false, fmt.Errorf("update bill: %w", err)
	}

	fields := applog.NewFields().WithOperation(applog.OpUpdate).WithBill(name, amount)
	fields[applog.FieldFound] = found
	s.logger.InfoContext(ctx, "Bill update", fields.ToSlice()...)
	if found {
		s.publish(ctx, amqp.BillUpdated, b)
	}
	return b, found, nil
}

// Remove deletes the bill and publishes bill.removed when the bill existed
func (s *BillService) Remove(ctx context.Context, name string) (core.Bill, bool, error) {
	b, found, err := s.store.Remove(ctx, name)
	if err != nil {
		return core.Bill{}, false, fmt.Errorf("remove bill: %w", err)
	}

	s.logger.InfoContext(ctx, "Bill remove",
		applog.FieldOperation, applog.OpRemove,
		applog.FieldBillName, name,
		applog.FieldFound, found)
	if found {
		s.publish(ctx, amqp.BillRemoved, b)
	}
	return b, found, nil
}

// publish never fails the caller: the bill is already stored
func (s *BillService) publish(ctx context.Context, t amqp.EventType, b core.Bill) {
	if s.publisher == nil {
		return
	}

	evt := amqp.NewBillEvent(t, b)
	if err := s.publisher.PublishBillEvent(ctx, evt); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish bill event",
			applog.FieldEventID, evt.ID,
			applog.FieldEventType, evt.Type,
			applog.FieldBillName, b.Name,
			applog.FieldError, err)
	}
}

// Close closes the store (when it needs closing) and the publisher
func (s *BillService) Close() error {
	var errs []error

	if c, ok := s.store.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close bill service: %w", errors.Join(errs...))
	}

	return nil
}
