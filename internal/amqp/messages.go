package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"billtracker/internal/core"
)

// EventType names a change to the bill store
type EventType string

const (
	BillAdded   EventType = "bill.added"
	BillUpdated EventType = "bill.updated"
	BillRemoved EventType = "bill.removed"
)

// BillEvent is published after a bill is added, updated or removed.
// Amount is the amount after the change, or the last amount for removals.
type BillEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// NewBillEvent creates an event with a fresh ID
func NewBillEvent(t EventType, b core.Bill) *BillEvent {
	return &BillEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Name:      b.Name,
		Amount:    b.Amount,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *BillEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// BillEventFromJSON creates an event from JSON bytes
func BillEventFromJSON(data []byte) (*BillEvent, error) {
	var evt BillEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}
