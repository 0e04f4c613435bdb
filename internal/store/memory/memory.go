package memory

import (
	"context"
	"sort"
	"sync"

	"billtracker/internal/core"
)

type Store struct {
	mu    sync.Mutex
	bills map[string]core.Bill
}

func New(seed ...core.Bill) *Store {
	s := &Store{bills: make(map[string]core.Bill, len(seed))}
	for _, b := range seed {
		if b.Validate() == nil {
			s.bills[b.Name] = b
		}
	}
	return s
}

// Add inserts or replaces the bill stored under b.Name.
func (s *Store) Add(_ context.Context, b core.Bill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bills[b.Name] = b
	return nil
}

// List returns the bills ordered by name.
func (s *Store) List(_ context.Context) ([]core.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Bill, 0, len(s.bills))
	for _, b := range s.bills {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Update(_ context.Context, name string, amount float64) (core.Bill, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[name]
	if !ok {
		return core.Bill{}, false, nil
	}
	b = b.WithAmount(amount)
	s.bills[name] = b
	return b, true, nil
}

func (s *Store) Remove(_ context.Context, name string) (core.Bill, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[name]
	if !ok {
		return core.Bill{}, false, nil
	}
	delete(s.bills, name)
	return b, true, nil
}

// Len returns the number of stored bills.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bills)
}
