// Package storetest holds the behaviour every store.BillStore backend must
// share. Backend packages call Run from their own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billtracker/internal/core"
	"billtracker/internal/store"
)

// Factory returns an empty store. It is called once per subtest.
type Factory func(t *testing.T) store.BillStore

func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("empty store lists nothing", func(t *testing.T) {
		s := newStore(t)
		bills, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, bills)
	})

	t.Run("distinct adds are all listed", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		want := []core.Bill{
			{Name: "Rent", Amount: 1200},
			{Name: "Power", Amount: 80.5},
			{Name: "Refund", Amount: -20},
			{Name: "Free trial", Amount: 0},
		}
		for _, b := range want {
			require.NoError(t, s.Add(ctx, b))
		}
		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got)
	})

	t.Run("add replaces bill with same name", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Water", Amount: 30}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 999}))

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []core.Bill{{Name: "Rent", Amount: 999}, {Name: "Water", Amount: 30}}, got)
	})

	t.Run("add rejects empty name", func(t *testing.T) {
		s := newStore(t)
		err := s.Add(context.Background(), core.Bill{Name: " ", Amount: 1})
		assert.ErrorIs(t, err, core.ErrEmptyName)
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for _, n := range []string{"b", "c", "a"} {
			require.NoError(t, s.Add(ctx, core.Bill{Name: n, Amount: 1}))
		}
		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "a", got[0].Name)
		assert.Equal(t, "b", got[1].Name)
		assert.Equal(t, "c", got[2].Name)
	})

	t.Run("update existing bill", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))

		b, found, err := s.Update(ctx, "Rent", 1300)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, core.Bill{Name: "Rent", Amount: 1300}, b)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Rent", Amount: 1300}}, got)
	})

	t.Run("update missing bill leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))

		b, found, err := s.Update(ctx, "Gas", 50)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, core.Bill{}, b)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Rent", Amount: 1200}}, got)
	})

	t.Run("remove existing bill", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Water", Amount: 30}))

		b, found, err := s.Remove(ctx, "Rent")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, core.Bill{Name: "Rent", Amount: 1200}, b)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Water", Amount: 30}}, got)
	})

	t.Run("remove missing bill leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))

		_, found, err := s.Remove(ctx, "rent")
		require.NoError(t, err)
		assert.False(t, found)

		got, err := s.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []core.Bill{{Name: "Rent", Amount: 1200}}, got)
	})
}
