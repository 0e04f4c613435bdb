package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billtracker/internal/core"
	"billtracker/internal/store"
	"billtracker/internal/store/storetest"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepositoryContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.BillStore { return newTestRepository(t) })
}

func TestSQLiteRepositoriesAreIsolated(t *testing.T) {
	a := newTestRepository(t)
	b := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, a.Add(ctx, core.Bill{Name: "Rent", Amount: 1200}))

	bills, err := b.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestSQLiteRepositoryKeepsPrecision(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, core.Bill{Name: "Tiny", Amount: 0.1}))
	bills, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "Tiny - 0.1", bills[0].String())
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, RunMigrations(repo.db))

	require.NoError(t, repo.Add(context.Background(), core.Bill{Name: "Rent", Amount: 1}))
}

func TestSQLiteRepositoryClosed(t *testing.T) {
	repo, err := NewSQLiteRepository(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.List(context.Background())
	assert.Error(t, err)
}
