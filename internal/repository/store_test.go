package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"florabot/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	return NewFileStore(path, time.UTC, zap.NewNop())
}

func testOrder(id, createdAt string, tgID int64) models.Order {
	return models.Order{
		OrderID:   id,
		CreatedAt: createdAt,
		Status:    models.StatusAccepted,
		Items:     []models.OrderItem{{Title: "Rose bouquet", Qty: 1, Price: 350000}},
		Total:     350000,
		Currency:  models.DefaultCurrency,
		TGID:      tgID,
	}
}

func TestFileStore_AppendRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := newTestStore(t)

	want := testOrder("FL-20260101-0001", "2026-01-01 10:00:00", 42)
	want.Customer = map[string]any{"name": "Aziz", "phone": "+998901234567"}
	fs.Append(ctx, want)

	got := fs.ListRecent(ctx, 1)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fs := NewFileStore(path, time.UTC, zap.NewNop())
	assert.Empty(t, fs.ListRecent(ctx, 10))

	// a non-list document counts as corrupt too
	require.NoError(t, os.WriteFile(path, []byte(`{"orderId":"FL-1"}`), 0o644))
	assert.Empty(t, fs.ListRecent(ctx, 10))

	// and the store stays usable for writes
	fs.Append(ctx, testOrder("FL-20260101-0001", "2026-01-01 10:00:00", 1))
	assert.Len(t, fs.ListRecent(ctx, 10), 1)
}

func TestFileStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	fs := newTestStore(t)
	fs.now = func() time.Time {
		return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	}

	fs.Append(ctx, testOrder("FL-20260101-0001", "2026-01-01 10:00:00", 42))

	updated, err := fs.UpdateStatus(ctx, "FL-20260101-0001", models.StatusCourier)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCourier, updated.Status)
	assert.Equal(t, "2026-01-02 15:04:05", updated.StatusUpdatedAt)

	// change is persisted, not only returned
	got := fs.ListRecent(ctx, 1)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusCourier, got[0].Status)
}

func TestFileStore_UpdateStatusNotFound(t *testing.T) {
	ctx := context.Background()
	fs := newTestStore(t)
	fs.Append(ctx, testOrder("FL-20260101-0001", "2026-01-01 10:00:00", 42))

	_, err := fs.UpdateStatus(ctx, "FL-NOPE-0000", models.StatusCourier)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	// store unchanged
	got := fs.ListRecent(ctx, 1)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusAccepted, got[0].Status)
}

func TestFileStore_ListByOwner(t *testing.T) {
	ctx := context.Background()
	fs := newTestStore(t)

	fs.Append(ctx, testOrder("FL-20260101-0001", "2026-01-01 09:00:00", 42))
	fs.Append(ctx, testOrder("FL-20260101-0002", "2026-01-01 11:00:00", 7))
	fs.Append(ctx, testOrder("FL-20260101-0003", "2026-01-01 10:00:00", 42))
	fs.Append(ctx, testOrder("FL-20260102-0001", "2026-01-02 08:00:00", 42))

	got := fs.ListByOwner(ctx, 42, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "FL-20260102-0001", got[0].OrderID)
	assert.Equal(t, "FL-20260101-0003", got[1].OrderID)

	assert.Empty(t, fs.ListByOwner(ctx, 999, 10))
}

func TestFileStore_ListRecentSortsAndLimits(t *testing.T) {
	ctx := context.Background()
	fs := newTestStore(t)

	fs.Append(ctx, testOrder("FL-20260101-0001", "2026-01-01 09:00:00", 1))
	fs.Append(ctx, testOrder("FL-20260102-0001", "2026-01-02 09:00:00", 2))
	fs.Append(ctx, testOrder("FL-20260101-0002", "2026-01-01 18:00:00", 3))

	got := fs.ListRecent(ctx, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "FL-20260102-0001", got[0].OrderID)
	assert.Equal(t, "FL-20260101-0002", got[1].OrderID)
}
