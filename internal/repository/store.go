// Package repository persists orders and the day counter as human-readable
// JSON files. The whole collection is rewritten on every mutation, which is
// fine at flower-shop volume; see DESIGN.md before pointing two processes at
// the same files.
package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"florabot/internal/models"
)

// TimeLayout is the fixed-width timestamp format of order records. Its
// lexicographic order equals chronological order, which ListRecent and
// ListByOwner rely on.
const TimeLayout = "2006-01-02 15:04:05"

// FileStore is a JSON-file-backed order store. The mutex serializes all
// access within the process; the file itself has no cross-process lock.
type FileStore struct {
	mu     sync.Mutex
	path   string
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewFileStore creates new FileStore instance over the given file path.
func NewFileStore(path string, loc *time.Location, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// Append adds the order to the end of the collection and rewrites the file.
// Storage failures are logged and swallowed: losing one record is preferable
// to failing an already confirmed order.
func (fs *FileStore) Append(ctx context.Context, order models.Order) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	orders := fs.load()
	orders = append(orders, order)
	if err := fs.save(orders); err != nil {
		fs.logger.Warn("append order: write store",
			zap.String("orderId", order.OrderID), zap.Error(err))
	}
}

// UpdateStatus finds the first record with the given order ID, sets its
// status and statusUpdatedAt and rewrites the file. Returns
// models.ErrOrderNotFound when no record matches.
func (fs *FileStore) UpdateStatus(ctx context.Context, orderID, status string) (models.Order, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	orders := fs.load()
	for i := range orders {
		if orders[i].OrderID != orderID {
			continue
		}
		orders[i].Status = status
		orders[i].StatusUpdatedAt = fs.now().In(fs.loc).Format(TimeLayout)
		if err := fs.save(orders); err != nil {
			fs.logger.Warn("update status: write store",
				zap.String("orderId", orderID), zap.Error(err))
		}
		return orders[i], nil
	}
	return models.Order{}, models.ErrOrderNotFound
}

// ListByOwner returns at most limit orders submitted by the given Telegram
// ID, newest first.
func (fs *FileStore) ListByOwner(ctx context.Context, tgID int64, limit int) []models.Order {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var owned []models.Order
	for _, o := range fs.load() {
		if o.TGID == tgID {
			owned = append(owned, o)
		}
	}
	return newestFirst(owned, limit)
}

// ListRecent returns at most limit orders, newest first.
func (fs *FileStore) ListRecent(ctx context.Context, limit int) []models.Order {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return newestFirst(fs.load(), limit)
}

// load reads the whole collection. Any failure — missing file, junk bytes,
// a non-list document — degrades to an empty store.
func (fs *FileStore) load() []models.Order {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn("read store", zap.String("path", fs.path), zap.Error(err))
		}
		return nil
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		fs.logger.Warn("parse store, treating as empty",
			zap.String("path", fs.path), zap.Error(err))
		return nil
	}
	return orders
}

func (fs *FileStore) save(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, data, 0o644)
}

// newestFirst sorts by createdAt descending. The string compare is correct
// because TimeLayout timestamps are zero-padded and fixed-width.
func newestFirst(orders []models.Order, limit int) []models.Order {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}
