package repository

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// counterRecord is the persisted day-scoped sequence state.
type counterRecord struct {
	Date    string `json:"date"`
	Counter int    `json:"counter"`
}

// CounterFile persists the order-ID day counter as a tiny JSON document.
type CounterFile struct {
	path   string
	logger *zap.Logger
}

// NewCounterFile creates new CounterFile instance over the given file path.
func NewCounterFile(path string, logger *zap.Logger) *CounterFile {
	return &CounterFile{path: path, logger: logger}
}

// Load returns the stored date and counter. A missing or corrupt file reads
// as a zero counter with no date, which the generator treats as a fresh day.
func (cf *CounterFile) Load() (date string, counter int) {
	data, err := os.ReadFile(cf.path)
	if err != nil {
		if !os.IsNotExist(err) {
			cf.logger.Warn("read counter", zap.String("path", cf.path), zap.Error(err))
		}
		return "", 0
	}

	var rec counterRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		cf.logger.Warn("parse counter, resetting",
			zap.String("path", cf.path), zap.Error(err))
		return "", 0
	}
	return rec.Date, rec.Counter
}

// Save persists the date and counter best-effort. Failures are logged and
// swallowed so ID issuance never blocks order intake; the cost is a counter
// reset after an unexpected restart.
func (cf *CounterFile) Save(date string, counter int) {
	data, err := json.MarshalIndent(counterRecord{Date: date, Counter: counter}, "", "  ")
	if err != nil {
		cf.logger.Warn("encode counter", zap.Error(err))
		return
	}
	if err := os.WriteFile(cf.path, data, 0o644); err != nil {
		cf.logger.Warn("write counter", zap.String("path", cf.path), zap.Error(err))
	}
}
