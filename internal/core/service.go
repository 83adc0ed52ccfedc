package core

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clientportal/stockmonitor/internal/schema"
)

// Fetcher retrieves the latest raw table from the data source.
type Fetcher interface {
	Fetch(ctx context.Context) (*RawTable, error)
}

// Service runs the refresh cycle: fetch, map, classify, swap. Each cycle
// produces a new immutable Batch; the current batch pointer is swapped
// atomically so readers always see either the previous complete result or
// the new one, never a partial update.
type Service struct {
	fetcher   Fetcher
	specs     []schema.AliasSpec
	threshold decimal.Decimal

	current atomic.Pointer[Batch]
}

// NewService creates a Service. A non-positive threshold falls back to
// DefaultCriticalThreshold.
func NewService(fetcher Fetcher, specs []schema.AliasSpec, threshold decimal.Decimal) *Service {
	if threshold.Sign() <= 0 {
		threshold = DefaultCriticalThreshold
	}
	return &Service{
		fetcher:   fetcher,
		specs:     specs,
		threshold: threshold,
	}
}

// Refresh performs one full recomputation from the latest raw table and
// swaps it in as the current batch. On any error the previous batch stays
// in place untouched.
func (s *Service) Refresh(ctx context.Context) (*Batch, error) {
	table, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch raw table: %w", err)
	}

	res, err := MapTable(table, s.specs)
	if err != nil {
		return nil, err
	}

	rows, agg, err := Classify(res.Rows, s.threshold)
	if err != nil {
		return nil, err
	}

	batch := &Batch{
		ID:          uuid.NewString(),
		FetchedAt:   time.Now().UTC(),
		Rows:        rows,
		Aggregates:  agg,
		SkippedRows: res.SkippedRows,
		Unmapped:    res.Unmapped,
	}
	s.current.Store(batch)
	return batch, nil
}

// Current returns the most recent batch, or nil before the first
// successful refresh.
func (s *Service) Current() *Batch {
	return s.current.Load()
}

// CriticalItems returns the rows of the current batch at or below the
// critical threshold.
func (s *Service) CriticalItems() ([]ClassifiedRow, error) {
	return s.itemsWithStatus(func(st Status) bool { return st == StatusCritical })
}

// LowStockItems returns the rows of the current batch needing attention:
// LOW_STOCK and CRITICAL, matching the Aggregates.LowStock count.
func (s *Service) LowStockItems() ([]ClassifiedRow, error) {
	return s.itemsWithStatus(func(st Status) bool { return st != StatusInStock })
}

func (s *Service) itemsWithStatus(match func(Status) bool) ([]ClassifiedRow, error) {
	batch := s.current.Load()
	if batch == nil {
		return nil, ErrNoBatch
	}
	items := make([]ClassifiedRow, 0)
	for _, row := range batch.Rows {
		if match(row.Status) {
			items = append(items, row)
		}
	}
	return items, nil
}
