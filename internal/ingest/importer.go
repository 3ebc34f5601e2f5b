package ingest

import (
	"context"
	"fmt"

	"wealthdesk/internal/db/models/postgres/public/model"
	"wealthdesk/internal/logger"
	"wealthdesk/internal/repository"
)

const DefaultBatchSize = 500

type ImportResult struct {
	Read    int `json:"read"`
	Skipped int `json:"skipped"`
	Batches int `json:"batches"`
}

// Importer loads CRM exports into the record tables. Rows that already
// exist are left untouched, except for client profiles which are
// refreshed.
type Importer struct {
	SipRecordRepository        repository.SipRecordRepository
	InsuranceRecordRepository  repository.InsuranceRecordRepository
	PortfolioHoldingRepository repository.PortfolioHoldingRepository
	UserRepository             repository.UserRepository
	BatchSize                  int
}

func (i Importer) ImportSipRecords(ctx context.Context, tx repository.Queryer, path string) (*ImportResult, error) {
	loaded, err := LoadSipRecords(path)
	if err != nil {
		return nil, err
	}
	return insertBatches(ctx, i.batchSize(), "sip records", loaded, func(batch []model.SipRecords) error {
		return i.SipRecordRepository.AddMany(ctx, tx, batch)
	})
}

func (i Importer) ImportInsuranceRecords(ctx context.Context, tx repository.Queryer, path string) (*ImportResult, error) {
	loaded, err := LoadInsuranceRecords(path)
	if err != nil {
		return nil, err
	}
	return insertBatches(ctx, i.batchSize(), "insurance records", loaded, func(batch []model.InsuranceRecords) error {
		return i.InsuranceRecordRepository.AddMany(ctx, tx, batch)
	})
}

func (i Importer) ImportHoldings(ctx context.Context, tx repository.Queryer, path string) (*ImportResult, error) {
	loaded, err := LoadHoldings(path)
	if err != nil {
		return nil, err
	}
	return insertBatches(ctx, i.batchSize(), "portfolio holdings", loaded, func(batch []model.PortfolioHoldings) error {
		return i.PortfolioHoldingRepository.AddMany(ctx, tx, batch)
	})
}

func (i Importer) ImportUsers(ctx context.Context, tx repository.Queryer, path string) (*ImportResult, error) {
	loaded, err := LoadUsers(path)
	if err != nil {
		return nil, err
	}
	return insertBatches(ctx, i.batchSize(), "users", loaded, func(batch []model.Users) error {
		return i.UserRepository.AddMany(ctx, tx, batch)
	})
}

func (i Importer) batchSize() int {
	if i.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return i.BatchSize
}

func insertBatches[T any](ctx context.Context, size int, kind string, loaded *LoadResult[T], add func([]T) error) (*ImportResult, error) {
	lg := logger.FromContext(ctx)
	result := &ImportResult{
		Read:    len(loaded.Records) + loaded.Skipped,
		Skipped: loaded.Skipped,
	}

	for start := 0; start < len(loaded.Records); start += size {
		end := min(start+size, len(loaded.Records))
		if err := add(loaded.Records[start:end]); err != nil {
			return nil, fmt.Errorf("failed to import %s %d-%d: %w", kind, start, end, err)
		}
		result.Batches++
		lg.Infow("imported batch", "kind", kind, "rows", end, "of", len(loaded.Records))
	}

	if loaded.Skipped > 0 {
		lg.Warnw("skipped rows without keys", "kind", kind, "skipped", loaded.Skipped)
	}
	return result, nil
}
