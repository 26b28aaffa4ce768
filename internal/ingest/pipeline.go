package ingest

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"

	"aedmap/internal/domain"
	"aedmap/pkg/e"
)

// BatchWriter flushes accepted drafts into the open replace transaction.
// A flush is not a commit; the whole replacement stays atomic.
type BatchWriter interface {
	Insert(ctx context.Context, drafts []domain.AedDraft) error
}

// AedStore is the slice of storage the pipeline needs. ReplaceAll must run
// load inside a single transaction that deletes the existing dataset first
// and rolls everything back if load returns an error, so that a concurrent
// reader never observes an empty or partially replaced dataset.
type AedStore interface {
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, load func(ctx context.Context, w BatchWriter) error) error
}

// FeedSource is implemented by Fetcher.
type FeedSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Pipeline orchestrates one full dataset replacement:
// fetch -> parse -> reconcile columns -> normalize rows -> atomic replace.
// Runs are serialized by a non-blocking single-flight gate; a trigger while
// a refresh is in progress fails fast with ErrRefreshRunning instead of
// racing on the delete-then-repopulate transaction.
type Pipeline struct {
	source    FeedSource
	store     AedStore
	logger    *slog.Logger
	batchSize int
	gate      *semaphore.Weighted
}

func NewPipeline(source FeedSource, store AedStore, batchSize int, logger *slog.Logger) *Pipeline {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Pipeline{
		source:    source,
		store:     store,
		logger:    logger,
		batchSize: batchSize,
		gate:      semaphore.NewWeighted(1),
	}
}

// Run executes one refresh. Row-level problems are accumulated into the
// summary and never abort the batch; fetch, parse, column-mapping and
// transaction failures abort with the existing dataset untouched.
func (p *Pipeline) Run(ctx context.Context) (*domain.RefreshSummary, error) {
	const op = "ingest.Pipeline.Run"

	if !p.gate.TryAcquire(1) {
		return nil, e.ErrRefreshRunning
	}
	defer p.gate.Release(1)

	body, err := p.source.Fetch(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	header, rows, err := ParseCSV(body, p.logger)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	mapping, err := MapColumns(header)
	if err != nil {
		p.logger.Error("column mapping failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Any("header", header),
		)
		return nil, e.Wrap(op, err)
	}
	p.logger.Info("column mapping established", slog.Any("mapping", mapping))

	countBefore, err := p.store.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := &domain.RefreshSummary{RecordsBefore: countBefore}

	err = p.store.ReplaceAll(ctx, func(ctx context.Context, w BatchWriter) error {
		batch := make([]domain.AedDraft, 0, p.batchSize)

		for _, row := range rows {
			res := NormalizeRow(row, mapping)
			switch res.Class {
			case RowAccepted:
				batch = append(batch, *res.Draft)
				summary.Success++
			case RowSkipped:
				summary.Skipped++
				p.logger.Warn("row skipped", slog.String("reason", res.Reason))
				continue
			case RowErrored:
				summary.Errors++
				p.logger.Warn("row errored", slog.String("reason", res.Reason))
				continue
			}

			if len(batch) >= p.batchSize {
				if err := w.Insert(ctx, batch); err != nil {
					return err
				}
				batch = batch[:0]
				p.logger.Info("processed batch", slog.Int("accepted_so_far", summary.Success))
			}
		}

		if len(batch) > 0 {
			if err := w.Insert(ctx, batch); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Full rollback already happened inside ReplaceAll; the prior
		// dataset is preserved.
		p.logger.Error("refresh transaction failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Wrap(op, err)
	}

	countAfter, err := p.store.Count(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	summary.RecordsAfter = countAfter

	p.logger.Info("refresh complete",
		slog.Int64("records_before", summary.RecordsBefore),
		slog.Int64("records_after", summary.RecordsAfter),
		slog.Int("success", summary.Success),
		slog.Int("errors", summary.Errors),
		slog.Int("skipped", summary.Skipped),
	)
	return summary, nil
}
