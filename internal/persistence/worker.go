package persistence

import (
	"PoolLedger/internal/observability"
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// CoreOutput mirrors core.CoreOutput to avoid import cycle.
// The orchestrator (cmd/main.go) bridges between core.CoreOutput and this.
type CoreOutput struct {
	OpRow     OpRow
	EntryRows []EntryRow
}

// PersistenceWorker drains the persist channel and batch-writes to Postgres.
// This goroutine runs independently from the deterministic core. The persist
// channel uses BLOCKING sends from the core, so if this worker falls behind,
// the core stalls — guaranteeing no operation is lost.
type PersistenceWorker struct {
	writer       *OpLogWriter
	inputChan    <-chan CoreOutput
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
}

func NewPersistenceWorker(
	db *sql.DB,
	inputChan <-chan CoreOutput,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *PersistenceWorker {
	return &PersistenceWorker{
		writer:       NewOpLogWriter(db, batchSize, flushTimeout),
		inputChan:    inputChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
	}
}

// Run starts the persistence worker loop. It batches incoming outputs
// and flushes either when the batch is full or the flush timeout expires.
// Blocks until ctx is cancelled.
func (pw *PersistenceWorker) Run(ctx context.Context) error {
	opBatch := make([]OpRow, 0, pw.batchSize)
	entryBatch := make([]EntryRow, 0, pw.batchSize*4) // ~4 entries per op avg

	timer := time.NewTimer(pw.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			// Graceful shutdown: flush remaining
			if len(opBatch) > 0 {
				if err := pw.flush(context.Background(), opBatch, entryBatch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				// Channel closed — flush and exit
				if len(opBatch) > 0 {
					if err := pw.flush(context.Background(), opBatch, entryBatch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
					}
				}
				return nil
			}

			opBatch = append(opBatch, output.OpRow)
			entryBatch = append(entryBatch, output.EntryRows...)

			// Flush if batch is full
			if len(opBatch) >= pw.batchSize {
				if err := pw.flushWithRetry(ctx, opBatch, entryBatch); err != nil {
					log.Printf("ERROR: batch flush failed after retries: %v", err)
				}
				opBatch = opBatch[:0]
				entryBatch = entryBatch[:0]
				timer.Reset(pw.flushTimeout)
			}

		case <-timer.C:
			// Flush timeout — write whatever we have
			if len(opBatch) > 0 {
				if err := pw.flushWithRetry(ctx, opBatch, entryBatch); err != nil {
					log.Printf("ERROR: timeout flush failed after retries: %v", err)
				}
				opBatch = opBatch[:0]
				entryBatch = entryBatch[:0]
			}
			timer.Reset(pw.flushTimeout)
		}
	}
}

// flushWithRetry attempts to flush with exponential backoff. The worker
// NEVER drops operations — it retries until the write succeeds or the
// context is cancelled (graceful shutdown).
func (pw *PersistenceWorker) flushWithRetry(ctx context.Context, ops []OpRow, entries []EntryRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: persistence retry attempt %d (backoff=%v, ops=%d)",
				attempt, backoff, len(ops))
			select {
			case <-ctx.Done():
				// Graceful shutdown — attempt one final flush with background
				// context to avoid losing the batch.
				finalErr := pw.flush(context.Background(), ops, entries)
				if finalErr != nil {
					return fmt.Errorf("final flush on shutdown failed: %w", finalErr)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		err := pw.flush(ctx, ops, entries)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: persistence flush succeeded after %d retries", attempt)
			}
			return nil
		}

		if pw.metrics != nil {
			pw.metrics.PersistRetry.Inc()
		}
	}
}

func (pw *PersistenceWorker) flush(ctx context.Context, ops []OpRow, entries []EntryRow) error {
	start := time.Now()

	// Ops and entries commit in a single transaction
	tx, err := pw.writer.db.BeginTx(ctx, nil)
	if err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("tx_begin").Inc()
		}
		return err
	}
	defer tx.Rollback()

	if err := pw.writer.WriteOpBatch(ctx, tx, ops); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("write_ops").Inc()
		}
		return err
	}

	if err := pw.writer.WriteEntryBatch(ctx, tx, entries); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("write_entries").Inc()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if pw.metrics != nil {
			pw.metrics.PersistErrors.WithLabelValues("tx_commit").Inc()
		}
		return err
	}

	// Record metrics on success
	if pw.metrics != nil {
		pw.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		pw.metrics.PersistBatchSize.Observe(float64(len(ops)))
		pw.metrics.PersistOpsWritten.Add(float64(len(ops)))
		pw.metrics.PersistEntriesWritten.Add(float64(len(entries)))
		if len(ops) > 0 {
			pw.metrics.PersistLastSequence.Set(float64(ops[len(ops)-1].Sequence))
		}
	}

	return nil
}

// GetWriter returns the underlying writer.
func (pw *PersistenceWorker) GetWriter() *OpLogWriter {
	return pw.writer
}
