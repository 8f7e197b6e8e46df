package projection

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"PoolLedger/internal/observability"
)

// ProjectionOutput mirrors the data projection workers need.
// The orchestrator (cmd/main.go) bridges between core.CoreOutput and this.
type ProjectionOutput struct {
	Sequence     int64
	OpType       string
	Accepted     bool
	Entries      []EntryDelta
	BetUpdates   []BetUpdate
	AppUpdates   []AppUpdate
	LastSettleUs int64
	TimestampUs  int64
}

// EntryDelta is a simplified ledger entry for projection consumption.
type EntryDelta struct {
	AccountPath string
	Delta       int64
	EntryType   string
}

// BetUpdate carries the absolute bet amount for one (owner, application)
// pair after the operation applied.
type BetUpdate struct {
	Owner       string
	AppID       string
	Amount      int64
	UpdatedAtUs int64
}

// AppUpdate carries application metadata after a registry change.
type AppUpdate struct {
	AppID       string
	Name        string
	Description string
	AddedAtUs   int64
	IsActive    bool
	Removed     bool
}

// ProjectionWorker updates read tables from processed operations. The
// projection channel is non-blocking with drop: if projections fall
// behind, they can be rebuilt from the op log.
type ProjectionWorker struct {
	db        *sql.DB
	inputChan <-chan ProjectionOutput
	metrics   *observability.Metrics
	lastSeq   int64
}

func NewProjectionWorker(db *sql.DB, inputChan <-chan ProjectionOutput, metrics *observability.Metrics) *ProjectionWorker {
	return &ProjectionWorker{
		db:        db,
		inputChan: inputChan,
		metrics:   metrics,
	}
}

// Run starts the projection worker loop.
func (pw *ProjectionWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-pw.inputChan:
			if !ok {
				return nil
			}

			if err := pw.processOutput(ctx, output); err != nil {
				log.Printf("WARN: projection update failed at seq=%d: %v", output.Sequence, err)
				// Continue. Projections are eventually consistent and
				// can be rebuilt from the op log.
			}

			pw.lastSeq = output.Sequence
		}
	}
}

func (pw *ProjectionWorker) processOutput(ctx context.Context, output ProjectionOutput) error {
	start := time.Now()

	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range output.Entries {
		if err := pw.applyEntryDelta(ctx, tx, e, output.Sequence); err != nil {
			return fmt.Errorf("balance projection: %w", err)
		}
	}

	for _, b := range output.BetUpdates {
		if err := pw.applyBetUpdate(ctx, tx, b, output.Sequence); err != nil {
			return fmt.Errorf("bet projection: %w", err)
		}
	}

	for _, a := range output.AppUpdates {
		if err := pw.applyAppUpdate(ctx, tx, a, output.Sequence); err != nil {
			return fmt.Errorf("application projection: %w", err)
		}
	}

	// Settlement register: only the Settle path moves it, but upserting
	// unconditionally keeps the status row warm from the first op on.
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.status (id, last_settle_us, last_sequence, updated_at)
		VALUES (TRUE, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET last_settle_us = $1, last_sequence = $2, updated_at = NOW()
	`, output.LastSettleUs, output.Sequence); err != nil {
		return fmt.Errorf("status update: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		VALUES ('main', $1, NOW())
		ON CONFLICT (worker_id) DO UPDATE SET last_sequence = $1, updated_at = NOW()
	`, output.Sequence); err != nil {
		return fmt.Errorf("watermark update: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if pw.metrics != nil {
		pw.metrics.ProjectionUpdateDur.WithLabelValues("main").Observe(time.Since(start).Seconds())
	}
	return nil
}

// applyEntryDelta folds one signed entry into the balance read table.
// Entries are single-sided, so the delta applies to exactly one account.
func (pw *ProjectionWorker) applyEntryDelta(ctx context.Context, tx *sql.Tx, e EntryDelta, seq int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, balance, last_sequence)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_path)
		DO UPDATE SET balance = projections.balances.balance + $2, last_sequence = $3
	`, e.AccountPath, e.Delta, seq)
	return err
}

// applyBetUpdate stores the absolute post-op bet amount. Rows are kept at
// zero rather than deleted so redeemed-out pairs remain queryable.
func (pw *ProjectionWorker) applyBetUpdate(ctx context.Context, tx *sql.Tx, b BetUpdate, seq int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.bets (owner, app_id, amount, updated_at_us, last_sequence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner, app_id)
		DO UPDATE SET amount = $3, updated_at_us = $4, last_sequence = $5
	`, b.Owner, b.AppID, b.Amount, b.UpdatedAtUs, seq)
	return err
}

func (pw *ProjectionWorker) applyAppUpdate(ctx context.Context, tx *sql.Tx, a AppUpdate, seq int64) error {
	if a.Removed {
		// Removal deletes the metadata record only. The app's total-bet
		// and contribution registers in projections.balances persist.
		_, err := tx.ExecContext(ctx, `DELETE FROM projections.applications WHERE app_id = $1`, a.AppID)
		return err
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO projections.applications (app_id, name, description, added_at_us, is_active, last_sequence)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (app_id)
		DO UPDATE SET name = $2, description = $3, added_at_us = $4, is_active = $5, last_sequence = $6
	`, a.AppID, a.Name, a.Description, a.AddedAtUs, a.IsActive, seq)
	return err
}
