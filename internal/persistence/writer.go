package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// OpLogWriter writes operation envelopes and ledger entries to Postgres
// using multi-row INSERT with ON CONFLICT DO NOTHING, so a retried batch
// is idempotent.
type OpLogWriter struct {
	db           *sql.DB
	batchSize    int
	flushTimeout time.Duration
}

// OpRow represents a row in op_log.ops
type OpRow struct {
	Sequence       int64
	OpType         string
	IdempotencyKey string
	Caller         string
	AppID          *string
	Accepted       bool
	RejectReason   string
	Payload        []byte // Canonical JSON encoding of the operation
	StateHash      []byte
	PrevHash       []byte
	TimestampUs    int64
	SourceSequence int64
}

// EntryRow represents a row in op_log.entries
type EntryRow struct {
	EntryID     string
	BatchID     string
	OpRef       string
	Sequence    int64
	AccountPath string
	Delta       int64
	EntryType   int32
	TimestampUs int64
}

func NewOpLogWriter(db *sql.DB, batchSize int, flushTimeout time.Duration) *OpLogWriter {
	return &OpLogWriter{
		db:           db,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
	}
}

// WriteOpBatch writes a batch of operations to op_log.ops inside tx.
func (w *OpLogWriter) WriteOpBatch(ctx context.Context, tx *sql.Tx, ops []OpRow) error {
	if len(ops) == 0 {
		return nil
	}

	query := `INSERT INTO op_log.ops
		(sequence, op_type, idempotency_key, caller, app_id, accepted, reject_reason, payload, state_hash, prev_hash, timestamp_us, source_sequence)
		VALUES `

	values := make([]string, 0, len(ops))
	args := make([]interface{}, 0, len(ops)*12)

	for i, o := range ops {
		base := i * 12
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11, base+12,
		))
		args = append(args,
			o.Sequence, o.OpType, o.IdempotencyKey, o.Caller, o.AppID,
			o.Accepted, o.RejectReason, o.Payload, o.StateHash, o.PrevHash,
			o.TimestampUs, o.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING" // Idempotent writes

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// WriteEntryBatch writes a batch of ledger entries to op_log.entries inside tx.
func (w *OpLogWriter) WriteEntryBatch(ctx context.Context, tx *sql.Tx, entries []EntryRow) error {
	if len(entries) == 0 {
		return nil
	}

	query := `INSERT INTO op_log.entries
		(entry_id, batch_id, op_ref, sequence, account_path, delta, entry_type, timestamp_us)
		VALUES `

	values := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*8)

	for i, e := range entries {
		base := i * 8
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8,
		))
		args = append(args,
			e.EntryID, e.BatchID, e.OpRef, e.Sequence,
			e.AccountPath, e.Delta, e.EntryType, e.TimestampUs,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (entry_id) DO NOTHING"

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
