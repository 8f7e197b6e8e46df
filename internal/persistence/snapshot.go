package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SnapshotManager handles creating and loading state snapshots for recovery.
// Snapshots contain account balances, bet records, application metadata,
// the whitelist, the settlement and reset registers, sequence counters,
// the idempotency LRU, and the last state hash.
type SnapshotManager struct {
	db *sql.DB
}

// SnapshotData contains the full in-memory state at a point in time.
type SnapshotData struct {
	Sequence           int64             `json:"sequence"`
	StateHash          []byte            `json:"state_hash"`
	PrevHash           []byte            `json:"prev_hash"`
	Balances           map[string]int64  `json:"balances"` // AccountPath -> balance
	Bets               []BetSnapshot     `json:"bets"`
	Apps               []AppSnapshot     `json:"apps"`
	Whitelist          []string          `json:"whitelist"`
	Owner              string            `json:"owner"`
	LastSettleUs       int64             `json:"last_settle_us"`
	LastDailyResetUs   int64             `json:"last_daily_reset_us"`
	LastWeeklyResetUs  int64             `json:"last_weekly_reset_us"`
	LastMonthlyResetUs int64             `json:"last_monthly_reset_us"`
	SequenceState      map[string]int64  `json:"sequence_state"`   // partition -> next expected seq
	IdempotencyKeys    []string          `json:"idempotency_keys"` // Recent keys for LRU warming
	CreatedAt          time.Time         `json:"created_at"`
}

// BetSnapshot is a serializable (owner, application) bet record.
type BetSnapshot struct {
	Owner       string `json:"owner"`
	AppID       string `json:"app_id"`
	Amount      int64  `json:"amount"`
	UpdatedAtUs int64  `json:"updated_at_us"`
}

// AppSnapshot is a serializable application metadata record.
type AppSnapshot struct {
	AppID       string `json:"app_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AddedAtUs   int64  `json:"added_at_us"`
	IsActive    bool   `json:"is_active"`
}

func NewSnapshotManager(db *sql.DB) *SnapshotManager {
	return &SnapshotManager{db: db}
}

// SaveSnapshot persists a snapshot to Postgres. Snapshots are taken
// periodically and verified before they become restore candidates.
func (sm *SnapshotManager) SaveSnapshot(ctx context.Context, snap *SnapshotData) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snapshotID := uuid.New()
	sizeBytes := len(data)
	formatVersion := int32(1) // v1: JSON-encoded SnapshotData

	_, err = sm.db.ExecContext(ctx, `
		INSERT INTO op_log.snapshots
			(snapshot_id, sequence, data, state_hash, format_version, size_bytes, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		ON CONFLICT (sequence) DO UPDATE SET data = $3, state_hash = $4, size_bytes = $6
	`, snapshotID, snap.Sequence, data, snap.StateHash, formatVersion, sizeBytes, snap.CreatedAt)

	return err
}

// LoadLatestSnapshot loads the most recent verified snapshot.
// On warm restart: load latest snapshot, then replay ops from sequence+1.
func (sm *SnapshotManager) LoadLatestSnapshot(ctx context.Context) (*SnapshotData, error) {
	row := sm.db.QueryRowContext(ctx, `
		SELECT data FROM op_log.snapshots
		WHERE verified = TRUE
		ORDER BY sequence DESC
		LIMIT 1
	`)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No snapshot — cold start
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}

// MarkVerified marks a snapshot as verified after integrity check.
func (sm *SnapshotManager) MarkVerified(ctx context.Context, sequence int64) error {
	_, err := sm.db.ExecContext(ctx, `
		UPDATE op_log.snapshots SET verified = TRUE WHERE sequence = $1
	`, sequence)
	return err
}

// LoadOpsFrom loads operations from a given sequence for replay.
// Used for warm restart (replay from snapshot) and cold restart (replay all).
func (sm *SnapshotManager) LoadOpsFrom(ctx context.Context, fromSequence int64, limit int) ([]OpRow, error) {
	rows, err := sm.db.QueryContext(ctx, `
		SELECT sequence, op_type, idempotency_key, caller, app_id, accepted, reject_reason,
		       payload, state_hash, prev_hash, timestamp_us, source_sequence
		FROM op_log.ops
		WHERE sequence >= $1
		ORDER BY sequence ASC
		LIMIT $2
	`, fromSequence, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []OpRow
	for rows.Next() {
		var o OpRow
		if err := rows.Scan(
			&o.Sequence, &o.OpType, &o.IdempotencyKey, &o.Caller, &o.AppID,
			&o.Accepted, &o.RejectReason, &o.Payload, &o.StateHash, &o.PrevHash,
			&o.TimestampUs, &o.SourceSequence,
		); err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}

	return ops, rows.Err()
}

// GetLatestSequence returns the highest sequence in the op log.
func (sm *SnapshotManager) GetLatestSequence(ctx context.Context) (int64, error) {
	var seq sql.NullInt64
	err := sm.db.QueryRowContext(ctx, `
		SELECT MAX(sequence) FROM op_log.ops
	`).Scan(&seq)
	if err != nil {
		return 0, err
	}
	if !seq.Valid {
		return 0, nil // Empty op log
	}
	return seq.Int64, nil
}
