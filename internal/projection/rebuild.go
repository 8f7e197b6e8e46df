package projection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// RebuildProjections rebuilds all read tables from the op log. Balances
// fold directly from ledger entries; bet and application tables replay
// the accepted op payloads because per-owner bets are not accounts.
func RebuildProjections(ctx context.Context, db *sql.DB) error {
	truncateStatements := []string{
		`TRUNCATE projections.balances`,
		`TRUNCATE projections.bets`,
		`TRUNCATE projections.applications`,
		`DELETE FROM projections.status`,
		`DELETE FROM projections.watermark WHERE worker_id = 'main'`,
	}

	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.balances (account_path, balance, last_sequence)
		SELECT account_path, SUM(delta), MAX(sequence)
		FROM op_log.entries
		GROUP BY account_path
	`); err != nil {
		return fmt.Errorf("rebuild balances: %w", err)
	}

	if err := rebuildFromOps(ctx, db); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO projections.watermark (worker_id, last_sequence, updated_at)
		SELECT 'main', COALESCE(MAX(sequence), 0), NOW() FROM op_log.ops
		ON CONFLICT (worker_id) DO UPDATE
			SET last_sequence = EXCLUDED.last_sequence, updated_at = NOW()
	`); err != nil {
		return fmt.Errorf("rebuild watermark: %w", err)
	}

	log.Println("INFO: projection rebuild complete")
	return nil
}

type rebuildPayload struct {
	Caller      string `json:"caller"`
	AppID       string `json:"app_id"`
	Amount      int64  `json:"amount"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TimestampUs int64  `json:"timestamp_us"`
}

type rebuildBet struct {
	amount      int64
	updatedAtUs int64
	lastSeq     int64
}

type rebuildApp struct {
	name        string
	description string
	addedAtUs   int64
	lastSeq     int64
}

// rebuildFromOps replays accepted op payloads in sequence order to
// reconstruct the bet, application, and status tables.
func rebuildFromOps(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, `
		SELECT sequence, op_type, payload, timestamp_us
		FROM op_log.ops
		WHERE accepted
		  AND op_type IN ('Stake', 'Redeem', 'AddApplication', 'RemoveApplication', 'Settle')
		ORDER BY sequence ASC
	`)
	if err != nil {
		return fmt.Errorf("load ops for rebuild: %w", err)
	}
	defer rows.Close()

	bets := make(map[[2]string]*rebuildBet)
	apps := make(map[string]*rebuildApp)
	var lastSettleUs, lastSettleSeq int64

	for rows.Next() {
		var seq, tsUs int64
		var opType string
		var payload []byte
		if err := rows.Scan(&seq, &opType, &payload, &tsUs); err != nil {
			return err
		}

		var p rebuildPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload at seq=%d: %w", seq, err)
		}
		owner := strings.ToLower(p.Caller)

		switch opType {
		case "Stake", "Redeem":
			key := [2]string{owner, p.AppID}
			b := bets[key]
			if b == nil {
				b = &rebuildBet{}
				bets[key] = b
			}
			if opType == "Stake" {
				b.amount += p.Amount
			} else {
				b.amount -= p.Amount
			}
			b.updatedAtUs = p.TimestampUs
			b.lastSeq = seq

		case "AddApplication":
			apps[p.AppID] = &rebuildApp{
				name:        p.Name,
				description: p.Description,
				addedAtUs:   p.TimestampUs,
				lastSeq:     seq,
			}

		case "RemoveApplication":
			delete(apps, p.AppID)

		case "Settle":
			lastSettleUs = p.TimestampUs
			lastSettleSeq = seq
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, b := range bets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.bets (owner, app_id, amount, updated_at_us, last_sequence)
			VALUES ($1, $2, $3, $4, $5)
		`, key[0], key[1], b.amount, b.updatedAtUs, b.lastSeq); err != nil {
			return fmt.Errorf("rebuild bets: %w", err)
		}
	}

	for appID, a := range apps {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.applications (app_id, name, description, added_at_us, is_active, last_sequence)
			VALUES ($1, $2, $3, $4, TRUE, $5)
		`, appID, a.name, a.description, a.addedAtUs, a.lastSeq); err != nil {
			return fmt.Errorf("rebuild applications: %w", err)
		}
	}

	if lastSettleSeq > 0 {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projections.status (id, last_settle_us, last_sequence, updated_at)
			VALUES (TRUE, $1, $2, NOW())
			ON CONFLICT (id) DO UPDATE
				SET last_settle_us = $1, last_sequence = $2, updated_at = NOW()
		`, lastSettleUs, lastSettleSeq); err != nil {
			return fmt.Errorf("rebuild status: %w", err)
		}
	}

	return tx.Commit()
}
