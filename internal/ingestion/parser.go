package ingestion

import (
	"PoolLedger/internal/op"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ParseRawOp converts a RawOp (JSON bytes + op type string) into a typed
// op.Op. The ingestion shell validates, parses, and converts raw messages
// before sending to the deterministic core.
func ParseRawOp(raw RawOp, opType string) (op.Op, error) {
	switch opType {
	case "Stake":
		return parseStake(raw.Data)
	case "Redeem":
		return parseRedeem(raw.Data)
	case "Settle":
		return parseSettle(raw.Data)
	case "AddApplication":
		return parseAddApplication(raw.Data)
	case "RemoveApplication":
		return parseRemoveApplication(raw.Data)
	case "InjectPool":
		return parseInjectPool(raw.Data)
	case "Genesis":
		return parseGenesis(raw.Data)
	default:
		return nil, fmt.Errorf("unknown op type: %s", opType)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers. The same shape is
// stored as the op-log payload, so replay goes through the same parsers.

type stakeJSON struct {
	OpID        string `json:"op_id"`
	Caller      string `json:"caller"`
	App         string `json:"app_id"`
	Amount      int64  `json:"amount"`
	TimestampUs int64  `json:"timestamp_us"`
	Sequence    int64  `json:"sequence"`
}

func parseStake(data []byte) (*op.Stake, error) {
	var j stakeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Stake: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse Stake: empty caller")
	}
	if j.App == "" {
		return nil, fmt.Errorf("parse Stake: empty app_id")
	}

	return &op.Stake{
		OpID:        opID,
		Caller:      j.Caller,
		App:         j.App,
		Amount:      j.Amount,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

func parseRedeem(data []byte) (*op.Redeem, error) {
	var j stakeJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Redeem: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse Redeem: empty caller")
	}
	if j.App == "" {
		return nil, fmt.Errorf("parse Redeem: empty app_id")
	}

	return &op.Redeem{
		OpID:        opID,
		Caller:      j.Caller,
		App:         j.App,
		Amount:      j.Amount,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

type settleJSON struct {
	OpID        string `json:"op_id"`
	Caller      string `json:"caller"`
	TimestampUs int64  `json:"timestamp_us"`
	Sequence    int64  `json:"sequence"`
}

func parseSettle(data []byte) (*op.Settle, error) {
	var j settleJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Settle: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse Settle: empty caller")
	}

	return &op.Settle{
		OpID:        opID,
		Caller:      j.Caller,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

type addApplicationJSON struct {
	OpID        string `json:"op_id"`
	Caller      string `json:"caller"`
	App         string `json:"app_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TimestampUs int64  `json:"timestamp_us"`
	Sequence    int64  `json:"sequence"`
}

func parseAddApplication(data []byte) (*op.AddApplication, error) {
	var j addApplicationJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AddApplication: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse AddApplication: empty caller")
	}
	if j.App == "" {
		return nil, fmt.Errorf("parse AddApplication: empty app_id")
	}

	return &op.AddApplication{
		OpID:        opID,
		Caller:      j.Caller,
		App:         j.App,
		Name:        j.Name,
		Description: j.Description,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

type removeApplicationJSON struct {
	OpID        string `json:"op_id"`
	Caller      string `json:"caller"`
	App         string `json:"app_id"`
	TimestampUs int64  `json:"timestamp_us"`
	Sequence    int64  `json:"sequence"`
}

func parseRemoveApplication(data []byte) (*op.RemoveApplication, error) {
	var j removeApplicationJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse RemoveApplication: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse RemoveApplication: empty caller")
	}
	if j.App == "" {
		return nil, fmt.Errorf("parse RemoveApplication: empty app_id")
	}

	return &op.RemoveApplication{
		OpID:        opID,
		Caller:      j.Caller,
		App:         j.App,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

type injectPoolJSON struct {
	OpID        string `json:"op_id"`
	Caller      string `json:"caller"`
	Amount      int64  `json:"amount"`
	TimestampUs int64  `json:"timestamp_us"`
	Sequence    int64  `json:"sequence"`
}

func parseInjectPool(data []byte) (*op.InjectPool, error) {
	var j injectPoolJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse InjectPool: %w", err)
	}

	opID, err := uuid.Parse(j.OpID)
	if err != nil {
		return nil, fmt.Errorf("parse op_id: %w", err)
	}
	if j.Caller == "" {
		return nil, fmt.Errorf("parse InjectPool: empty caller")
	}

	return &op.InjectPool{
		OpID:        opID,
		Caller:      j.Caller,
		Amount:      j.Amount,
		TimestampUs: j.TimestampUs,
		Sequence:    j.Sequence,
	}, nil
}

type genesisJSON struct {
	PoolSeed    int64 `json:"pool_seed"`
	TimestampUs int64 `json:"timestamp_us"`
}

func parseGenesis(data []byte) (*op.Genesis, error) {
	var j genesisJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse Genesis: %w", err)
	}

	return &op.Genesis{
		PoolSeed:    j.PoolSeed,
		TimestampUs: j.TimestampUs,
	}, nil
}
