package ingestion

import (
	"PoolLedger/internal/op"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GRPCIngestService provides admin/manual operation submission via gRPC.
// gRPC ingest is for admin operations and manual submission, not for
// high-throughput ingestion (use NATS for that). Submitted operations carry
// no producer sequence and bypass per-caller ordering validation.
type GRPCIngestService struct {
	opChan chan<- op.Op
}

func NewGRPCIngestService(opChan chan<- op.Op) *GRPCIngestService {
	return &GRPCIngestService{opChan: opChan}
}

// SubmitStake manually submits a Stake operation.
func (s *GRPCIngestService) SubmitStake(
	ctx context.Context,
	caller, appID string,
	amount int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if caller == "" || appID == "" {
		return fmt.Errorf("caller and app_id are required")
	}

	o := &op.Stake{
		OpID:        uuid.New(),
		Caller:      caller,
		App:         appID,
		Amount:      amount,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

// SubmitRedeem manually submits a Redeem operation.
func (s *GRPCIngestService) SubmitRedeem(
	ctx context.Context,
	caller, appID string,
	amount int64,
) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if caller == "" || appID == "" {
		return fmt.Errorf("caller and app_id are required")
	}

	o := &op.Redeem{
		OpID:        uuid.New(),
		Caller:      caller,
		App:         appID,
		Amount:      amount,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

// SubmitSettle submits a Settle operation. Used by the settlement cron and
// by manual admin triggers; the core's rate gate decides whether it runs.
func (s *GRPCIngestService) SubmitSettle(ctx context.Context, caller string) error {
	if caller == "" {
		return fmt.Errorf("caller is required")
	}

	o := &op.Settle{
		OpID:        uuid.New(),
		Caller:      caller,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

// SubmitAddApplication submits an AddApplication operation.
func (s *GRPCIngestService) SubmitAddApplication(
	ctx context.Context,
	caller, appID, name, description string,
) error {
	if caller == "" || appID == "" {
		return fmt.Errorf("caller and app_id are required")
	}

	o := &op.AddApplication{
		OpID:        uuid.New(),
		Caller:      caller,
		App:         appID,
		Name:        name,
		Description: description,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

// SubmitRemoveApplication submits a RemoveApplication operation.
func (s *GRPCIngestService) SubmitRemoveApplication(ctx context.Context, caller, appID string) error {
	if caller == "" || appID == "" {
		return fmt.Errorf("caller and app_id are required")
	}

	o := &op.RemoveApplication{
		OpID:        uuid.New(),
		Caller:      caller,
		App:         appID,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

// SubmitInjectPool submits an InjectPool operation.
func (s *GRPCIngestService) SubmitInjectPool(ctx context.Context, caller string, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if caller == "" {
		return fmt.Errorf("caller is required")
	}

	o := &op.InjectPool{
		OpID:        uuid.New(),
		Caller:      caller,
		Amount:      amount,
		TimestampUs: time.Now().UnixMicro(),
		Sequence:    -1,
	}

	return s.send(ctx, o)
}

func (s *GRPCIngestService) send(ctx context.Context, o op.Op) error {
	select {
	case s.opChan <- o:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
