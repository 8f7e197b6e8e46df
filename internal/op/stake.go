// internal/op/stake.go
package op

import "github.com/google/uuid"

type Stake struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	App         string    `json:"app_id"`
	Amount      int64     `json:"amount"` // Micro-units
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (s *Stake) IdempotencyKey() string {
	return s.OpID.String()
}

func (s *Stake) OpType() OpType {
	return OpTypeStake
}

func (s *Stake) CallerAddress() string {
	return s.Caller
}

func (s *Stake) AppID() *string {
	return &s.App
}

func (s *Stake) SourceSequence() int64 {
	return s.Sequence
}

type Redeem struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	App         string    `json:"app_id"`
	Amount      int64     `json:"amount"`
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (r *Redeem) IdempotencyKey() string {
	return r.OpID.String()
}

func (r *Redeem) OpType() OpType {
	return OpTypeRedeem
}

func (r *Redeem) CallerAddress() string {
	return r.Caller
}

func (r *Redeem) AppID() *string {
	return &r.App
}

func (r *Redeem) SourceSequence() int64 {
	return r.Sequence
}
