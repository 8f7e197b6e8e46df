// internal/op/admin.go
package op

import "github.com/google/uuid"

// Settle triggers a rate-limited settlement pass.
type Settle struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (s *Settle) IdempotencyKey() string {
	return s.OpID.String()
}

func (s *Settle) OpType() OpType {
	return OpTypeSettle
}

func (s *Settle) CallerAddress() string {
	return s.Caller
}

func (s *Settle) AppID() *string {
	return nil // Global operation
}

func (s *Settle) SourceSequence() int64 {
	return s.Sequence
}

type AddApplication struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	App         string    `json:"app_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (a *AddApplication) IdempotencyKey() string {
	return a.OpID.String()
}

func (a *AddApplication) OpType() OpType {
	return OpTypeAddApplication
}

func (a *AddApplication) CallerAddress() string {
	return a.Caller
}

func (a *AddApplication) AppID() *string {
	return &a.App
}

func (a *AddApplication) SourceSequence() int64 {
	return a.Sequence
}

type RemoveApplication struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	App         string    `json:"app_id"`
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (r *RemoveApplication) IdempotencyKey() string {
	return r.OpID.String()
}

func (r *RemoveApplication) OpType() OpType {
	return OpTypeRemoveApplication
}

func (r *RemoveApplication) CallerAddress() string {
	return r.Caller
}

func (r *RemoveApplication) AppID() *string {
	return &r.App
}

func (r *RemoveApplication) SourceSequence() int64 {
	return r.Sequence
}

type InjectPool struct {
	OpID        uuid.UUID `json:"op_id"`
	Caller      string    `json:"caller"`
	Amount      int64     `json:"amount"`
	TimestampUs int64     `json:"timestamp_us"`
	Sequence    int64     `json:"sequence"`
}

func (i *InjectPool) IdempotencyKey() string {
	return i.OpID.String()
}

func (i *InjectPool) OpType() OpType {
	return OpTypeInjectPool
}

func (i *InjectPool) CallerAddress() string {
	return i.Caller
}

func (i *InjectPool) AppID() *string {
	return nil // Global operation
}

func (i *InjectPool) SourceSequence() int64 {
	return i.Sequence
}

// Genesis seeds the pool and the settlement/reset registers. Submitted
// internally exactly once per deployment, never over the wire.
type Genesis struct {
	PoolSeed    int64 `json:"pool_seed"`
	TimestampUs int64 `json:"timestamp_us"`
}

func (g *Genesis) IdempotencyKey() string {
	return "genesis"
}

func (g *Genesis) OpType() OpType {
	return OpTypeGenesis
}

func (g *Genesis) CallerAddress() string {
	return "system"
}

func (g *Genesis) AppID() *string {
	return nil // Global operation
}

func (g *Genesis) SourceSequence() int64 {
	return 0
}
