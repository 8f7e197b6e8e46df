package op

// OpType discriminator for operation payloads
type OpType int32

const (
	OpTypeUnknown OpType = iota
	OpTypeStake
	OpTypeRedeem
	OpTypeSettle
	OpTypeAddApplication
	OpTypeRemoveApplication
	OpTypeInjectPool
	OpTypeGenesis
)

// OpEnvelope wraps every operation in the log
type OpEnvelope struct {
	// Global monotonic sequence assigned by core
	Sequence int64

	// Stable idempotency key from upstream
	IdempotencyKey string

	// Operation type discriminator
	OpType OpType

	// Caller address (normalized lowercase)
	Caller string

	// Application context (nullable for global operations)
	AppID *string

	// Versioned input timestamp in epoch microseconds (NOT wall-clock)
	TimestampUs int64

	// Upstream sequence for ordering validation
	SourceSequence int64

	// Canonical JSON encoding of the operation (replay re-parses this)
	Payload []byte

	// Whether the core accepted the operation (rejected ops are no-ops)
	Accepted bool

	// Machine-readable reject reason, empty when accepted
	RejectReason string

	// SHA-256 of state AFTER applying this operation
	StateHash [32]byte

	// Previous operation's state hash (chain integrity)
	PrevHash [32]byte
}

// Op is the interface all operation payloads must implement
type Op interface {
	// IdempotencyKey returns the stable dedup key
	IdempotencyKey() string

	// OpType returns the discriminator
	OpType() OpType

	// CallerAddress returns the submitting address
	CallerAddress() string

	// AppID returns the application context (nil for global operations)
	AppID() *string

	// SourceSequence returns upstream ordering key
	SourceSequence() int64
}

func (ot OpType) String() string {
	switch ot {
	case OpTypeStake:
		return "Stake"
	case OpTypeRedeem:
		return "Redeem"
	case OpTypeSettle:
		return "Settle"
	case OpTypeAddApplication:
		return "AddApplication"
	case OpTypeRemoveApplication:
		return "RemoveApplication"
	case OpTypeInjectPool:
		return "InjectPool"
	case OpTypeGenesis:
		return "Genesis"
	default:
		return "Unknown"
	}
}
