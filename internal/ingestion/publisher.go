package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// OutboundPublisher publishes processed operations to NATS for downstream
// consumers. Outbound notifications are published after persistence is
// confirmed. Subjects follow the pattern: pool.ledger.ops.{op_type}
type OutboundPublisher struct {
	js        jetstream.JetStream
	inputChan <-chan PublishableOp
}

// PublishableOp is a processed operation ready for outbound publishing.
type PublishableOp struct {
	Sequence       int64           `json:"sequence"`
	OpType         string          `json:"op_type"`
	IdempotencyKey string          `json:"idempotency_key"`
	Caller         string          `json:"caller"`
	AppID          *string         `json:"app_id,omitempty"`
	Accepted       bool            `json:"accepted"`
	RejectReason   string          `json:"reject_reason,omitempty"`
	Payload        json.RawMessage `json:"payload"`
	StateHash      []byte          `json:"state_hash"`
	TimestampUs    int64           `json:"timestamp_us"`
}

func NewOutboundPublisher(js jetstream.JetStream, inputChan <-chan PublishableOp) *OutboundPublisher {
	return &OutboundPublisher{
		js:        js,
		inputChan: inputChan,
	}
}

// Run starts the outbound publisher loop.
func (p *OutboundPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case o, ok := <-p.inputChan:
			if !ok {
				return nil
			}

			if err := p.publish(ctx, o); err != nil {
				log.Printf("WARN: outbound publish failed seq=%d: %v", o.Sequence, err)
				// Non-fatal: downstream consumers can query the op log directly
			}
		}
	}
}

func (p *OutboundPublisher) publish(ctx context.Context, o PublishableOp) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal op: %w", err)
	}

	subject := fmt.Sprintf("pool.ledger.ops.%s", o.OpType)

	_, err = p.js.Publish(ctx, subject, data)
	return err
}

// EnsureOutboundStream creates the outbound operations stream.
func EnsureOutboundStream(ctx context.Context, js jetstream.JetStream) error {
	_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      "POOL_LEDGER_OPS",
		Subjects:  []string{"pool.ledger.ops.>"},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    72 * time.Hour,
		Replicas:  1,
	})
	if err != nil {
		return fmt.Errorf("create outbound stream: %w", err)
	}
	log.Println("INFO: ensured outbound stream POOL_LEDGER_OPS")
	return nil
}
