package ingestion_test

import (
	"PoolLedger/internal/ingestion"
	"PoolLedger/internal/op"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("parse uuid: %v", err)
	}
	return id
}

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawOp {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawOp{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParseStake(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"caller":       "0xAbC0000000000000000000000000000000000001",
		"app_id":       "app-alpha",
		"amount":       int64(40),
		"timestamp_us": int64(1700000000000000),
		"sequence":     int64(7),
	}

	raw := rawFromJSON(t, payload)
	parsed, err := ingestion.ParseRawOp(raw, "Stake")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	s, ok := parsed.(*op.Stake)
	if !ok {
		t.Fatalf("expected *op.Stake, got %T", parsed)
	}

	if s.App != "app-alpha" {
		t.Errorf("app_id: got %s, want app-alpha", s.App)
	}
	if s.Amount != 40 {
		t.Errorf("amount: got %d, want 40", s.Amount)
	}
	if s.Sequence != 7 {
		t.Errorf("sequence: got %d, want 7", s.Sequence)
	}
	if s.TimestampUs != 1700000000000000 {
		t.Errorf("timestamp_us: got %d", s.TimestampUs)
	}
	// Address case is preserved at the edge; the core normalizes
	if s.Caller != "0xAbC0000000000000000000000000000000000001" {
		t.Errorf("caller: got %s", s.Caller)
	}
	if s.OpType() != op.OpTypeStake {
		t.Errorf("op type: got %v, want Stake", s.OpType())
	}
}

func TestParseRedeem(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"caller":       "0xabc0000000000000000000000000000000000001",
		"app_id":       "app-alpha",
		"amount":       int64(25),
		"timestamp_us": int64(1700000000000000),
		"sequence":     int64(8),
	}

	raw := rawFromJSON(t, payload)
	parsed, err := ingestion.ParseRawOp(raw, "Redeem")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	r, ok := parsed.(*op.Redeem)
	if !ok {
		t.Fatalf("expected *op.Redeem, got %T", parsed)
	}

	if r.Amount != 25 {
		t.Errorf("amount: got %d, want 25", r.Amount)
	}
	if r.OpType() != op.OpTypeRedeem {
		t.Errorf("op type: got %v, want Redeem", r.OpType())
	}
}

func TestParseSettle(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"caller":       "0xadmin0000000000000000000000000000000001",
		"timestamp_us": int64(1700000000000000),
		"sequence":     int64(3),
	}

	raw := rawFromJSON(t, payload)
	parsed, err := ingestion.ParseRawOp(raw, "Settle")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	s, ok := parsed.(*op.Settle)
	if !ok {
		t.Fatalf("expected *op.Settle, got %T", parsed)
	}

	if s.AppID() != nil {
		t.Error("Settle is a global operation, app_id must be nil")
	}
	if s.TimestampUs != 1700000000000000 {
		t.Errorf("timestamp_us: got %d", s.TimestampUs)
	}
}

func TestParseAddApplication(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"caller":       "0xadmin0000000000000000000000000000000001",
		"app_id":       "app-alpha",
		"name":         "Alpha",
		"description":  "first application",
		"timestamp_us": int64(1700000000000000),
		"sequence":     int64(0),
	}

	raw := rawFromJSON(t, payload)
	parsed, err := ingestion.ParseRawOp(raw, "AddApplication")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	a, ok := parsed.(*op.AddApplication)
	if !ok {
		t.Fatalf("expected *op.AddApplication, got %T", parsed)
	}

	if a.Name != "Alpha" {
		t.Errorf("name: got %s, want Alpha", a.Name)
	}
	if a.Description != "first application" {
		t.Errorf("description: got %s", a.Description)
	}
}

func TestParseInjectPool(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"caller":       "0xadmin0000000000000000000000000000000001",
		"amount":       int64(10_000),
		"timestamp_us": int64(1700000000000000),
		"sequence":     int64(1),
	}

	raw := rawFromJSON(t, payload)
	parsed, err := ingestion.ParseRawOp(raw, "InjectPool")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	i, ok := parsed.(*op.InjectPool)
	if !ok {
		t.Fatalf("expected *op.InjectPool, got %T", parsed)
	}

	if i.Amount != 10_000 {
		t.Errorf("amount: got %d, want 10_000", i.Amount)
	}
	if i.AppID() != nil {
		t.Error("InjectPool is a global operation, app_id must be nil")
	}
}

func TestParseRoundTrip_CorePayload(t *testing.T) {
	// The core stores json.Marshal of the typed op as the log payload;
	// replay must parse it back through the same entry point.
	original := &op.Stake{
		Caller:      "0xuser",
		App:         "app-alpha",
		Amount:      40,
		TimestampUs: 1700000000000000,
		Sequence:    7,
	}
	original.OpID = mustUUID(t, "550e8400-e29b-41d4-a716-446655440000")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, err := ingestion.ParseRawOp(ingestion.RawOp{Data: data}, "Stake")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	got := parsed.(*op.Stake)
	if *got != *original {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, original)
	}
}

func TestParseUnknownOpType_Fails(t *testing.T) {
	raw := ingestion.RawOp{Data: []byte(`{}`)}
	_, err := ingestion.ParseRawOp(raw, "NonExistentType")
	if err == nil {
		t.Fatal("expected error for unknown op type")
	}
}

func TestParseInvalidJSON_Fails(t *testing.T) {
	raw := ingestion.RawOp{Data: []byte(`{invalid json`)}
	_, err := ingestion.ParseRawOp(raw, "Stake")
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseInvalidUUID_Fails(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "not-a-uuid",
		"caller":       "0xuser",
		"app_id":       "app-alpha",
		"amount":       int64(1),
		"timestamp_us": int64(0),
		"sequence":     int64(0),
	}

	raw := rawFromJSON(t, payload)
	_, err := ingestion.ParseRawOp(raw, "Stake")
	if err == nil {
		t.Fatal("expected error for invalid UUID")
	}
}

func TestParseMissingCaller_Fails(t *testing.T) {
	payload := map[string]interface{}{
		"op_id":        "550e8400-e29b-41d4-a716-446655440000",
		"app_id":       "app-alpha",
		"amount":       int64(1),
		"timestamp_us": int64(0),
		"sequence":     int64(0),
	}

	raw := rawFromJSON(t, payload)
	_, err := ingestion.ParseRawOp(raw, "Stake")
	if err == nil {
		t.Fatal("expected error for missing caller")
	}
}
