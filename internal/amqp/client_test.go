package amqp

import (
	"testing"
	"time"
)

func TestNewLedgerEventMessage(t *testing.T) {
	msg := NewLedgerEventMessage(7, 42, ActionApplied)

	if msg.AccountID != 7 {
		t.Errorf("NewLedgerEventMessage() AccountID = %v, want 7", msg.AccountID)
	}
	if msg.TransactionID != 42 {
		t.Errorf("NewLedgerEventMessage() TransactionID = %v, want 42", msg.TransactionID)
	}
	if msg.Action != ActionApplied {
		t.Errorf("NewLedgerEventMessage() Action = %v, want %v", msg.Action, ActionApplied)
	}
	if msg.Timestamp.IsZero() {
		t.Error("NewLedgerEventMessage() Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("NewLedgerEventMessage() Timestamp should be recent")
	}
}

func TestLedgerEventMessage_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	msg := &LedgerEventMessage{
		AccountID:     7,
		TransactionID: 42,
		Action:        ActionReverted,
		Timestamp:     timestamp,
	}

	jsonBytes, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsedMsg, err := LedgerEventMessageFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("LedgerEventMessageFromJSON() error = %v", err)
	}

	if parsedMsg.AccountID != msg.AccountID {
		t.Errorf("Parsed AccountID = %v, want %v", parsedMsg.AccountID, msg.AccountID)
	}
	if parsedMsg.TransactionID != msg.TransactionID {
		t.Errorf("Parsed TransactionID = %v, want %v", parsedMsg.TransactionID, msg.TransactionID)
	}
	if parsedMsg.Action != msg.Action {
		t.Errorf("Parsed Action = %v, want %v", parsedMsg.Action, msg.Action)
	}
	if !parsedMsg.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsedMsg.Timestamp, msg.Timestamp)
	}
}

func TestLedgerEventMessage_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"account_id": "not_a_number"}`)

	_, err := LedgerEventMessageFromJSON(invalidJSON)
	if err == nil {
		t.Error("LedgerEventMessageFromJSON() should fail with invalid JSON")
	}
}
