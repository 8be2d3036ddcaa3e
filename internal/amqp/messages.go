package amqp

import (
	"encoding/json"
	"time"
)

const (
	ActionApplied  = "applied"
	ActionReverted = "reverted"
)

// LedgerEventMessage announces that a transaction was applied to or reverted
// from an account. It carries only identifiers; the reconciler re-reads the
// account from the database, so a stale or replayed message is harmless.
type LedgerEventMessage struct {
	AccountID     int64     `json:"account_id"`
	TransactionID int64     `json:"transaction_id"`
	Action        string    `json:"action"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewLedgerEventMessage(accountID, transactionID int64, action string) *LedgerEventMessage {
	return &LedgerEventMessage{
		AccountID:     accountID,
		TransactionID: transactionID,
		Action:        action,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
