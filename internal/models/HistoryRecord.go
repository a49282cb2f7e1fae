package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Operation names recorded in history.
const (
	OpDifference = "difference"
	OpAdd        = "add"
	OpSubtract   = "subtract"
)

// HistoryRecord is one finished calculation.
type HistoryRecord struct {
	ID         string    `json:"id"`
	Op         string    `json:"op"`
	Calendar   string    `json:"calendar"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewHistoryRecord(op, calendarID, expression, result string) *HistoryRecord {
	now := time.Now().UTC()
	return &HistoryRecord{
		ID:         generateID(now),
		Op:         op,
		Calendar:   calendarID,
		Expression: expression,
		Result:     result,
		CreatedAt:  now,
	}
}

// generateID builds a sortable unique ID from the timestamp plus a short
// random suffix.
func generateID(t time.Time) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffix := make([]byte, 5)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		suffix[i] = chars[n.Int64()]
	}
	return fmt.Sprintf("%s-%s", t.Format("20060102-150405"), string(suffix))
}
