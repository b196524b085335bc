// Package history keeps the process-lifetime conversation log.
package history

import (
	"sync"

	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

// Log is an append-only ordered sequence of answer records, scoped to the
// process lifetime. Appends are serialized so insertion order is preserved
// even with concurrent callers; there is no persistence across restarts.
type Log struct {
	mu      sync.RWMutex
	records []models.AnswerRecord
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the end of the log.
func (l *Log) Append(record models.AnswerRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

// Records returns a copy of the log in insertion order.
func (l *Log) Records() []models.AnswerRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.AnswerRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Clear empties the log. Used by the explicit clear-history action.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
}
