package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryResult holds the outcome of executing a single SELECT statement.
// Immutable once produced; len(Columns) equals the width of every row.
type QueryResult struct {
	Statement string   `json:"statement"`
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
}

// RowCount returns the number of result rows.
func (r QueryResult) RowCount() int {
	return len(r.Rows)
}

// AnswerRecord is the unit of pipeline output shown to a user.
//
// Exactly one of Answer or Err is populated on completion. A record that
// failed partway keeps the fields produced by completed stages (a generated
// statement when execution failed, statement plus rows when synthesis
// failed) for diagnostic display.
type AnswerRecord struct {
	ID        uuid.UUID     `json:"id"`
	Question  string        `json:"question"`
	Statement string        `json:"statement,omitempty"`
	Columns   []string      `json:"columns,omitempty"`
	Rows      [][]any       `json:"rows,omitempty"`
	Answer    string        `json:"answer,omitempty"`
	Err       string        `json:"error,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// NewAnswerRecord creates a record for a question with identity and
// timestamp set; pipeline stages fill in the rest.
func NewAnswerRecord(question string) AnswerRecord {
	return AnswerRecord{
		ID:        uuid.New(),
		Question:  question,
		CreatedAt: time.Now(),
	}
}

// Failed reports whether the pipeline ended in an error for this record.
func (r AnswerRecord) Failed() bool {
	return r.Err != ""
}
