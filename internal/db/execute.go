package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

// IsReadOnly reports whether the statement passes the read-only gate:
// uppercased and whitespace-trimmed, it must begin with "SELECT".
//
// This is a textual prefix check, not a parser. It does not protect
// against a SELECT-prefixed statement that smuggles mutations through a
// subquery or semicolon-separated trailing commands; it is a guard
// against the model emitting the wrong statement kind, not a security
// boundary.
func IsReadOnly(statement string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(statement)), "SELECT")
}

// Execute runs a single read-only statement and captures column names and
// all result rows. Statements failing the gate are rejected with
// ErrPolicyViolation before any database contact. The connection is
// released on every exit path.
func (s *Store) Execute(ctx context.Context, statement string) (models.QueryResult, error) {
	result := models.QueryResult{Statement: statement}

	if !IsReadOnly(statement) {
		return result, fmt.Errorf("%w: the generated statement was not a SELECT", ErrPolicyViolation)
	}

	conn, err := s.open()
	if err != nil {
		return result, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, statement)
	if err != nil {
		return result, wrapExecutionError(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return result, wrapExecutionError(err)
	}
	result.Columns = columns

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return result, wrapExecutionError(err)
		}
		for i, v := range values {
			// The sqlite driver hands TEXT columns back as []byte.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return result, wrapExecutionError(err)
	}

	s.logger.Debug("statement executed", "rows", len(result.Rows), "columns", len(columns))
	return result, nil
}
