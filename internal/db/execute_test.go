package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIsReadOnly(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		readOnly  bool
	}{
		{"plain select", "SELECT * FROM employees", true},
		{"lowercase", "select 1", true},
		{"leading whitespace", "   \n\tSELECT 1", true},
		{"mixed case", "SeLeCt 1", true},
		{"insert", "INSERT INTO employees VALUES (99)", false},
		{"update", "UPDATE employees SET first_name = 'x'", false},
		{"delete", "DELETE FROM employees", false},
		{"drop", "DROP TABLE employees", false},
		{"multi-statement not starting with select", "; SELECT 1", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReadOnly(tt.statement); got != tt.readOnly {
				t.Errorf("IsReadOnly(%q) = %v, want %v", tt.statement, got, tt.readOnly)
			}
		})
	}
}

func TestExecuteRejectsNonSelectBeforeDatabaseContact(t *testing.T) {
	// Pointing at a file that does not exist: sqlite creates the file on
	// first contact, so its absence afterwards proves the gate fired
	// before the database was touched.
	path := filepath.Join(t.TempDir(), "missing.db")
	store := NewStore(path, nil)

	_, err := store.Execute(context.Background(), "DELETE FROM employees")
	if !errors.Is(err, ErrPolicyViolation) {
		t.Fatalf("Execute() error = %v, want ErrPolicyViolation", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("database file was created despite policy violation")
	}
}

func TestExecuteColumnsMatchRowWidth(t *testing.T) {
	store := newTestStore(t)

	result, err := store.Execute(context.Background(),
		"SELECT employee_id, first_name, last_name FROM employees")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(result.Columns) != 3 {
		t.Fatalf("got %d columns, want 3", len(result.Columns))
	}
	if len(result.Rows) != 15 {
		t.Fatalf("got %d rows, want 15", len(result.Rows))
	}
	for i, row := range result.Rows {
		if len(row) != len(result.Columns) {
			t.Errorf("row %d has %d fields, want %d", i, len(row), len(result.Columns))
		}
	}
}

func TestExecuteTextColumnsAreStrings(t *testing.T) {
	store := newTestStore(t)

	result, err := store.Execute(context.Background(),
		"SELECT first_name FROM employees WHERE employee_id = 1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	name, ok := result.Rows[0][0].(string)
	if !ok {
		t.Fatalf("first_name has type %T, want string", result.Rows[0][0])
	}
	if name != "Aarav" {
		t.Errorf("first_name = %q, want Aarav", name)
	}
}

func TestExecuteWrapsDatabaseErrors(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Execute(context.Background(), "SELECT nope FROM not_a_table")
	if !errors.Is(err, ErrExecution) {
		t.Fatalf("Execute() error = %v, want ErrExecution", err)
	}
	if err.Error() == ErrExecution.Error() {
		t.Errorf("wrapped error lost the engine message: %v", err)
	}
}

func TestExecutePreservesEngineRowCount(t *testing.T) {
	store := newTestStore(t)

	result, err := store.Execute(context.Background(),
		"SELECT department_name, COUNT(*) FROM employees e JOIN departments d ON e.department_id = d.department_id GROUP BY department_name")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	// 5 departments, all staffed in the fixture.
	if len(result.Rows) != 5 {
		t.Errorf("got %d grouped rows, want 5", len(result.Rows))
	}
}
