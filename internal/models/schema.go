// Package models defines the core data types shared across the pipeline.
package models

import (
	"fmt"
	"strings"
)

// Column describes a single column of a user table.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PrimaryKey bool   `json:"primary_key"`
	NotNull    bool   `json:"not_null"`
}

// Table describes a user table with its columns in declaration order.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Schema is the introspected description of all user tables,
// in alphabetical order. Table names are unique.
type Schema []Table

// Render formats the schema as text consumable both by the SQL
// generation prompt and by UI listings:
//
//	Table: employees
//	    - employee_id INTEGER (PRIMARY KEY)
//	    - first_name TEXT (NOT NULL)
func (s Schema) Render() string {
	blocks := make([]string, 0, len(s))
	for _, table := range s {
		var b strings.Builder
		fmt.Fprintf(&b, "Table: %s", table.Name)
		for _, col := range table.Columns {
			var constraints []string
			if col.PrimaryKey {
				constraints = append(constraints, "PRIMARY KEY")
			}
			if col.NotNull {
				constraints = append(constraints, "NOT NULL")
			}
			suffix := ""
			if len(constraints) > 0 {
				suffix = fmt.Sprintf(" (%s)", strings.Join(constraints, ", "))
			}
			fmt.Fprintf(&b, "\n    - %s %s%s", col.Name, col.Type, suffix)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// Tables returns the table names in schema order.
func (s Schema) Tables() []string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.Name
	}
	return names
}
