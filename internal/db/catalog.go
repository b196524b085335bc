package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MalleGowthami/IntelliSQL/internal/models"
)

// DescribeSchema introspects the live database and returns all user tables
// in alphabetical order with their columns in declaration order. The result
// is rebuilt on every call so it always reflects current database state.
func (s *Store) DescribeSchema(ctx context.Context) (models.Schema, error) {
	conn, err := s.open()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	tables, err := listTables(ctx, conn)
	if err != nil {
		return nil, err
	}

	schema := make(models.Schema, 0, len(tables))
	for _, name := range tables {
		columns, err := tableColumns(ctx, conn, name)
		if err != nil {
			return nil, err
		}
		schema = append(schema, models.Table{Name: name, Columns: columns})
	}

	return schema, nil
}

func listTables(ctx context.Context, conn *sql.DB) ([]string, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT name FROM sqlite_master
		 WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func tableColumns(ctx context.Context, conn *sql.DB, table string) ([]models.Column, error) {
	rows, err := conn.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var (
			cid        int
			col        models.Column
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &col.Name, &col.Type, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", table, err)
		}
		col.NotNull = notNull != 0
		col.PrimaryKey = pk != 0
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
