package source

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"

	"vtable/internal/domain"
)

// DefaultQuery reads the table written by ExportSQLite
const DefaultQuery = "SELECT id, uuid, date FROM rows ORDER BY id"

// LoadSQLite runs query against the database at dsn and loads every result row into memory.
// Column names become the header; NULLs are shown as empty cells.
func LoadSQLite(ctx context.Context, dsn, query string) (*Slice, error) {
	if query == "" {
		query = DefaultQuery
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return querySlice(ctx, db, query)
}

func querySlice(ctx context.Context, db *sql.DB, query string) (*Slice, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out []domain.Row
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d: %w", len(out)+1, err)
		}
		fields := make([]string, len(values))
		for i, v := range values {
			if v.Valid {
				fields[i] = v.String
			}
		}
		out = append(out, domain.Row{ID: len(out) + 1, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	log.Printf("Loaded %d rows with %d columns", len(out), len(columns))
	return NewSlice(columns, out), nil
}

// ExportSQLite writes a source into a "rows" table so it can be reloaded with DefaultQuery.
// The first three columns are stored; missing fields are written as NULL.
func ExportSQLite(ctx context.Context, dsn string, src RowSource) error {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	return writeRows(ctx, db, src)
}

func writeRows(ctx context.Context, db *sql.DB, src RowSource) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS rows (
		id   INTEGER PRIMARY KEY,
		uuid TEXT,
		date TEXT
	)`); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO rows (id, uuid, date) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range src.Rows(0, src.Len()) {
		if _, err := stmt.ExecContext(ctx, row.ID, field(row, 1), field(row, 2)); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", row.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func field(row domain.Row, i int) any {
	if i < len(row.Fields) {
		return row.Fields[i]
	}
	return nil
}
