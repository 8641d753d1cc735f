// Package sqlite loads a SQLite table into the tabular model for inspection.
//
// Every value is scanned as a nullable string: the inspection engine does its
// own type inference, so the loader must not let the database's declared
// types pre-empt it (SQLite's TEXT affinity makes declared types unreliable
// anyway).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"inspector/internal/datasource"
	"inspector/internal/table"
)

// LoadTable opens dsn and reads every row of the named table, preserving
// column order and row order as returned by the database.
func LoadTable(ctx context.Context, dsn, name string) (*table.Table, error) {
	if err := datasource.ValidateIdent(name); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+name)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	cols := make([]table.Column, len(names))
	for i, n := range names {
		cols[i].Name = n
	}

	scan := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range scan {
		dest[i] = &scan[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range scan {
			if !v.Valid {
				cols[i].Cells = append(cols[i].Cells, table.Missing())
				continue
			}
			cols[i].Cells = append(cols[i].Cells, table.String(v.String))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table.New(cols)
}
