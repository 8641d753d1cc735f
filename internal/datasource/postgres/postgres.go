// Package postgres loads a Postgres table into the tabular model for
// inspection. Values are read as nullable text so the engine's own type
// inference sees exactly what the rows carry.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"inspector/internal/datasource"
	"inspector/internal/table"
)

// LoadTable connects to dsn and reads every row of the named table.
// Values are rendered to their string form client-side; SQL NULL becomes
// the missing marker.
func LoadTable(ctx context.Context, dsn, name string) (*table.Table, error) {
	if err := datasource.ValidateIdent(name); err != nil {
		return nil, err
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, "SELECT t.* FROM "+name+" AS t")
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	descs := rows.FieldDescriptions()
	cols := make([]table.Column, len(descs))
	for i, d := range descs {
		cols[i].Name = d.Name
	}

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i, v := range vals {
			if v == nil {
				cols[i].Cells = append(cols[i].Cells, table.Missing())
				continue
			}
			cols[i].Cells = append(cols[i].Cells, table.String(fmt.Sprint(v)))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table.New(cols)
}
