package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"
)

// Tables is the set of tables the records report can show.
var Tables = []string{"users", "registrations", "dashboard", "weekly_schedule", "invoices"}

// TableDump is a whole table read positionally, in column order.
type TableDump struct {
	Table   string     `json:"table"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Dump reads every row of table with SELECT *. NULLs come back as "".
func (s *Stores) Dump(ctx context.Context, table string) (d *TableDump, err error) {
	defer observe("report", "dump", time.Now(), &err)

	if !slices.Contains(Tables, table) {
		err = fmt.Errorf("%w: %q", ErrUnknownTable, table)
		return nil, err
	}

	// table is one of the fixed names above
	rows, err := s.db.WithContext(ctx).Raw("SELECT * FROM " + table + " ORDER BY id").Rows()
	if err != nil {
		err = storageErr("dump "+table, err)
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = storageErr("dump "+table, err)
		return nil, err
	}

	d = &TableDump{Table: table, Columns: cols, Rows: [][]string{}}
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			err = storageErr("dump "+table, err)
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		d.Rows = append(d.Rows, row)
	}
	if err = rows.Err(); err != nil {
		err = storageErr("dump "+table, err)
		return nil, err
	}
	return d, nil
}
