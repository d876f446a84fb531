package orm

import (
	"database/sql"
	"fmt"
	"reflect"
)

// ScanAll drains rows into entities of type T, mapping result columns to
// struct fields through T's `db` tags. A result column with no mapped
// field is an error rather than a silently dropped value. ScanAll closes
// rows before returning.
//
// Result column names must be bare (SQLite reports "u.id" as "id"), which
// lets hand-written join queries reuse the entity mapping.
func ScanAll[T Entity](rows *sql.Rows) ([]T, error) {
	defer rows.Close()

	meta, err := metadataFor[T]()
	if err != nil {
		return nil, err
	}

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	fields := make([]int, len(cols))
	for i, col := range cols {
		idx, ok := meta.byCol[col]
		if !ok {
			return nil, fmt.Errorf("orm: result column %q has no mapped field on %s", col, meta.table)
		}
		fields[i] = idx
	}

	var out []T
	for rows.Next() {
		var e T
		if err := scanRow(rows, &e, fields); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// scanRow scans the current row into e, one destination per result column.
// Nullable columns land in pointer fields, which database/sql sets to nil
// on NULL.
func scanRow[T Entity](rows *sql.Rows, e *T, fields []int) error {
	v := reflect.ValueOf(e).Elem()
	dests := make([]any, len(fields))
	for i, idx := range fields {
		dests[i] = v.Field(idx).Addr().Interface()
	}
	return rows.Scan(dests...)
}
