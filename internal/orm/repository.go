// Package orm provides a generic, tag-driven repository over a relational
// store. Entity structs declare their table through a Table method and
// their columns through `db` struct tags; the repository derives all CRUD
// statements from that mapping, so concrete entities carry no SQL of
// their own. Every generated statement is parameterized.
package orm

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/ScottDikowitz/AA-Questions/internal/db"
)

// Entity is implemented by any struct that maps to a single table row.
type Entity interface {
	// Table returns the storage table the entity maps to.
	Table() string
}

// Cond is one equality condition of a WHERE clause. Conditions are ordered
// so generated statements are deterministic.
type Cond struct {
	Column string
	Value  any
}

// Repository provides table-name-driven CRUD for a specific entity type T.
type Repository[T Entity] struct {
	conn *db.DB
	meta *entityMetadata

	selectStmt string
	insertStmt string
	updateStmt string
}

// NewRepository creates a repository for T backed by conn. It parses T's
// struct tags once and precomputes the statements shared by all calls.
func NewRepository[T Entity](conn *db.DB) (*Repository[T], error) {
	meta, err := metadataFor[T]()
	if err != nil {
		return nil, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(meta.cols)), ", ")
	sets := make([]string, len(meta.cols))
	for i, col := range meta.cols {
		sets[i] = col + " = ?"
	}

	return &Repository[T]{
		conn:       conn,
		meta:       meta,
		selectStmt: fmt.Sprintf(`SELECT %s FROM %s`, meta.selectList(), meta.table),
		insertStmt: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, meta.table, strings.Join(meta.cols, ", "), placeholders),
		updateStmt: fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`, meta.table, strings.Join(sets, ", "), meta.pkCol),
	}, nil
}

// FindByID looks up the single row with the given primary key. It returns
// ErrNotFound when no row matches.
func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	rows, err := r.conn.QueryRows(ctx, r.selectStmt+fmt.Sprintf(` WHERE %s = ?`, r.meta.pkCol), id)
	if err != nil {
		return nil, err
	}

	found, err := ScanAll[T](rows)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}

	return &found[0], nil
}

// FindAll returns every row of the entity's table in storage order.
func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := r.conn.QueryRows(ctx, r.selectStmt)
	if err != nil {
		return nil, err
	}

	return ScanAll[T](rows)
}

// FindWhere returns the rows matching every given equality condition.
// Column names are validated against the entity's mapping; values are
// always bound as parameters, never written into the statement text.
func (r *Repository[T]) FindWhere(ctx context.Context, conds ...Cond) ([]T, error) {
	if len(conds) == 0 {
		return r.FindAll(ctx)
	}

	clauses := make([]string, len(conds))
	args := make([]any, len(conds))
	for i, c := range conds {
		if _, ok := r.meta.byCol[c.Column]; !ok {
			return nil, fmt.Errorf("orm: unknown column %q for table %s", c.Column, r.meta.table)
		}
		clauses[i] = c.Column + " = ?"
		args[i] = c.Value
	}

	rows, err := r.conn.QueryRows(ctx, r.selectStmt+` WHERE `+strings.Join(clauses, " AND "), args...)
	if err != nil {
		return nil, err
	}

	return ScanAll[T](rows)
}

// FindBy resolves a dynamic finder name such as "find_by_fname_and_lname"
// into an ordered column list, zips the columns with the given arguments
// and delegates to FindWhere. A name that does not parse, names a column
// the entity does not map, or disagrees with the argument count yields a
// *MalformedFinderError.
func (r *Repository[T]) FindBy(ctx context.Context, finder string, args ...any) ([]T, error) {
	cols, err := ParseFinder(finder)
	if err != nil {
		return nil, err
	}
	if len(cols) != len(args) {
		return nil, &MalformedFinderError{
			Name:   finder,
			Reason: fmt.Sprintf("%d columns but %d arguments", len(cols), len(args)),
		}
	}

	conds := make([]Cond, len(cols))
	for i, col := range cols {
		if _, ok := r.meta.byCol[col]; !ok {
			return nil, &MalformedFinderError{
				Name:   finder,
				Reason: fmt.Sprintf("no column %q on table %s", col, r.meta.table),
			}
		}
		conds[i] = Cond{Column: col, Value: args[i]}
	}

	return r.FindWhere(ctx, conds...)
}

// Save persists the entity. A zero primary key means the entity is new:
// it is inserted and adopts the storage-assigned id. A set primary key
// means the row is updated in place; updating an id no row carries is a
// silent no-op. Constraint violations propagate unchanged from the driver.
func (r *Repository[T]) Save(ctx context.Context, e *T) error {
	if e == nil {
		return fmt.Errorf("orm: entity is nil")
	}

	v := reflect.ValueOf(e).Elem()
	args := make([]any, len(r.meta.fields))
	for i, idx := range r.meta.fields {
		args[i] = v.Field(idx).Interface()
	}

	pk := v.Field(r.meta.pkField)
	if pk.Int() == 0 {
		res, err := r.conn.Exec(ctx, r.insertStmt, args...)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("orm: last inserted id: %w", err)
		}
		pk.SetInt(id)
		return nil
	}

	_, err := r.conn.Exec(ctx, r.updateStmt, append(args, pk.Int())...)
	return err
}
