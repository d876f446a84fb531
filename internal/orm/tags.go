package orm

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// entityMetadata holds the parsed `db` tag information for one entity type.
// It is cached per type so reflection runs once per process.
type entityMetadata struct {
	// table is the storage table the entity maps to.
	table string
	// pkField is the struct field index of the primary key.
	pkField int
	// pkCol is the primary key's column name.
	pkCol string
	// cols are the non-pk column names in struct declaration order.
	cols []string
	// fields are the struct field indexes matching cols.
	fields []int
	// byCol maps every column name (pk included) to its field index.
	byCol map[string]int
}

var metaCache sync.Map // reflect.Type -> *entityMetadata

// metadataFor returns the cached column mapping for T, parsing the struct
// tags on first use.
func metadataFor[T Entity]() (*entityMetadata, error) {
	var e T
	typ := reflect.TypeOf(e)
	if cached, ok := metaCache.Load(typ); ok {
		return cached.(*entityMetadata), nil
	}

	meta, err := parseMetadata(typ, e.Table())
	if err != nil {
		return nil, err
	}
	metaCache.Store(typ, meta)

	return meta, nil
}

func parseMetadata(typ reflect.Type, table string) (*entityMetadata, error) {
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("orm: type %s is not a struct", typ.Name())
	}
	if table == "" {
		return nil, fmt.Errorf("orm: type %s declares an empty table name", typ.Name())
	}

	meta := &entityMetadata{
		table:   table,
		pkField: -1,
		byCol:   make(map[string]int),
	}

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("db")

		// fields without a db tag are not part of the persistence mapping
		if tag == "" || tag == "-" {
			continue
		}

		col, opt, _ := strings.Cut(tag, ",")
		if col == "" {
			return nil, fmt.Errorf("orm: field %s.%s has a db tag with no column name", typ.Name(), field.Name)
		}
		if _, dup := meta.byCol[col]; dup {
			return nil, fmt.Errorf("orm: column %q mapped twice on %s", col, typ.Name())
		}
		meta.byCol[col] = i

		if opt == "pk" {
			if meta.pkField >= 0 {
				return nil, fmt.Errorf("orm: multiple pk columns on %s", typ.Name())
			}
			if field.Type.Kind() != reflect.Int64 {
				return nil, fmt.Errorf("orm: pk field %s.%s must be int64", typ.Name(), field.Name)
			}
			meta.pkField = i
			meta.pkCol = col
			continue
		}

		meta.cols = append(meta.cols, col)
		meta.fields = append(meta.fields, i)
	}

	if meta.pkField < 0 {
		return nil, fmt.Errorf("orm: no pk column declared on %s", typ.Name())
	}

	return meta, nil
}

// selectList renders the column list for SELECT statements, pk first so
// generated queries are stable.
func (m *entityMetadata) selectList() string {
	cols := make([]string, 0, len(m.cols)+1)
	cols = append(cols, m.pkCol)
	cols = append(cols, m.cols...)
	return strings.Join(cols, ", ")
}
