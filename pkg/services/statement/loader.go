// Package statement reads bank statement exports into tables. Loaders
// are registered per file format; a read failure is fatal to the
// caller, there is no row-level recovery at this layer.
package statement

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

// Loader reads one statement file format.
type Loader interface {
	Load(path string) (domain.Table, error)
	Format() string
}

// Registry holds named loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader. Panics on duplicate format.
func (r *Registry) Register(l Loader) {
	key := strings.ToLower(l.Format())
	if _, ok := r.loaders[key]; ok {
		panic("duplicate loader format: " + key)
	}
	r.loaders[key] = l
}

// Get returns the loader for format, or nil.
func (r *Registry) Get(format string) Loader {
	return r.loaders[strings.ToLower(format)]
}

// Load picks a loader by the path's extension and reads the file.
func (r *Registry) Load(path string) (domain.Table, error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	loader := r.Get(format)
	if loader == nil {
		return domain.Table{}, fmt.Errorf("no loader registered for %q files", format)
	}
	return loader.Load(path)
}

// DefaultRegistry returns a registry with all built-in loaders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVLoader{})
	r.Register(&XLSXLoader{})
	return r
}

// tableFromRows builds a table from a header row and data rows. Short
// rows leave trailing columns unset.
func tableFromRows(rows [][]string) domain.Table {
	if len(rows) == 0 {
		return domain.Table{}
	}

	columns := make([]string, len(rows[0]))
	copy(columns, rows[0])
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(domain.Record, len(columns))
		for i, col := range columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return domain.Table{Columns: columns, Rows: records}
}
