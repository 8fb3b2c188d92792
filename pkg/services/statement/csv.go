package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

// CSVLoader reads delimited statement exports. Banks disagree on the
// delimiter, so the header line decides between ';' and ','.
type CSVLoader struct{}

// Format returns the loader name.
func (l *CSVLoader) Format() string { return "csv" }

// Load reads the CSV at path into a table.
func (l *CSVLoader) Load(path string) (domain.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("reading statement %s: %w", path, err)
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = detectComma(raw)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("parsing statement %s: %w", path, err)
	}
	return tableFromRows(rows), nil
}

func detectComma(raw []byte) rune {
	header := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	if bytes.ContainsRune(header, ';') {
		return ';'
	}
	return ','
}
