package statement

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/spend-atlas/pkg/models/domain"
)

// XLSXLoader reads spreadsheet statement exports. The first sheet is
// the statement; its first row is the header.
type XLSXLoader struct{}

// Format returns the loader name.
func (l *XLSXLoader) Format() string { return "xlsx" }

// Load reads the workbook at path into a table.
func (l *XLSXLoader) Load(path string) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, fmt.Errorf("statement %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Table{}, fmt.Errorf("reading statement %s: %w", path, err)
	}
	return tableFromRows(rows), nil
}
