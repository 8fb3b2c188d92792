package commands

import (
	"time"

	"github.com/fin-tools/spend-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/spend-atlas/pkg/services/normalize"
	"github.com/fin-tools/spend-atlas/pkg/services/statement"
	"github.com/fin-tools/spend-atlas/pkg/services/view"
	"github.com/fin-tools/spend-atlas/pkg/store/reportfile"
)

// Deps are the collaborators every command shares.
type Deps struct {
	Registry *statement.Registry
	Composer *view.Composer
	Store    *reportfile.Store
	Reporter *export.Reporter
}

// refOrNow defaults an empty reference date to the current moment.
func refOrNow(date string) string {
	if date != "" {
		return date
	}
	return time.Now().Format(normalize.LayoutISOTime)
}
