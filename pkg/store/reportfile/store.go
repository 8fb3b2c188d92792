// Package reportfile persists category reports as JSON files. It is a
// side artifact of the pipeline: report functions stay pure and this
// adapter serializes their result on request.
package reportfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/spend-atlas/pkg/models/api"
)

// Store writes report files into one directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Write serializes rows as an indented JSON array into name inside
// the store directory. An empty name gets a timestamped default. The
// absolute path of the written file is returned.
func (s *Store) Write(ctx context.Context, name string, rows []api.CategoryTotal) (string, error) {
	if name == "" {
		name = fmt.Sprintf("report_spending_by_category_%s.json", s.now().Format("20060102_150405"))
	}
	path := filepath.Join(s.dir, name)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory %s: %w", s.dir, err)
	}

	if rows == nil {
		rows = []api.CategoryTotal{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Info().Str("path", path).Int("rows", len(rows)).Msg("report written")
	return path, nil
}
