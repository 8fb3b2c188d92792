package export

import (
	"encoding/json"
	"io"
	"os"
)

// Reporter writes results as indented JSON, the shape consumers of
// the report files expect.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a reporter writing to writer, stdout when nil.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// Handle serializes the result to the output.
func (r *Reporter) Handle(result any) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(result)
}
