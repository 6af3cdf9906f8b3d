package textstat

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/stream"
)

// Record is one structured entry from an input document.
type Record map[string]any

// LoadRecords reads a JSON array of objects from path.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NotFound("input file", filepath.Base(path)).WithCause(err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.InvalidInput("input", "file must contain a JSON array of objects").WithCause(err)
	}
	return records, nil
}

// FilterRecords returns a lazy subsequence of records matching pred.
func FilterRecords(records []Record, pred func(Record) bool) *stream.Stream[Record] {
	return stream.Filter(stream.FromSlice(records), pred)
}

// HasField returns a predicate matching records where the named field is
// present and non-empty.
func HasField(name string) func(Record) bool {
	return func(r Record) bool {
		v, ok := r[name]
		if !ok || v == nil {
			return false
		}
		if s, isString := v.(string); isString {
			return s != ""
		}
		return true
	}
}
