package textstat

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kbukum/dagkit/errors"
	"github.com/kbukum/dagkit/stream"
)

// EncodeTable encodes records as tab-separated text with a header row.
// If no columns are given, the sorted keys of the first record are used.
// Missing fields encode as empty cells.
func EncodeTable(records []Record, columns ...string) string {
	if len(columns) == 0 && len(records) > 0 {
		for k := range records[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, "\t"))
	b.WriteString("\n")

	for _, r := range records {
		cells := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := r[col]; ok && v != nil {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}
		b.WriteString(strings.Join(cells, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// Column lazily yields the values of the named column from an encoded
// table. The header row is resolved on the first pull; an unknown column
// surfaces as a NOT_FOUND error from the iterator.
func Column(table, name string) *stream.Stream[string] {
	return stream.FromFunc(func(_ context.Context) stream.Iterator[string] {
		return &columnIter[string]{
			scanner: bufio.NewScanner(strings.NewReader(table)),
			name:    name,
		}
	})
}

type columnIter[T ~string] struct {
	scanner *bufio.Scanner
	name    string
	index   int
	started bool
	err     error // terminal; returned on every Next once set
}

func (it *columnIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	if it.err != nil {
		return zero, false, it.err
	}
	if !it.started {
		it.started = true
		if !it.scanner.Scan() {
			it.err = errors.InvalidInput("table", "encoded table has no header row")
			return zero, false, it.err
		}
		header := strings.Split(it.scanner.Text(), "\t")
		it.index = -1
		for i, col := range header {
			if col == it.name {
				it.index = i
				break
			}
		}
		if it.index < 0 {
			it.err = errors.NotFound("column", it.name)
			return zero, false, it.err
		}
	}

	for it.scanner.Scan() {
		line := it.scanner.Text()
		if line == "" {
			continue
		}
		cells := strings.Split(line, "\t")
		if it.index >= len(cells) {
			continue
		}
		return T(cells[it.index]), true, nil
	}
	return zero, false, it.scanner.Err()
}

func (it *columnIter[T]) Close() error { return nil }
