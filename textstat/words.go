package textstat

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/kbukum/dagkit/stream"
)

// Normalize lazily turns raw column values into cleaned lowercase
// tokens: each value is split on non-alphanumeric runes and lowercased;
// empty tokens are dropped.
func Normalize(values *stream.Stream[string]) *stream.Stream[string] {
	return stream.FlatMap(values, func(_ context.Context, value string) ([]string, error) {
		fields := strings.FieldsFunc(value, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		tokens := make([]string, 0, len(fields))
		for _, f := range fields {
			tokens = append(tokens, strings.ToLower(f))
		}
		return tokens, nil
	})
}

// TokenCount is one (token, count) entry of a frequency table.
type TokenCount struct {
	Token string
	Count int
}

// FreqTable maps tokens to occurrence counts while remembering the
// order tokens were first encountered, so rankings can break count ties
// deterministically.
type FreqTable struct {
	counts map[string]int
	order  []string
}

// Count returns the occurrence count for token.
func (t *FreqTable) Count(token string) int { return t.counts[token] }

// Len returns the number of distinct tokens.
func (t *FreqTable) Len() int { return len(t.order) }

// Pairs returns all (token, count) entries in first-seen order.
func (t *FreqTable) Pairs() []TokenCount {
	pairs := make([]TokenCount, len(t.order))
	for i, token := range t.order {
		pairs[i] = TokenCount{Token: token, Count: t.counts[token]}
	}
	return pairs
}

// Frequencies drains tokens into a frequency table, skipping any token
// on the stoplist.
func Frequencies(ctx context.Context, tokens *stream.Stream[string], stoplist []string) (*FreqTable, error) {
	stop := make(map[string]struct{}, len(stoplist))
	for _, s := range stoplist {
		stop[strings.ToLower(s)] = struct{}{}
	}

	table := &FreqTable{counts: make(map[string]int)}
	err := stream.ForEach(ctx, tokens, func(_ context.Context, token string) error {
		if _, skip := stop[token]; skip {
			return nil
		}
		if _, seen := table.counts[token]; !seen {
			table.order = append(table.order, token)
		}
		table.counts[token]++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// TopN returns the top-n entries sorted by count descending. Ties keep
// the order tokens were first encountered (stable sort). A non-positive
// n yields an empty ranking.
func TopN(table *FreqTable, n int) []TokenCount {
	if n <= 0 {
		return []TokenCount{}
	}
	pairs := table.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})
	if n < len(pairs) {
		pairs = pairs[:n]
	}
	return pairs
}
