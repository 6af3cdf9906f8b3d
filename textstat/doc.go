// Package textstat implements the wordfreq data transforms: loading
// JSON records, filtering them, encoding them to a tabular text format,
// extracting a column, normalizing values into tokens, building a
// word-frequency table, and ranking the top-N entries.
//
// The transforms are plain, stateless functions with a fixed
// input/output contract; cmd/wordfreq wires them into a pipeline as
// opaque tasks. Filtering, column extraction, and normalization are
// lazy, built on the stream package.
package textstat
