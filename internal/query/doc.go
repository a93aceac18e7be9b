// Package query filters slf log lines.
//
// A query is a single forward scan. Each line is tested by a Filter that
// works on the raw line text only: date bounds are byte-wise string
// comparisons against the whole line, tags are substring searches. Nothing
// is parsed, so a malformed line never errors; it is simply included or
// excluded by whatever the comparison yields.
//
// Known limitations, kept deliberately:
//   - Tag matching is substring based: a "work" tag filter also matches
//     "#workshop".
//   - Date bounds only behave chronologically because every line written by
//     slf starts with a fixed-width, zero-padded timestamp.
package query
