// Package output formats review results for display or machine consumption.
//
// Four formats are supported:
//   - text     — the flat downloadable report (default): header, one line per
//     diagnostic per tool section, AI feedback verbatim at the end
//   - json     — full structured result
//   - markdown — grouped per-tool view (pylint by message type, bandit as an
//     enumerated list, eslint by file and message)
//   - sarif    — SARIF v2.1.0 with one run per static-analysis tool
//
// Use [GetWriter] to obtain a [Writer] for a format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Result]. [WriteResult]
// handles destination selection. The grouping helpers in groups.go are shared
// with the web UI; grouping is presentational only.
package output
