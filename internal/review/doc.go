// Package review contains the core types and orchestration engine for
// snippet review.
//
// It defines the Request/Result types, validates input, dispatches the
// static-analysis adapters that apply to the declared language, always
// attempts AI commentary, and assembles a timestamped Result. The per-tool
// result shapes stay heterogeneous by design; Summary is the one place their
// counts meet.
//
// Prompt assembly (prompt.go) renders the fixed review template, bounds it to
// the model's input window, and trims generated text to whatever follows the
// last sentinel marker.
//
// Nothing here retries and nothing persists: a Result lives exactly as long
// as its caller keeps it.
package review
