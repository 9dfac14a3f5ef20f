// Package web serves the browser UI: a submission form, grouped per-tool
// result sections, a combined-suggestions count, and a downloadable
// plain-text report.
//
// The server owns the one piece of cross-request state in the whole program,
// a single-slot cache of the last result. A new review overwrites it; a
// validation failure clears it. Rendering reuses the output package's
// grouping helpers, so the web view and the markdown writer always agree.
package web
