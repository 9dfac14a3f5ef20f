// Package analyzers wraps the external static-analysis tools behind a uniform
// invoke/result contract.
//
// Each adapter (pylint, bandit, eslint) writes the snippet to a temporary file
// with the extension its tool expects, runs the tool as a subprocess with a
// fixed timeout requesting JSON output, and parses stdout into the tool's own
// result shape. The shapes are deliberately not unified; callers special-case
// each tool and normalize only at the presentation boundary.
//
// Every failure path is converted to a result value: a timed-out or missing
// tool produces Success=false with an explanatory (and, for missing tools,
// actionable) error string. Adapters never return Go errors and never panic
// past their boundary. Tool exit codes are not interpreted; linters exit
// nonzero when they find issues.
package analyzers
