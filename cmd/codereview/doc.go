// Codereview is a local-first code review assistant for Python and
// JavaScript snippets.
//
// It runs the language's static analyzers (pylint and bandit for Python,
// ESLint for JavaScript), asks a locally hosted model for qualitative
// commentary, and combines both into one report with deterministic exit
// codes suitable for CI gating.
//
// Usage:
//
//	codereview review snippet.py          # review a Python file
//	codereview review --lang js           # review JavaScript from stdin
//	codereview review --format sarif app.py
//	codereview serve                      # browser UI on 127.0.0.1:8490
//	codereview config init                # write the default config file
//
// See https://github.com/AnanyaVY/code-reviewer for full documentation.
package main
