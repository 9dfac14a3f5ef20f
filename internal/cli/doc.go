// Package cli implements the codereview command tree.
//
// Commands: review (snippet from file or stdin), serve (browser UI), config
// (init/set/show), and version. Exit codes are deterministic: 0 success,
// 1 issues found with --fail-on-issues, 2 usage error, 4 runtime error.
package cli
