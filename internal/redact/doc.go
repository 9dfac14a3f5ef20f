// Package redact scrubs likely secrets from a snippet before it is embedded
// in a model prompt.
//
// Redaction is opt-in (the prompt carries the code verbatim by default) and
// heuristic: regex patterns for common API key, token, and private key
// shapes. It never touches the bytes handed to the static analyzers.
package redact
