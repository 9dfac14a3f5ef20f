// Package providers implements the Generator interface for each supported
// model backend.
//
// Supported backends: a Hugging Face style text2text inference server (the
// default, serving Salesforce/codet5-base) and Ollama / LM Studio for other
// local models.
//
// Backends are inference-only and make exactly one HTTP call per request; a
// failed call is reported, never retried. An unreachable server is surfaced
// as an error wrapping [ErrBackendUnavailable] whose message names the
// command that starts the runtime. Tests point the clients at local httptest
// servers through the same environment variables used in production.
//
// Use [New] to obtain a Generator by backend name and model string.
package providers
