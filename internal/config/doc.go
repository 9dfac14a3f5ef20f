// Package config loads and merges codereview configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (CODEREVIEW_PROVIDER, CODEREVIEW_MODEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/codereview/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write one, and
// [SetField] to update a single key by name.
package config
