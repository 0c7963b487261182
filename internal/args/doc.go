// Package args implements the "@name value" command mini-language.
//
// Ownership boundary:
// - token scanning with single-quote grouping
// - typed lookups of named arguments against a positional value array
// - one-level scope stripping for nested commands
package args
