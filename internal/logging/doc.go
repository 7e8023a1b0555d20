// Package logging provides the structured logging interface used by widecalc.
// Components log through Logger so that the HTTP server, the REPL and the
// command-line path share one format, backed by zerolog or the standard log
// package.
package logging
