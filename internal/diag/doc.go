// Package diag defines the diagnostic model shared by the lexer, the
// rewrite rules, and the driver.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced while tokenizing and rewriting PHP sources.
//   - Offer light-weight utilities (Reporter, Bag) that let producers
//     emit diagnostics without coupling to concrete storage or
//     formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; collection and transport is the
// driver's job. Rules rewrite token streams directly, so diagnostics
// here are findings only and never carry edit payloads.
//
// # Data model
//
// Diagnostic is the central record: Severity (Info, Warning, Error),
// Code (compact numeric identifier with a stable string form), Message,
// a Primary source.Span, and optional Notes. Notes should be used
// sparingly: each note must add new context (e.g. "declared here")
// rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter to decouple emission from storage.
// The lexer and the rules call Report directly; standalone records are
// built with New/NewError and extended with WithNote. diag.BagReporter
// aggregates diagnostics into a Bag, which supports sorting,
// deduplication, and merging.
//
// Keep the data model deterministic: diagnostics are sorted and
// deduplicated for output and compared verbatim in golden tests.
package diag
