// Package corpus discovers replay files under a root directory and decodes
// them concurrently into a read-only Corpus.
//
// Scanning has partial-failure semantics: a file that fails to decode is
// logged, recorded as a Diagnostic, and left out, while every other file is
// still analyzed. A missing or unreadable root yields an empty Corpus with a
// diagnostic rather than an error. Cancelling the context stops new decodes
// and returns whatever finished, together with the context error.
package corpus
