// Package token defines the lexical vocabulary of PHP token streams.
// Invariants:
//   - Token.Text is the exact source substring. Concatenating the
//     texts of a freshly lexed stream reproduces the input byte for
//     byte; whitespace, comments, and inline HTML are ordinary tokens,
//     never out-of-band trivia.
//   - A token with Kind None is bare: only its text is meaningful.
//     Operators and punctuation lex as bare tokens.
//   - Clearing a token leaves an empty bare slot in place; it never
//     shortens the stream holding it.
//   - Keywords are recognized case-insensitively; Text keeps the
//     original spelling. Unreserved words are Ident.
package token
