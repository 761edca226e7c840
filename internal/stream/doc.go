// Package stream implements the mutable token sequence at the heart of
// phix: an index-addressable view of one PHP source file that rewrite
// rules query and edit in place.
//
// The container is deliberately rigid. A Stream is fixed-length from
// construction; tokens are never inserted or removed mid-stream, only
// mutated in their slots. That keeps every index and every *token.Token
// pointer stable across arbitrary edits, which is what lets rules hold
// on to positions found by earlier scans. "Deleting" a token means
// erasing it (token.Clear) so its slot renders as nothing.
//
// Invariants:
//   - Render returns the concatenation of all token texts in index
//     order. For a stream built by FromSource and not mutated since,
//     that is the original input byte for byte.
//   - Out-of-range access is an absent result (nil token, -1 index,
//     false), never a panic.
//   - Structural scans track nesting with plain counters. Unbalanced
//     input is not validated; counters go negative and results past
//     that point are unspecified.
package stream
