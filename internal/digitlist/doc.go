// Package digitlist implements a doubly-linked list of small digit values,
// most-significant digit first, tagged with the radix the digits are
// expressed in.
//
// The list supports the full mutable-sequence contract: random access by
// position, insertion and removal anywhere, bidirectional cursors, plus the
// circular shift, pairwise swap and in-place sort primitives. Indexed
// access walks from whichever end of the list is closer to the target.
//
// Nodes are owned by a per-list arena and addressed by integer handles, so
// splicing never shares nodes between lists.
//
// A List is not safe for concurrent use. Callers that share a list between
// goroutines must serialize every access, reads included.
package digitlist
