// Package numeric interprets digit lists as arbitrary-precision non-negative
// integers.
//
// An Adapter is configured with a primary base, used for parsed input and
// OR results, and an alternate base used by ChangeScale. Parsing is
// permissive: text that is not one or more ASCII decimal digits yields an
// empty list instead of an error. Values are compared by the integer they
// denote, never by their representation.
package numeric
