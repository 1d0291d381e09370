// Package matcher holds the text predicates used to recognise references to a
// search target in source lines.
//
// Every function is pure: it inspects a string and returns a result without
// touching the filesystem or any shared state.
//
// Two ways of locating a token are provided:
//   - whole-word: the token is bounded by non-word characters or string edges
//   - path-segment: the token directly follows a path separator and is not
//     followed by a word character ("./utils.js" matches "utils", "./utilsx" does not)
//
// Word characters are ASCII letters, digits and underscore.
package matcher
