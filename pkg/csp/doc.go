// Package csp implements a finite-domain constraint satisfaction engine:
// systematic backtracking search with optional conflict-directed
// backjumping, forward-checking and AC-3 propagation, adaptive variable
// and value ordering heuristics, and a min-conflicts local searcher.
//
// Domains are bitset-backed; a single mutable domain slice is shared
// across one search and restored through an explicit undo trail rather
// than cloned on recursion. Heuristics and inference are small
// pluggable strategies selected through Config.
package csp
