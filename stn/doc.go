// Package stn implements an incremental Simple Temporal Network with
// chronological backtracking and negative-cycle explanation.
//
// 🚀 What is an STN?
//
//	A Simple Temporal Network is a directed weighted graph encoding a
//	conjunction of difference constraints t_j - t_i ≤ w between time-point
//	variables. It is consistent iff the graph has no negative cycle.
//
// ✨ Key features:
//   - Incremental edge activation with Cesta96 bidirectional SSSP propagation
//   - O(1)-amortized undo via an append-only trail of reversible events
//   - Negative-cycle explanation: on inconsistency, returns the user-visible
//     edges of the detected negative cycle, whose conjunction cannot be
//     satisfied together with the nodes' [lb, ub] domains
//
// The STN is the theory half of a DPLL(T) solver (see package smt); it never
// performs I/O, never blocks, and is safe to embed in a synchronous search
// loop that must backtrack it in lock-step with propositional decisions.
//
// Internal "bound" edges — inserted automatically by AddNode to encode a
// node's [lb, ub] domain — participate in propagation but are filtered out of
// every returned explanation; see Constraint.Internal.
package stn
