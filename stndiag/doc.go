// Package stndiag provides read-only diagnostics over an *stn.Network: a
// dense all-pairs shortest-path oracle for cross-checking the incremental
// propagator's bounds, and a reachability query over the active-edge graph.
//
// 🔍 Why a second, quadratic-space algorithm?
//
//	Cesta96 (package stn) restores consistency incrementally, touching only
//	the nodes a single edge activation can affect. stndiag recomputes the
//	same bounds from scratch with the textbook dense closure (adapted from
//	the teacher's matrix.FloydWarshall), giving tests an independent oracle
//	to compare against — quadratic space and cubic time, never used on the
//	hot propagation path, by design.
//
// Nothing in this package mutates the Network it inspects.
package stndiag
