// Package cesta is an embeddable combinatorial-search kernel: an incremental
// Simple Temporal Network solver coupled to a CDCL-style Boolean search
// through the DPLL(T) architecture.
//
// 🚀 What is cesta?
//
//	A pure-Go, zero-runtime-dependency core that brings together:
//
//	  • stn        — incremental Simple Temporal Network consistency
//	    (Cesta96: bidirectional shortest-path propagation, trailed
//	    backtracking, negative-cycle explanation)
//	  • heuristic  — an index-addressable VSIDS-style activity heap
//	  • smt        — the DPLL(T) loop coupling a CDCL engine (out of scope;
//	    see smt.CDCL) to an external theory via a literal↔atom Mapping,
//	    eager and lazy interleaving
//	  • stndiag    — read-only diagnostics: a dense Floyd–Warshall oracle
//	    and active-edge reachability, for cross-checking the incremental
//	    propagator
//	  • stnbuilder — canned chain/cycle/star/complete STN topologies for
//	    tests and benchmarks
//
// ✨ Why this split?
//
//   - Pure Go            — no cgo, no hidden dependencies
//   - Trailed, not copied — backtracking is an append-only event log, not
//     snapshot/restore of the whole state
//   - Theory-agnostic    — smt drives any Theory[Atom] through AtomIDs; stn
//     is simply the one theory this module ships
//
// Symbol/type tables, STRIPS-style action lifting and the CLI that would
// sit on top of this kernel are out of scope here: this module is the
// search core other components embed.
package cesta
