// Package smt implements the DPLL(T) architecture that couples a CDCL-style
// propositional search to an external theory solver (see package stn)
// through a literal↔theory-atom mapping.
//
// 🚀 What is DPLL(T)?
//
//	DPLL(T) drives a Boolean CDCL search as usual, but every time the search
//	commits to a literal it routes that literal to zero or more theory atoms
//	via Mapping, asks the theory to enable them, and lets the theory veto the
//	current partial assignment by reporting a culprit set — which this
//	package turns into a learned clause so the Boolean search backtracks away
//	from it.
//
// Two drivers are provided, matching the two interleaving granularities a
// DPLL(T) implementation can choose:
//   - Eager: theory deduction runs after every CDCL inference, at the finest
//     granularity CDCL exposes.
//   - Lazy: theory deduction runs once per full CDCL model, re-enabling every
//     set literal in the exact order CDCL assigned them so an incremental
//     theory returns a conflict at the earliest possible decision level.
//
// The CDCL engine itself (unit propagation, 1-UIP learning, restarts) is out
// of scope for this module: smt.CDCL names the contract this package
// consumes, grounded on aries' aries_sat::Solver surface.
package smt
