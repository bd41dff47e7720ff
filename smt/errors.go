// SPDX-License-Identifier: MIT
// Package smt: sentinel panics for programmer errors.
//
// As in package stn, precondition violations panic; logical outcomes
// (Unsat, TheoryInconsistent) are always typed results, never errors.
package smt

import "fmt"

func panicAlreadyBound(atom AtomID) {
	panic(fmt.Sprintf("smt: Bind: atom %d is already bound to a literal", atom))
}

func panicDuplicateCulprit(atom AtomID) {
	panic(fmt.Sprintf("smt: theory reported duplicate culprit atom %d", atom))
}

func panicUnexpectedAbandoned() {
	panic("smt: lazy DPLL(T): CDCL search was Abandoned, which the lazy driver never expects")
}
