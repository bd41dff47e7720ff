// SPDX-License-Identifier: MIT
// Package stn: sentinel errors and panic messages.
//
// Error policy (mirrors lvlath/builder):
//   - Precondition violations (unknown node/edge, lb > ub) are programmer
//     errors: they panic, they are never returned as error values.
//   - Logical inconsistency (a negative cycle) is a first-class typed result
//     (Status + explanation), never an error and never a panic.
package stn

import "fmt"

func panicUnknownNode(method string, n NodeID) {
	panic(fmt.Sprintf("stn: %s: unknown node %d", method, n))
}

func panicUnknownEdge(method string, e EdgeID) {
	panic(fmt.Sprintf("stn: %s: unknown edge %d", method, e))
}

func panicBadBounds(lb, ub any) {
	panic(fmt.Sprintf("stn: AddNode: lb must be <= ub, got lb=%v ub=%v", lb, ub))
}

// panicMissingCause signals a broken cause-pointer chain during cycle
// extraction: every node reachable by walking cause pointers from a
// relaxation must itself have a cause, since its distance was set by some
// prior relaxation. Seeing NoEdge here means the trail/distance invariants
// have been corrupted by a caller bypassing the façade.
func panicMissingCause(node NodeID) {
	panic(fmt.Sprintf("stn: cycle extraction: node %d has no cause pointer", node))
}
