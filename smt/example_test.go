package smt_test

import (
	"fmt"

	"github.com/katalvlaran/cesta/smt"
	"github.com/katalvlaran/cesta/stn"
)

// ExampleSTNTheory schedules two tasks A and B, each a fixed 5-unit
// duration, onto one machine: A and B cannot overlap, so exactly one of
// "A before B" / "B before A" must hold. Recording both orderings as atoms
// and enabling them both at once is the conflict a DPLL(T) driver would
// learn a clause from; enabling only one is consistent.
func ExampleSTNTheory() {
	net := stn.New[int]()
	startA := net.AddNode(0, 100)
	endA := net.AddNode(0, 100)
	startB := net.AddNode(0, 100)
	endB := net.AddNode(0, 100)
	net.AddEdge(startA, endA, 5)  // endA - startA <= 5
	net.AddEdge(endA, startA, -5) // endA - startA >= 5
	net.AddEdge(startB, endB, 5)
	net.AddEdge(endB, startB, -5)

	// A before B means endA <= startB, i.e. the difference constraint
	// endA - startB <= 0: an edge (startB, endA, 0), per stn's
	// edge(u,v,w) == "v - u <= w" convention.
	theory := smt.NewSTNTheory(net)
	aBeforeB := theory.RecordAtom(smt.DiffAtom[int]{Source: startB, Target: endA, Weight: 0})
	bBeforeA := theory.RecordAtom(smt.DiffAtom[int]{Source: startA, Target: endB, Weight: 0})

	// Enabling both orderings at once is unsatisfiable: a DPLL(T) driver
	// would turn this culprit set into a learned clause forbidding it.
	theory.SetBacktrackPoint()
	theory.Enable(aBeforeB)
	theory.Enable(bBeforeA)
	status, culprits := theory.Deduce()
	fmt.Println("both orderings:", status, len(culprits))
	theory.UndoToLastBacktrackPoint()

	theory.SetBacktrackPoint()
	theory.Enable(aBeforeB)
	status, _ = theory.Deduce()
	fmt.Println("A before B only:", status)
	theory.UndoToLastBacktrackPoint()

	// Output:
	// both orderings: TheoryInconsistent 2
	// A before B only: TheoryConsistent
}
