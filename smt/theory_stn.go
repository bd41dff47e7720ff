package smt

import "github.com/katalvlaran/cesta/stn"

// DiffAtom is the semantic atom type for an STNTheory[W]: the difference
// constraint Target - Source <= Weight.
type DiffAtom[W stn.Weight] struct {
	Source, Target stn.NodeID
	Weight         W
}

// STNTheory adapts an *stn.Network into the Theory[DiffAtom[W]] contract
// DPLL(T) drivers consume, translating theory-level enable/deduce/backtrack
// calls into the network's AddInactiveEdge/MarkActive/PropagateAll/
// SetBacktrackPoint/UndoToLastBacktrackPoint, and turning a reported
// negative cycle back into a duplicate-free AtomID culprit set.
type STNTheory[W stn.Weight] struct {
	net *stn.Network[W]

	atomEdge []stn.EdgeID         // AtomID -> the edge recorded for it
	edgeAtom map[stn.EdgeID]AtomID // the reverse, for Deduce's cycle translation
}

// NewSTNTheory wraps net, a freshly constructed (or otherwise empty-of-
// recorded-atoms) network, as a Theory.
func NewSTNTheory[W stn.Weight](net *stn.Network[W]) *STNTheory[W] {
	return &STNTheory[W]{
		net:      net,
		edgeAtom: make(map[stn.EdgeID]AtomID),
	}
}

// Network returns the underlying STN, e.g. to query LB/UB after a solve.
func (t *STNTheory[W]) Network() *stn.Network[W] { return t.net }

// RecordAtom records atom as an inactive edge in the network and returns a
// fresh AtomID for it.
func (t *STNTheory[W]) RecordAtom(atom DiffAtom[W]) AtomID {
	edge := t.net.AddInactiveEdge(atom.Source, atom.Target, atom.Weight)
	id := AtomID(len(t.atomEdge))
	t.atomEdge = append(t.atomEdge, edge)
	t.edgeAtom[edge] = id
	return id
}

// Enable activates the edge recorded for atom.
func (t *STNTheory[W]) Enable(atom AtomID) {
	t.net.MarkActive(t.atomEdge[atom])
}

// Deduce runs Cesta96 propagation to a fixpoint and, on inconsistency,
// translates the reported cycle edges into a duplicate-free AtomID set.
func (t *STNTheory[W]) Deduce() (TheoryStatus, []AtomID) {
	status, cycle := t.net.PropagateAll()
	if status == stn.Consistent {
		return TheoryConsistent, nil
	}

	seen := make(map[AtomID]bool, len(cycle))
	culprits := make([]AtomID, 0, len(cycle))
	for _, e := range cycle {
		id, ok := t.edgeAtom[e]
		if !ok {
			// internal bound edges never appear in a reported cycle, and
			// every non-internal edge was recorded via RecordAtom.
			continue
		}
		if seen[id] {
			// a simple cycle never revisits the same edge twice; the cause
			// chain PropagateAll walked is corrupt if it does.
			panicDuplicateCulprit(id)
		}
		seen[id] = true
		culprits = append(culprits, id)
	}
	return TheoryInconsistent, culprits
}

// SetBacktrackPoint forwards to the network.
func (t *STNTheory[W]) SetBacktrackPoint() uint32 {
	return t.net.SetBacktrackPoint()
}

// UndoToLastBacktrackPoint forwards to the network.
func (t *STNTheory[W]) UndoToLastBacktrackPoint() (uint32, bool) {
	return t.net.UndoToLastBacktrackPoint()
}

// GetLastBacktrackPoint forwards to the network.
func (t *STNTheory[W]) GetLastBacktrackPoint() uint32 {
	return t.net.GetLastBacktrackPoint()
}

// BacktrackTo forwards to the network.
func (t *STNTheory[W]) BacktrackTo(level uint32) {
	t.net.BacktrackTo(level)
}
