package smt

// TheoryStatus reports whether a theory's current set of enabled atoms is
// consistent.
type TheoryStatus uint8

const (
	TheoryConsistent TheoryStatus = iota
	TheoryInconsistent
)

func (s TheoryStatus) String() string {
	if s == TheoryConsistent {
		return "TheoryConsistent"
	}
	return "TheoryInconsistent"
}

// TheoryOps is the part of a theory's contract the DPLL(T) drivers exercise
// during search. It is deliberately not generic over the theory's atom
// representation: once atoms are recorded (see Theory[Atom].RecordAtom) the
// drivers only ever handle the resulting AtomIDs.
//
// Enable and Deduce must both be safe to call repeatedly and in any order
// consistent with backtracking: the driver backtracks the theory's internal
// state by the same chronological trail discipline stn.Network uses, via
// SetBacktrackPoint/UndoToLastBacktrackPoint.
type TheoryOps interface {
	// Enable asserts the atom is true. It does not itself run deduction:
	// Deduce must be called to discover the consequences (and possibly an
	// inconsistency) of the currently enabled atoms.
	Enable(atom AtomID)

	// Deduce propagates the currently enabled atoms to a fixpoint. On
	// TheoryInconsistent, the returned atom ids are a (duplicate-free)
	// culprit set: a set of currently-enabled atoms whose conjunction is
	// already unsatisfiable, used to build a learned clause.
	Deduce() (TheoryStatus, []AtomID)

	// SetBacktrackPoint marks the current state for later restoration and
	// returns an opaque backtracking level.
	SetBacktrackPoint() uint32

	// UndoToLastBacktrackPoint reverts every atom enabled since the most
	// recent SetBacktrackPoint, returning the level of the backtrack point
	// it removed. Reports false if there was no backtrack point to undo to.
	UndoToLastBacktrackPoint() (uint32, bool)

	// GetLastBacktrackPoint returns the level the theory is currently at:
	// the level BacktrackTo(that level) would be a no-op at.
	GetLastBacktrackPoint() uint32

	// BacktrackTo undoes backtrack points one at a time until the theory is
	// at level, or until it has no more backtrack points to undo, whichever
	// comes first. A no-op if level is already the current level.
	BacktrackTo(level uint32)
}

// Theory is the contract a theory solver (e.g. *STNTheory) exposes to
// set up a DPLL(T) driver. Atom is the theory's own semantic representation
// of an atomic constraint (for stn, a difference constraint); RecordAtom is
// called once per atom before solving starts to obtain the stable AtomID
// the driver will route CDCL literals to via Mapping.
type Theory[Atom any] interface {
	TheoryOps

	// RecordAtom registers atom with the theory ahead of search and returns
	// its stable AtomID.
	RecordAtom(atom Atom) AtomID
}
