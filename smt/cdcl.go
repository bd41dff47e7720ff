package smt

// Var is a propositional variable. Lit is a literal over a Var: Lit(v) is
// the positive literal, Lit(-v) its negation, for v > 0.
type Var int32

// Lit is a signed literal. Negate returns the complementary literal.
type Lit int32

// Negate returns the complementary literal.
func (l Lit) Negate() Lit { return -l }

// Var returns the underlying variable of a literal, discarding its sign.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

// Model is a read-only snapshot of a satisfying assignment.
type Model interface {
	// Value reports the assigned truth value of v, if set.
	Value(v Var) (bool, bool)
	// SetLiterals returns every literal set in the assignment, in the exact
	// order the CDCL engine set them. The lazy driver depends on this order
	// being load-bearing: see Driver.solveLazy.
	SetLiterals() []Lit
}

// PropagateOutcome tags the result of CDCL.Propagate.
type PropagateOutcome uint8

const (
	PropagateInferred PropagateOutcome = iota
	PropagateConflict
)

// PropagateResult is CDCL.Propagate's result: either a conflict clause, or
// the literals inferred since the last call. A non-nil error from Propagate
// is an engine-internal failure (not a SAT/UNSAT outcome, which is always
// reported through Outcome) and aborts the driver's search immediately.
type PropagateResult struct {
	Outcome  PropagateOutcome
	Clause   []Lit // PropagateConflict
	Inferred []Lit // PropagateInferred
}

// ConflictOutcome tags the result of CDCL.HandleConflict.
type ConflictOutcome uint8

const (
	ConflictBacktracked ConflictOutcome = iota
	ConflictUnsat
)

// ConflictResult is CDCL.HandleConflict's result.
type ConflictResult struct {
	Outcome       ConflictOutcome
	NumBacktracks int // ConflictBacktracked, always >= 1
	Inferred      Lit // ConflictBacktracked: the literal inferred by the learned clause
}

// SearchOutcome tags the result of CDCL.Solve.
type SearchOutcome uint8

const (
	SearchSolved SearchOutcome = iota
	SearchUnsolvable
	SearchAbandoned
)

// SearchResult is CDCL.Solve's result.
type SearchResult struct {
	Outcome SearchOutcome
}

// CDCL is the contract the DPLL(T) driver consumes from the propositional
// search engine. Unit propagation, 1-UIP conflict analysis, restarts and
// clause-database management are the CDCL engine's own business and are out
// of scope for this module; this interface is the whole of what the driver
// needs from it, grounded on aries_sat::Solver's surface
// (propagate/handle_conflict/next_decision/decide/solve/
// add_forgettable_clause/model).
type CDCL interface {
	Propagate() (PropagateResult, error)
	HandleConflict(clause []Lit) (ConflictResult, error)
	NextDecision() (Lit, bool)
	Decide(lit Lit)
	Solve() (SearchResult, Model, error)
	AddForgettableClause(clause []Lit)
	Model() Model
}
