package smt_test

import (
	"testing"

	"github.com/katalvlaran/cesta/smt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCDCL is a hand-scripted CDCL test double reproducing exactly the
// sequence of calls spec scenario 6 describes: decide a literal two atoms
// share, let the theory veto it, learn the unit clause, backtrack once, and
// finish with that unit propagated. It is not a general-purpose fake: it
// asserts nothing about call order itself, it just returns the canned
// response for each phase the DPLL(T) eager loop is expected to reach.
type scriptedCDCL struct {
	phase      int
	decidedLit smt.Lit

	decideCalls         int
	handleConflictCalls int
	forgettable         [][]smt.Lit
}

func newScriptedCDCL() *scriptedCDCL { return &scriptedCDCL{} }

func (c *scriptedCDCL) Propagate() (smt.PropagateResult, error) {
	switch c.phase {
	case 0:
		return smt.PropagateResult{Outcome: smt.PropagateInferred}, nil
	case 1:
		c.phase = 2
		return smt.PropagateResult{Outcome: smt.PropagateInferred, Inferred: []smt.Lit{c.decidedLit}}, nil
	case 2:
		return smt.PropagateResult{Outcome: smt.PropagateConflict, Clause: []smt.Lit{c.decidedLit.Negate()}}, nil
	case 3:
		c.phase = 4
		return smt.PropagateResult{Outcome: smt.PropagateInferred, Inferred: []smt.Lit{c.decidedLit.Negate()}}, nil
	default:
		return smt.PropagateResult{Outcome: smt.PropagateInferred}, nil
	}
}

func (c *scriptedCDCL) HandleConflict(clause []smt.Lit) (smt.ConflictResult, error) {
	c.handleConflictCalls++
	c.phase = 3
	return smt.ConflictResult{
		Outcome:       smt.ConflictBacktracked,
		NumBacktracks: 1,
		Inferred:      c.decidedLit.Negate(),
	}, nil
}

func (c *scriptedCDCL) NextDecision() (smt.Lit, bool) {
	if c.phase == 0 {
		return 1, true
	}
	return 0, false
}

func (c *scriptedCDCL) Decide(lit smt.Lit) {
	c.decideCalls++
	c.decidedLit = lit
	c.phase = 1
}

func (c *scriptedCDCL) Solve() (smt.SearchResult, smt.Model, error) {
	panic("scriptedCDCL: Solve is not exercised by the eager driver")
}

func (c *scriptedCDCL) AddForgettableClause(clause []smt.Lit) {
	c.forgettable = append(c.forgettable, append([]smt.Lit(nil), clause...))
}

func (c *scriptedCDCL) Model() smt.Model { return scriptedModel{} }

type scriptedModel struct{}

func (scriptedModel) Value(v smt.Var) (bool, bool) {
	if v == 1 {
		return false, true
	}
	return false, false
}

func (scriptedModel) SetLiterals() []smt.Lit { return []smt.Lit{-1} }

// twoAtomTheory is a minimal Enable/Deduce/backtrack theory: it is
// inconsistent exactly when both of its two atoms are enabled at once.
type twoAtomTheory struct {
	enabled map[smt.AtomID]bool
	trail   []smt.AtomID
	marks   []int
}

func newTwoAtomTheory() *twoAtomTheory {
	return &twoAtomTheory{enabled: make(map[smt.AtomID]bool)}
}

func (th *twoAtomTheory) Enable(atom smt.AtomID) {
	th.enabled[atom] = true
	th.trail = append(th.trail, atom)
}

func (th *twoAtomTheory) Deduce() (smt.TheoryStatus, []smt.AtomID) {
	if th.enabled[0] && th.enabled[1] {
		return smt.TheoryInconsistent, []smt.AtomID{0, 1}
	}
	return smt.TheoryConsistent, nil
}

func (th *twoAtomTheory) SetBacktrackPoint() uint32 {
	th.marks = append(th.marks, len(th.trail))
	return uint32(len(th.marks))
}

func (th *twoAtomTheory) UndoToLastBacktrackPoint() (uint32, bool) {
	if len(th.marks) == 0 {
		return 0, false
	}
	level := uint32(len(th.marks))
	mark := th.marks[len(th.marks)-1]
	th.marks = th.marks[:len(th.marks)-1]
	for len(th.trail) > mark {
		atom := th.trail[len(th.trail)-1]
		th.trail = th.trail[:len(th.trail)-1]
		delete(th.enabled, atom)
	}
	return level, true
}

func (th *twoAtomTheory) GetLastBacktrackPoint() uint32 {
	return uint32(len(th.marks))
}

func (th *twoAtomTheory) BacktrackTo(level uint32) {
	for uint32(len(th.marks)) > level {
		if _, ok := th.UndoToLastBacktrackPoint(); !ok {
			return
		}
	}
}

// TestDPLLTLemmaInjection exercises scenario 6: two atoms bound to the same
// literal are jointly inconsistent, and the eager driver must learn the
// negated literal as a forgettable clause and backtrack the theory exactly
// once in response.
func TestDPLLTLemmaInjection(t *testing.T) {
	mapping := smt.NewMapping()
	mapping.Bind(1, 0)
	mapping.Bind(1, 1)

	theory := newTwoAtomTheory()
	engine := newScriptedCDCL()
	driver := smt.NewDriver(engine, theory, mapping)

	result, model, err := driver.Solve(false)

	require.NoError(t, err)
	require.Equal(t, smt.SearchSolved, result.Outcome)
	assert.Equal(t, 1, engine.handleConflictCalls)
	require.Len(t, engine.forgettable, 1)
	assert.Equal(t, []smt.Lit{-1}, engine.forgettable[0])
	assert.Equal(t, []smt.Lit{-1}, model.SetLiterals())
	assert.False(t, theory.enabled[0])
	assert.False(t, theory.enabled[1])
}

// TestMappingDuplicateCulpritsCollapseToOneLiteral checks the building block
// buildCulpritClause relies on: several atoms bound to the same literal
// resolve back to that one literal, so a culprit set naming all of them
// collapses to a single clause entry.
func TestMappingDuplicateCulpritsCollapseToOneLiteral(t *testing.T) {
	mapping := smt.NewMapping()
	mapping.Bind(5, 10)
	mapping.Bind(5, 11)
	mapping.Bind(6, 12)

	theory := &twoAtomTheory{enabled: make(map[smt.AtomID]bool)}
	theory.enabled[10] = true
	theory.enabled[11] = true
	theory.enabled[12] = true

	// Exercise the mapping side directly: every atom bound to lit 5 must
	// resolve back to the same literal.
	lit10, ok := mapping.LiteralOf(10)
	require.True(t, ok)
	lit11, ok := mapping.LiteralOf(11)
	require.True(t, ok)
	assert.Equal(t, lit10, lit11)
	assert.ElementsMatch(t, []smt.AtomID{10, 11}, mapping.AtomsOf(5))
}

func TestMappingBindTwicePanics(t *testing.T) {
	mapping := smt.NewMapping()
	mapping.Bind(1, 0)
	assert.Panics(t, func() {
		mapping.Bind(2, 0)
	})
}
