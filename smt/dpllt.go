package smt

// Driver runs the DPLL(T) loop: a CDCL propositional search coupled to a
// theory through a Mapping. Two interleaving granularities are offered by
// Solve's lazy argument; see package doc.
type Driver struct {
	engine  CDCL
	theory  TheoryOps
	mapping *Mapping
}

// NewDriver returns a Driver coupling engine to theory via mapping. mapping
// must already reflect every atom the theory knows about: callers build it
// by recording atoms with the theory (Theory.RecordAtom) and binding each
// resulting AtomID to the CDCL literal that should enable it.
func NewDriver(engine CDCL, theory TheoryOps, mapping *Mapping) *Driver {
	return &Driver{engine: engine, theory: theory, mapping: mapping}
}

// Solve runs the coupled search to completion. lazy selects the
// interleaving granularity: eager checks the theory after every CDCL
// inference, lazy checks it once per complete CDCL model. A non-nil error
// is always an engine-internal failure surfaced by the underlying CDCL,
// never a SAT/UNSAT outcome: those are reported through SearchResult.
func (d *Driver) Solve(lazy bool) (SearchResult, Model, error) {
	if lazy {
		return d.solveLazy()
	}
	return d.solveEager()
}

// solveEager interleaves theory deduction with CDCL at the finest
// granularity CDCL exposes: every batch of literals CDCL infers is
// immediately routed through the theory before the next decision is made.
func (d *Driver) solveEager() (SearchResult, Model, error) {
	for {
		pr, err := d.engine.Propagate()
		if err != nil {
			return SearchResult{}, nil, err
		}

		switch pr.Outcome {
		case PropagateConflict:
			cr, err := d.engine.HandleConflict(pr.Clause)
			if err != nil {
				return SearchResult{}, nil, err
			}
			switch cr.Outcome {
			case ConflictUnsat:
				return SearchResult{Outcome: SearchUnsolvable}, nil, nil
			case ConflictBacktracked:
				for i := 0; i < cr.NumBacktracks; i++ {
					d.theory.UndoToLastBacktrackPoint()
				}
				d.enableLiterals([]Lit{cr.Inferred})
			}
			continue

		case PropagateInferred:
			d.enableLiterals(pr.Inferred)
			status, culprits := d.theory.Deduce()
			if status == TheoryInconsistent {
				d.engine.AddForgettableClause(buildCulpritClause(culprits, d.mapping))
				continue
			}

			lit, ok := d.engine.NextDecision()
			if !ok {
				return SearchResult{Outcome: SearchSolved}, d.engine.Model(), nil
			}
			d.theory.SetBacktrackPoint()
			d.engine.Decide(lit)
		}
	}
}

// solveLazy lets CDCL find a complete Boolean model unconstrained by the
// theory, then replays that model's literals into the theory in the exact
// order CDCL assigned them, so an incremental theory like stn reports a
// conflict against the earliest possible prefix. On a theory conflict the
// culprit clause is learned and CDCL is asked to search again from scratch.
func (d *Driver) solveLazy() (SearchResult, Model, error) {
	for {
		sr, model, err := d.engine.Solve()
		if err != nil {
			return SearchResult{}, nil, err
		}
		switch sr.Outcome {
		case SearchUnsolvable:
			return sr, nil, nil
		case SearchAbandoned:
			panicUnexpectedAbandoned()
		}

		d.theory.SetBacktrackPoint()
		d.enableLiterals(model.SetLiterals())
		status, culprits := d.theory.Deduce()
		if status == TheoryConsistent {
			return SearchResult{Outcome: SearchSolved}, model, nil
		}
		d.engine.AddForgettableClause(buildCulpritClause(culprits, d.mapping))
		d.theory.UndoToLastBacktrackPoint()
	}
}

func (d *Driver) enableLiterals(lits []Lit) {
	for _, lit := range lits {
		for _, atom := range d.mapping.AtomsOf(lit) {
			d.theory.Enable(atom)
		}
	}
}

// buildCulpritClause turns a theory's culprit atom set into a learned
// clause: the negation of each culprit's literal, deduplicated by negated
// literal since several atoms can map to the same literal.
func buildCulpritClause(culprits []AtomID, mapping *Mapping) []Lit {
	seen := make(map[Lit]bool, len(culprits))
	clause := make([]Lit, 0, len(culprits))
	for _, atom := range culprits {
		lit, ok := mapping.LiteralOf(atom)
		if !ok {
			continue
		}
		neg := lit.Negate()
		if seen[neg] {
			continue
		}
		seen[neg] = true
		clause = append(clause, neg)
	}
	return clause
}
