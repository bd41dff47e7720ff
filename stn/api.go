package stn

// Network is the public façade over an incremental Simple Temporal Network.
// A zero Network is not usable; construct one with New.
type Network[W Weight] struct {
	trail Trail[W]

	constraints []Constraint[W]
	activeOut   [][]EdgeID // activeOut[n] = outgoing active edges of n, insertion order
	activeIn    [][]EdgeID // activeIn[n]  = incoming active edges of n, insertion order
	distances   []Distance[W]

	pending []EdgeID // FIFO queue of edges marked active but not yet propagated

	currentLevel uint32 // the backtrack level the network is currently at

	explanation []EdgeID // reusable buffer aliased by the last Inconsistent result

	// scratch buffers reused across propagate() calls to avoid per-call
	// allocation on the hot incremental path.
	queueBuf []NodeID
	inQueue  []bool
}

// New returns a fresh Network containing only the origin at [0,0]. The
// trail is empty: the origin can never be undone.
func New[W Weight]() *Network[W] {
	n := &Network[W]{}
	origin := n.addNode(0, 0)
	if origin != Origin {
		panic("stn: New: origin did not receive id 0")
	}
	n.trail.reset()
	return n
}

// Origin returns the fixed identifier of the network's origin time-point.
func (n *Network[W]) Origin() NodeID { return Origin }

// NumNodes returns the number of time-points, including the origin.
func (n *Network[W]) NumNodes() int { return len(n.distances) }

// NumEdges returns the number of recorded constraints, active or not.
func (n *Network[W]) NumEdges() int { return len(n.constraints) }

// AddNode adds a time-point with domain [lb, ub] and returns its id. Two
// internal bound edges (origin->id weight ub, id->origin weight -lb) are
// inserted and marked active; they are omitted from explanations. Adding a
// node can never itself produce an inconsistency.
//
// Panics if lb > ub.
func (n *Network[W]) AddNode(lb, ub W) NodeID {
	if lb > ub {
		panicBadBounds(lb, ub)
	}
	return n.addNode(lb, ub)
}

func (n *Network[W]) addNode(lb, ub W) NodeID {
	id := NodeID(len(n.activeOut))
	n.activeOut = append(n.activeOut, nil)
	n.activeIn = append(n.activeIn, nil)
	n.trail.push(Event[W]{Kind: evNodeAdded})

	fwdEdge := n.addConstraint(Constraint[W]{Source: n.Origin(), Target: id, Weight: ub, Internal: true})
	n.markActive(fwdEdge)
	bwdEdge := n.addConstraint(Constraint[W]{Source: id, Target: n.Origin(), Weight: -lb, Internal: true})
	n.markActive(bwdEdge)

	n.distances = append(n.distances, Distance[W]{
		Forward:      ub,
		ForwardCause: fwdEdge,
		Backward:     -lb,
		BackwardCause: bwdEdge,
	})
	return id
}

// AddInactiveEdge records a non-internal, inactive constraint and returns
// its id. The network remains consistent after this call since the edge
// does not yet participate in propagation; activate it with MarkActive.
//
// Panics if source or target do not name an existing node.
func (n *Network[W]) AddInactiveEdge(source, target NodeID, weight W) EdgeID {
	n.checkNode("AddInactiveEdge", source)
	n.checkNode("AddInactiveEdge", target)
	return n.addConstraint(Constraint[W]{Source: source, Target: target, Weight: weight})
}

// AddEdge is AddInactiveEdge followed by MarkActive.
func (n *Network[W]) AddEdge(source, target NodeID, weight W) EdgeID {
	e := n.AddInactiveEdge(source, target, weight)
	n.MarkActive(e)
	return e
}

func (n *Network[W]) addConstraint(c Constraint[W]) EdgeID {
	if int(c.Source) >= len(n.activeOut) || c.Source < 0 {
		panicUnknownNode("AddEdge", c.Source)
	}
	if int(c.Target) >= len(n.activeOut) || c.Target < 0 {
		panicUnknownNode("AddEdge", c.Target)
	}
	id := EdgeID(len(n.constraints))
	n.constraints = append(n.constraints, c)
	n.trail.push(Event[W]{Kind: evEdgeAdded})
	return id
}

// MarkActive enqueues edge for propagation. No change is committed to the
// network until the next call to PropagateAll.
func (n *Network[W]) MarkActive(e EdgeID) {
	if int(e) < 0 || int(e) >= len(n.constraints) {
		panicUnknownEdge("MarkActive", e)
	}
	n.markActive(e)
}

func (n *Network[W]) markActive(e EdgeID) {
	n.pending = append(n.pending, e)
	n.trail.push(Event[W]{Kind: evNewPendingActivation})
}

// PropagateAll drains the pending-activation queue, running Cesta96 after
// each activation. It returns Consistent, or Inconsistent together with the
// negative cycle's edges (non-internal only). The returned slice aliases an
// internal buffer invalidated by the next mutating call on this Network.
//
// Once PropagateAll returns Inconsistent, only UndoToLastBacktrackPoint is a
// defined operation on this Network.
func (n *Network[W]) PropagateAll() (Status, []EdgeID) {
	for len(n.pending) > 0 {
		e := n.pending[0]
		n.pending = n.pending[1:]

		c := &n.constraints[e]
		if c.Active {
			continue
		}
		c.Active = true
		n.activeOut[c.Source] = append(n.activeOut[c.Source], e)
		n.activeIn[c.Target] = append(n.activeIn[c.Target], e)
		n.trail.push(Event[W]{Kind: evEdgeActivated, Edge: e})

		if status, cycle := n.propagate(e); status != Consistent {
			return status, cycle
		}
	}
	return Consistent, nil
}

// SetBacktrackPoint marks the current state as a restorable point and
// returns its level.
func (n *Network[W]) SetBacktrackPoint() uint32 {
	n.currentLevel = n.trail.setBacktrackPoint()
	return n.currentLevel
}

// GetLastBacktrackPoint returns the level the network is currently at: the
// level BacktrackTo(that level) would be a no-op at.
func (n *Network[W]) GetLastBacktrackPoint() uint32 {
	return n.currentLevel
}

// BacktrackTo undoes backtrack points one at a time until the network is at
// level, or until the trail is exhausted, whichever comes first. A no-op if
// level is already the current level.
func (n *Network[W]) BacktrackTo(level uint32) {
	for n.currentLevel > level {
		if _, ok := n.UndoToLastBacktrackPoint(); !ok {
			return
		}
	}
}

// UndoToLastBacktrackPoint reverses every event back to (and including) the
// most recent Level marker, restoring the network to the state it was in
// when that marker's SetBacktrackPoint call returned. It returns the level
// of the marker it removed, or false if the trail held no Level marker (the
// network is back to its state right after New).
func (n *Network[W]) UndoToLastBacktrackPoint() (uint32, bool) {
	for {
		ev, ok := n.trail.popEvent()
		if !ok {
			return 0, false
		}
		switch ev.Kind {
		case evLevel:
			// Levels are nesting depths: the next SetBacktrackPoint reuses
			// the level just removed.
			n.trail.level = ev.Level - 1
			n.currentLevel = ev.Level - 1
			return ev.Level, true
		case evNodeAdded:
			n.activeOut = n.activeOut[:len(n.activeOut)-1]
			n.activeIn = n.activeIn[:len(n.activeIn)-1]
			n.distances = n.distances[:len(n.distances)-1]
		case evEdgeAdded:
			n.constraints = n.constraints[:len(n.constraints)-1]
		case evNewPendingActivation:
			// propagate() already drains n.pending as it dequeues each
			// edge, so by the time a PropagateAll call returns (Consistent
			// or Inconsistent) the edges it processed are gone from
			// n.pending; undoing their NewPendingActivation event is then a
			// no-op, matching cesta.rs's pending_activations.pop_back() on
			// an empty deque.
			if len(n.pending) > 0 {
				n.pending = n.pending[:len(n.pending)-1]
			}
		case evEdgeActivated:
			c := &n.constraints[ev.Edge]
			out := n.activeOut[c.Source]
			n.activeOut[c.Source] = out[:len(out)-1]
			in := n.activeIn[c.Target]
			n.activeIn[c.Target] = in[:len(in)-1]
			c.Active = false
		case evForwardUpdate:
			d := &n.distances[ev.Node]
			d.Forward = ev.PrevDist
			d.ForwardCause = ev.PrevCause
		case evBackwardUpdate:
			d := &n.distances[ev.Node]
			d.Backward = ev.PrevDist
			d.BackwardCause = ev.PrevCause
		}
	}
}

// Active reports whether edge e has been activated (propagated into the
// network), as opposed to merely recorded.
func (n *Network[W]) Active(e EdgeID) bool {
	if int(e) < 0 || int(e) >= len(n.constraints) {
		panicUnknownEdge("Active", e)
	}
	return n.constraints[e].Active
}

// Constraint returns a copy of the constraint recorded for edge e,
// including internal bound edges. Intended for read-only diagnostics
// (package stndiag); the incremental propagator never calls it.
func (n *Network[W]) Constraint(e EdgeID) Constraint[W] {
	if int(e) < 0 || int(e) >= len(n.constraints) {
		panicUnknownEdge("Constraint", e)
	}
	return n.constraints[e]
}

// OutEdges returns a copy of the edge ids currently active and outgoing
// from node, in activation order.
func (n *Network[W]) OutEdges(node NodeID) []EdgeID {
	n.checkNode("OutEdges", node)
	out := make([]EdgeID, len(n.activeOut[node]))
	copy(out, n.activeOut[node])
	return out
}

// LB returns the current lower bound on node n's time value.
func (n *Network[W]) LB(node NodeID) W {
	n.checkNode("LB", node)
	return -n.distances[node].Backward
}

// UB returns the current upper bound on node n's time value.
func (n *Network[W]) UB(node NodeID) W {
	n.checkNode("UB", node)
	return n.distances[node].Forward
}

func (n *Network[W]) checkNode(method string, node NodeID) {
	if int(node) < 0 || int(node) >= len(n.distances) {
		panicUnknownNode(method, node)
	}
}
