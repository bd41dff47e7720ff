// Package heuristic implements a VSIDS-style variable activity heap: an
// index-addressable max-heap over variables keyed by a floating-point
// activity score, with activity bumping, decay, and rescaling.
//
// It gives the variable-selection heuristic a concrete, exercised body: the
// CDCL engine that calls it is out of scope for this module (see smt.CDCL),
// but the heap it needs to pick its next branching variable is not.
//
// Grounded on aries_sat's Heur (var_inc/var_decay/1e100 rescale threshold
// reproduced exactly) and on lvlath/graph's nodePQ container/heap idiom,
// generalized here to support update-in-place: bumping an activity must be
// able to fix an arbitrary interior element, not just the root.
package heuristic
