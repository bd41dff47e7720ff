// Package stnbuilder generates canned *stn.Network topologies — chain,
// cycle, star and complete — for exercising the propagator in tests and
// benchmarks without hand-writing AddNode/AddEdge call sequences.
//
// Adapted from the teacher's builder package: each topology here plays the
// role one of builder's Cycle/Path/Star/Complete constructors plays for
// core.Graph, down to validating its parameter domain up front and
// returning a sentinel error rather than panicking on a bad n. Unlike
// builder's Constructor/BuildGraph composition, topologies here are not
// composable closures: each generator creates its own *stn.Network and
// returns it with every edge marked active but not yet propagated (callers
// run PropagateAll), so composing independent topologies on one network is
// a matter of calling more than one generator's underlying AddEdge
// sequence, not of chaining builder-style functions.
package stnbuilder
