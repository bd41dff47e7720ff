package stnbuilder

import "github.com/katalvlaran/cesta/stn"

// File-local minima, named rather than inlined, matching the teacher's
// builder package convention of one constant per topology's floor.
const (
	minChainNodes    = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 2
)

// Chain builds a path of nodes n0 -> n1 -> ... -> nk, each domain
// [0, nodeBound], with weights[i] the edge from node i to node i+1. len
// determines node count: len(weights)+1 nodes. Returns ErrTooFewNodes if
// that would be fewer than two nodes.
func Chain[W stn.Weight](nodeBound W, weights []W) (*stn.Network[W], error) {
	n := len(weights) + 1
	if n < minChainNodes {
		return nil, ErrTooFewNodes
	}

	net := stn.New[W]()
	nodes := make([]stn.NodeID, n)
	for i := range nodes {
		nodes[i] = net.AddNode(0, nodeBound)
	}
	for i, w := range weights {
		net.AddEdge(nodes[i], nodes[i+1], w)
	}
	return net, nil
}

// Cycle builds a directed ring n0 -> n1 -> ... -> n(k-1) -> n0, each domain
// [0, nodeBound], with weights[i] the edge from node i to node (i+1)%n.
// Node count is len(weights); returns ErrTooFewNodes below three nodes,
// since a two-node "cycle" degenerates to the two-edge case spec scenario 3
// already covers directly.
func Cycle[W stn.Weight](nodeBound W, weights []W) (*stn.Network[W], error) {
	n := len(weights)
	if n < minCycleNodes {
		return nil, ErrTooFewNodes
	}

	net := stn.New[W]()
	nodes := make([]stn.NodeID, n)
	for i := range nodes {
		nodes[i] = net.AddNode(0, nodeBound)
	}
	for i, w := range weights {
		net.AddEdge(nodes[i], nodes[(i+1)%n], w)
	}
	return net, nil
}

// Star builds a hub node and len(spokeWeights) leaves, each domain
// [0, nodeBound], with one directed edge hub -> leaf[i] weighted
// spokeWeights[i]. Node count is len(spokeWeights)+1 (the hub); returns
// ErrTooFewNodes below two nodes.
func Star[W stn.Weight](nodeBound W, spokeWeights []W) (*stn.Network[W], error) {
	n := len(spokeWeights) + 1
	if n < minStarNodes {
		return nil, ErrTooFewNodes
	}

	net := stn.New[W]()
	hub := net.AddNode(0, nodeBound)
	for _, w := range spokeWeights {
		leaf := net.AddNode(0, nodeBound)
		net.AddEdge(hub, leaf, w)
	}
	return net, nil
}

// Complete builds the complete directed graph K_n: n nodes, each domain
// [0, nodeBound], with a directed edge of weight edgeWeight between every
// ordered pair of distinct nodes. Edge count is n*(n-1); returns
// ErrTooFewNodes below two nodes.
func Complete[W stn.Weight](n int, nodeBound, edgeWeight W) (*stn.Network[W], error) {
	if n < minCompleteNodes {
		return nil, ErrTooFewNodes
	}

	net := stn.New[W]()
	nodes := make([]stn.NodeID, n)
	for i := range nodes {
		nodes[i] = net.AddNode(0, nodeBound)
	}
	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			net.AddEdge(nodes[i], nodes[j], edgeWeight)
		}
	}
	return net, nil
}
