package stndiag

import "github.com/katalvlaran/cesta/stn"

// Reachable reports whether to is reachable from from by a path of
// currently active edges, explored breadth-first (adapted from the
// teacher's algorithms.BFS, minus its hook/cancellation machinery, which
// this read-only diagnostic has no use for).
func Reachable[W stn.Weight](net *stn.Network[W], from, to stn.NodeID) bool {
	if from == to {
		return true
	}

	visited := make([]bool, net.NumNodes())
	visited[from] = true
	queue := []stn.NodeID{from}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, e := range net.OutEdges(u) {
			v := net.Constraint(e).Target
			if visited[v] {
				continue
			}
			if v == to {
				return true
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}
	return false
}
