package stndiag

import "github.com/katalvlaran/cesta/stn"

// sentinelInfinity stands in for "no path" in the dense closure. It is
// deliberately a moderate constant rather than a type-max: Check is a test
// and debugging oracle for networks built with small bounded weights (see
// package stnbuilder), not a production APSP service, so overflow headroom
// on addition matters more than representing astronomically large weights.
const sentinelInfinity = 1 << 30

// Mismatch records one bound stndiag's closure disagrees with the
// incremental propagator on.
type Mismatch[W stn.Weight] struct {
	Node            stn.NodeID
	Field           string // "Forward" or "Backward"
	Incremental     W      // net.UB(Node) or -net.LB(Node)
	ClosureComputed W
}

// Report is Check's result.
type Report[W stn.Weight] struct {
	Consistent bool
	Mismatches []Mismatch[W]
}

// Check recomputes all-pairs shortest distances over net's active
// constraints with a dense Floyd–Warshall closure (k→i→j loop order,
// matching the teacher's matrix.FloydWarshall) and compares the
// origin-relative distances against net.UB/net.LB. A net that last returned
// Consistent from PropagateAll should always produce an empty Report.
func Check[W stn.Weight](net *stn.Network[W]) Report[W] {
	n := net.NumNodes()
	inf := W(sentinelInfinity)

	dist := make([][]W, n)
	for i := range dist {
		dist[i] = make([]W, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = inf
			}
		}
	}

	for e := 0; e < net.NumEdges(); e++ {
		c := net.Constraint(stn.EdgeID(e))
		if !c.Active {
			continue
		}
		if c.Weight < dist[c.Source][c.Target] {
			dist[c.Source][c.Target] = c.Weight
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] >= inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] >= inf {
					continue
				}
				if cand := dist[i][k] + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	origin := net.Origin()
	report := Report[W]{Consistent: true}
	for node := stn.NodeID(0); int(node) < n; node++ {
		if want, got := dist[origin][node], net.UB(node); want != got {
			report.Consistent = false
			report.Mismatches = append(report.Mismatches, Mismatch[W]{
				Node: node, Field: "Forward", Incremental: got, ClosureComputed: want,
			})
		}
		if want, got := dist[node][origin], -net.LB(node); want != got {
			report.Consistent = false
			report.Mismatches = append(report.Mismatches, Mismatch[W]{
				Node: node, Field: "Backward", Incremental: got, ClosureComputed: want,
			})
		}
	}
	return report
}
