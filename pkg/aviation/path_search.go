// pkg/aviation/path_search.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// pathStep names one traversed segment and the direction it was
// traversed in.
type pathStep struct {
	segmentIndex int
	forward      bool
}

type pathEdge struct {
	segmentIndex int
	forward      bool
	to           ResolvedPoint
}

// pathSearch finds a directed simple path through segments from start to
// end. Each segment contributes two directed edges to the adjacency
// built below — start->end tagged forward, end->start tagged backward —
// with the forward edge of a segment inserted before its backward edge,
// so neighbors are explored in that insertion order. Visitation is
// tracked per segment index rather than per directed edge, so a single
// physical segment can be traversed at most once regardless of
// direction. The search is depth-first and stops at the first path
// found; it returns nil if no path exists.
func pathSearch(segments []ResolvedRouteSegment, start, end ResolvedPoint) []pathStep {
	adjacency := make(map[string][]pathEdge)
	for i, seg := range segments {
		sk, ek := seg.Start.Key(), seg.End.Key()
		adjacency[sk] = append(adjacency[sk], pathEdge{segmentIndex: i, forward: true, to: seg.End})
		adjacency[ek] = append(adjacency[ek], pathEdge{segmentIndex: i, forward: false, to: seg.Start})
	}

	visited := make([]bool, len(segments))
	var path []pathStep

	var dfs func(current ResolvedPoint) bool
	dfs = func(current ResolvedPoint) bool {
		if current.Equal(end) {
			return true
		}
		for _, e := range adjacency[current.Key()] {
			if visited[e.segmentIndex] {
				continue
			}
			visited[e.segmentIndex] = true
			path = append(path, pathStep{segmentIndex: e.segmentIndex, forward: e.forward})

			if dfs(e.to) {
				return true
			}

			path = path[:len(path)-1]
			visited[e.segmentIndex] = false
		}
		return false
	}

	if dfs(start) {
		return path
	}
	return nil
}
