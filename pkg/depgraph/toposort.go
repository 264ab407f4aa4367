package depgraph

import (
	"slices"

	"github.com/mengfei0517/robocasa/pkg/scene"
)

// TopoSort orders entities so each appears after everything it depends on.
// Ties are broken by declaration order: among the entities whose
// dependencies are all placed, the earliest-declared goes first, which
// keeps resolution deterministic for a fixed document.
//
// If the graph contains a cycle, TopoSort returns
// *scene.CyclicDependencyError identifying the full ordered cycle. No
// partial order is returned for a cyclic graph.
func (g *Graph) TopoSort() ([]string, error) {
	remaining := make(map[string]int, len(g.nodes))
	var ready []string
	for _, name := range g.order {
		remaining[name] = len(g.deps[name])
		if remaining[name] == 0 {
			ready = append(ready, name)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		// ready is kept sorted by declaration index.
		curr := ready[0]
		ready = ready[1:]
		order = append(order, curr)

		for _, dep := range g.dependents[curr] {
			remaining[dep]--
			if remaining[dep] == 0 {
				ready = insertByIndex(g, ready, dep)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return nil, &scene.CyclicDependencyError{Cycle: g.findCycle(remaining)}
	}
	return order, nil
}

// insertByIndex inserts name into ready keeping declaration-index order.
func insertByIndex(g *Graph, ready []string, name string) []string {
	idx := g.nodes[name].Index
	at, _ := slices.BinarySearchFunc(ready, idx, func(s string, target int) int {
		return g.nodes[s].Index - target
	})
	return slices.Insert(ready, at, name)
}

// findCycle walks the unplaced subgraph and reconstructs one full cycle,
// first entity repeated at the end, for diagnostics.
func (g *Graph) findCycle(remaining map[string]int) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(remaining))
	var path []string
	var cycle []string

	var dfs func(name string) bool
	dfs = func(name string) bool {
		color[name] = gray
		path = append(path, name)
		for _, dep := range g.deps[name] {
			if remaining[dep] == 0 {
				continue // resolved before the stall, not part of the cycle
			}
			switch color[dep] {
			case white:
				if dfs(dep) {
					return true
				}
			case gray:
				start := slices.Index(path, dep)
				cycle = append(slices.Clone(path[start:]), dep)
				return true
			}
		}
		color[name] = black
		path = path[:len(path)-1]
		return false
	}

	for _, name := range g.order {
		if remaining[name] > 0 && color[name] == white {
			if dfs(name) {
				return cycle
			}
		}
	}
	return cycle
}
