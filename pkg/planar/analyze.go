package planar

import "slices"

// Components returns the connected components of adj. Each component lists its
// vertex indices in ascending order; components are ordered by their smallest
// vertex. Self-edges never join anything.
//
// The traversal is an iterative depth-first search launched from every unvisited
// vertex, so len(result) is the number of traversals launched.
func Components(adj *Adjacency) [][]int {
	n := adj.Len()
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		component := []int{start}
		stack := []int{start}

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, next := range adj.Neighbors(current) {
				if visited[next] {
					continue
				}
				visited[next] = true
				component = append(component, next)
				stack = append(stack, next)
			}
		}

		slices.Sort(component)
		components = append(components, component)
	}
	return components
}

// FaceCount applies Euler's formula for a plane graph with c components:
// f = c + e - v + 1. The outer face is included. For v = 0 it returns 0.
//
// The result is only meaningful for a planar embedding; it is not re-verified.
func FaceCount(v, e, c int) int {
	if v == 0 {
		return 0
	}
	return c + e - v + 1
}
