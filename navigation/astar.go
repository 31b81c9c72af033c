// Package navigation implements shortest-path search on the wrapped grid
package navigation

import (
	"github.com/lixenwraith/vi-snake/grid"
)

const (
	noParent   = -1
	unreachedG = 1<<31 - 1
)

// Pathfinder runs A* over the 4-connected toroidal grid
// Buffers are sized once per grid and reused across searches; not safe for concurrent use
type Pathfinder struct {
	grid grid.Grid

	gScore  []int
	parent  []int
	via     []grid.Direction // Direction taken to enter the cell from its parent
	closed  []bool
	blocked []bool

	// Reusable heap buffer to reduce allocations across searches
	heap minHeap

	// Expanded counts cells popped and accepted during the last search
	Expanded int
}

// NewPathfinder allocates search buffers for the given grid
func NewPathfinder(g grid.Grid) *Pathfinder {
	size := g.Size()
	return &Pathfinder{
		grid:    g,
		gScore:  make([]int, size),
		parent:  make([]int, size),
		via:     make([]grid.Direction, size),
		closed:  make([]bool, size),
		blocked: make([]bool, size),
		heap:    make(minHeap, 0, size/4+1),
	}
}

// Grid returns the grid the pathfinder was built for
func (p *Pathfinder) Grid() grid.Grid {
	return p.grid
}

// FindPath returns the moves leading from start to goal around obstacles
// ok is false when every route to goal is blocked; start == goal yields an empty path
// The start cell is never treated as blocked
func (p *Pathfinder) FindPath(start, goal grid.Cell, obstacles []grid.Cell) (path []grid.Direction, ok bool) {
	p.Expanded = 0
	if start == goal {
		return []grid.Direction{}, true
	}

	g := p.grid
	for i := range p.gScore {
		p.gScore[i] = unreachedG
		p.parent[i] = noParent
		p.closed[i] = false
		p.blocked[i] = false
	}
	for _, c := range obstacles {
		if g.Contains(c) {
			p.blocked[g.Index(c)] = true
		}
	}

	startIdx := g.Index(start)
	goalIdx := g.Index(goal)
	p.blocked[startIdx] = false
	if p.blocked[goalIdx] {
		return nil, false
	}

	p.gScore[startIdx] = 0
	p.heap = p.heap[:0]
	p.heap.push(heapEntry{idx: startIdx, g: 0, f: grid.Manhattan(start, goal)})

	for len(p.heap) > 0 {
		entry := p.heap.pop()

		// First pop is final; later copies are stale
		if p.closed[entry.idx] {
			continue
		}
		p.closed[entry.idx] = true
		p.Expanded++

		if entry.idx == goalIdx {
			return p.reconstruct(startIdx, goalIdx), true
		}

		cur := g.CellAt(entry.idx)
		for _, d := range grid.Directions {
			next := g.Step(cur, d)
			nIdx := g.Index(next)
			if p.blocked[nIdx] || p.closed[nIdx] {
				continue
			}

			ng := entry.g + 1
			if ng < p.gScore[nIdx] {
				p.gScore[nIdx] = ng
				p.parent[nIdx] = entry.idx
				p.via[nIdx] = d
				p.heap.push(heapEntry{idx: nIdx, g: ng, f: ng + grid.Manhattan(next, goal)})
			}
		}
	}

	return nil, false
}

// reconstruct walks parent links back from goal and reverses them into moves
func (p *Pathfinder) reconstruct(startIdx, goalIdx int) []grid.Direction {
	steps := p.gScore[goalIdx]
	path := make([]grid.Direction, steps)
	idx := goalIdx
	for i := steps - 1; i >= 0; i-- {
		path[i] = p.via[idx]
		idx = p.parent[idx]
	}
	if idx != startIdx {
		// Parent chain must terminate at start; anything else is a broken search
		panic("navigation: corrupted parent chain")
	}
	return path
}
