package cellset

import (
	"slices"

	"github.com/katalvlaran/ndtrace/vec"
)

// ConnectedComponents groups the member cells into maximal connected regions
// under conn. Components are returned in order of their smallest cell, and
// the cells of each component are sorted lexicographically.
//
// Time:   O(|S|·d·N), d = 2N (Face) or 3^N − 1 (Corner).
// Memory: O(|S|).
func (s *Set) ConnectedComponents(conn Connectivity) [][]vec.Cell {
	if s.Len() == 0 {
		return nil
	}
	offsets := NeighborOffsets(s.dim, conn)
	seen := make(map[string]bool, len(s.cells))
	var comps [][]vec.Cell

	for _, root := range s.Cells() {
		if seen[root.Key()] {
			continue
		}
		comp := s.flood(root, offsets, seen)
		slices.SortFunc(comp, vec.Cell.Compare)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether from and to are both members and lie in the
// same component under conn.
func (s *Set) Connected(from, to vec.Cell, conn Connectivity) bool {
	if !s.Contains(from) || !s.Contains(to) {
		return false
	}
	if from.Equal(to) {
		return true
	}
	seen := make(map[string]bool, len(s.cells))
	for _, c := range s.flood(from, NeighborOffsets(s.dim, conn), seen) {
		if c.Equal(to) {
			return true
		}
	}

	return false
}

// flood collects every member reachable from root, marking them in seen.
func (s *Set) flood(root vec.Cell, offsets []vec.Cell, seen map[string]bool) []vec.Cell {
	queue := []vec.Cell{root}
	seen[root.Key()] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := u.Add(d)
			k := v.Key()
			if seen[k] {
				continue
			}
			if _, ok := s.cells[k]; !ok {
				continue
			}
			seen[k] = true
			queue = append(queue, v)
		}
	}

	return queue
}
