package solver

import (
	"fmt"

	"github.com/tilecraft/wfc3d/bitset"
	"github.com/tilecraft/wfc3d/compiler"
	"github.com/tilecraft/wfc3d/geom"
)

// ErrUnsatisfiable is returned when boundary seeding or propagation empties
// some cell's domain.
var ErrUnsatisfiable = fmt.Errorf("solver: catalog admits no solution for this grid")

type queueEntry struct {
	point  geom.Point
	domain bitset.Set
}

// PropagatePoint runs the AC-3-style worklist: it intersects origin's
// domain with mask, and for every change that results, recomputes and
// enqueues the potential domain it implies for each neighbor, in the fixed
// direction order up, down, backward, forward, left, right. It returns the
// queue's high-water mark alongside any error, for Stats.QueueHighWater.
func PropagatePoint(grid *FieldGrid, c *compiler.Compiled, origin geom.Point, mask bitset.Set) (int, error) {
	queue := []queueEntry{{origin, mask}}
	highWater := len(queue)

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		updated, changed := grid.Update(entry.point, entry.domain)
		if !changed {
			continue
		}
		if updated.IsEmpty() {
			return highWater, ErrUnsatisfiable
		}

		for _, dir := range geom.Directions {
			neighbor, ok := entry.point.Neighbor(dir, grid.Dims)
			if !ok {
				continue
			}
			potential := potentialDomain(c, dir, updated)
			if grid.ShouldUpdate(neighbor, potential) {
				queue = append(queue, queueEntry{neighbor, potential})
			}
		}
		if len(queue) > highWater {
			highWater = len(queue)
		}
	}
	return highWater, nil
}

// potentialDomain computes the union, over every transformation still
// possible in domain, of what the adjacency table for dir permits on that
// side - i.e. everything a neighbor in direction dir is still allowed to be.
func potentialDomain(c *compiler.Compiled, dir geom.Direction, domain bitset.Set) bitset.Set {
	table := c.Table(dir)
	bits := domain.SetBits()
	masks := make([]bitset.Set, len(bits))
	for i, b := range bits {
		masks[i] = table[b]
	}
	result := bitset.Union(c.Len(), masks)
	return result
}
