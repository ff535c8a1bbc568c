// Package dijkstra implements uniform-cost search for a robot crossing
// a square cost grid with four-directional moves.
//
// Notes on implementation choices:
//
//   - Entering a cell costs that cell's value; the start cell is never charged.
//   - The loop stops as soon as the end cell is popped.
//   - We use a “lazy” decrease-key strategy: improved cells are pushed again
//     and the superseded heap entries stay behind. A stale pop relaxes against
//     an already final dist entry, so it cannot change anything.
//   - Corners are recorded while exploring, not by scanning the final path,
//     so VisitedCorners may contain corners the path never touches.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/robopath/gridgraph"
)

// FindOptimalPath computes a minimum-cost path from start to end over g.
//
// Returns:
//
//   - Result with Path, TotalCost and VisitedCorners. An end that cannot be
//     reached is a reported state (TotalCost == Unreachable, empty Path),
//     not an error.
//   - err: only for precondition violations, checked in order:
//     ErrOptionViolation, ErrNilGrid, ErrStartOutOfBounds, ErrEndOutOfBounds.
//
// start == end yields Path [start], TotalCost 0 and no corners.
//
// Complexity:
//
//   - Time:  O(n² log n) for an n×n grid (each cell has at most 4 edges).
//   - Space: O(n²).
func FindOptimalPath(g *gridgraph.GridGraph, start, end gridgraph.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: %s on %dx%d grid", ErrStartOutOfBounds, start, g.Size(), g.Size())
	}
	if !g.Contains(end) {
		return Result{}, fmt.Errorf("%w: %s on %dx%d grid", ErrEndOutOfBounds, end, g.Size(), g.Size())
	}

	cells := g.Size() * g.Size()
	r := &runner{
		g:          g,
		options:    cfg,
		start:      start,
		end:        end,
		dist:       make(map[gridgraph.Coordinate]int64, cells),
		prev:       make(map[gridgraph.Coordinate]gridgraph.Coordinate, cells),
		cornerSeen: make(map[gridgraph.Coordinate]struct{}, 4),
		pq:         make(nodePQ, 0, cells),
	}
	r.init()
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search. Nothing in it
// outlives the FindOptimalPath call.
type runner struct {
	g          *gridgraph.GridGraph                          // The input grid; read-only within the search.
	options    Options                                       // Hooks and the cost cap.
	start, end gridgraph.Coordinate                          // Fixed endpoints of this search.
	dist       map[gridgraph.Coordinate]int64                // Best known cost; absent means not reached.
	prev       map[gridgraph.Coordinate]gridgraph.Coordinate // Predecessor on the best path; start has no entry.
	cornerSeen map[gridgraph.Coordinate]struct{}             // Corners already recorded, for O(1) duplicate checks.
	corners    []gridgraph.Coordinate                        // Recorded corners in discovery order.
	pq         nodePQ                                        // Min-heap of *nodeItem for the lazy frontier.
	seq        uint64                                        // Push counter for the FIFO tie-break.
}

// init seeds the distance map and the frontier with the start cell.
func (r *runner) init() {
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// process pops cells in increasing cost order until the end is popped,
// the frontier drains, or the cost cap is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry. Its cost is read from dist, not from
		//    the heap item, so a superseded entry sees the final value.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.coord
		d := r.dist[u]

		r.options.OnDequeue(u, d)

		// 2) The end is final once popped; stop without draining the heap.
		if u == r.end {
			break
		}

		// 3) Everything left costs more than the cap, so nothing else can be reached.
		if d > r.options.MaxCost {
			break
		}

		// 4) Record corners before expanding so discovery order follows pop order.
		r.recordCorner(u)

		// 5) Relax the up-to-four neighbours of u.
		r.relax(u, d)
	}
}

// recordCorner appends u to the corner list the first time it is popped,
// unless u is the start cell. Stale pops reach here too; the set keeps
// each corner unique.
func (r *runner) recordCorner(u gridgraph.Coordinate) {
	if u == r.start || !r.g.IsCorner(u.Row, u.Col) {
		return
	}
	if _, ok := r.cornerSeen[u]; ok {
		return
	}
	r.cornerSeen[u] = struct{}{}
	r.corners = append(r.corners, u)
	r.options.OnCorner(u)
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u gridgraph.Coordinate, d int64) {
	for _, nb := range r.g.Neighbors(u.Row, u.Col) {
		// Entering nb costs nb's own value. gridgraph caps cell costs so
		// this sum cannot overflow.
		candidate := d + nb.Cost

		// Keep the existing entry unless strictly improved; ">=" avoids
		// pushing equal-cost duplicates.
		if best, ok := r.dist[nb.Coord]; ok && candidate >= best {
			continue
		}

		// Record the improvement and push a fresh heap entry. Any older
		// entry for nb stays in the heap (lazy decrease-key).
		r.dist[nb.Coord] = candidate
		r.prev[nb.Coord] = u
		r.push(nb.Coord, candidate)
	}
}

func (r *runner) push(c gridgraph.Coordinate, cost int64) {
	heap.Push(&r.pq, &nodeItem{coord: c, cost: cost, seq: r.seq})
	r.seq++
}

// result copies the search state into a fresh Result.
func (r *runner) result() Result {
	corners := make([]gridgraph.Coordinate, len(r.corners))
	copy(corners, r.corners)

	if r.start == r.end {
		return Result{Path: []gridgraph.Coordinate{r.start}, TotalCost: 0, VisitedCorners: corners}
	}
	if _, ok := r.prev[r.end]; !ok {
		return Result{Path: nil, TotalCost: Unreachable, VisitedCorners: corners}
	}
	// A cost cap can stop the loop after end was reached but before its
	// cost was final, so only a popped end is trusted.
	if r.dist[r.end] > r.options.MaxCost {
		return Result{Path: nil, TotalCost: Unreachable, VisitedCorners: corners}
	}

	path := []gridgraph.Coordinate{r.end}
	for cur := r.end; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Path: path, TotalCost: r.dist[r.end], VisitedCorners: corners}
}

// nodeItem is a frontier entry. Superseded entries for the same cell may
// remain in the heap.
type nodeItem struct {
	coord gridgraph.Coordinate
	cost  int64  // priority at push time
	seq   uint64 // push order
}

// nodePQ is a min-heap of *nodeItem ordered by cost, then by push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
