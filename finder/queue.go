// File: queue.go
// Role: Candidate pair ranking and the lazily pruned max-heap.
//
// Entries are never removed when a parent retires. A popped entry whose
// parent is retired is stale and is skipped, so the heap persists across
// rounds and every pair is evaluated once.
package finder

import (
	"container/heap"
	"sync"

	"github.com/katalvlaran/frfinder/nodeset"
	"github.com/katalvlaran/frfinder/region"
)

// pair is a candidate merge of two arena slots.
type pair struct {
	i, j   int // arena indices, i < j
	iNodes nodeset.NodeSet
	jNodes nodeset.NodeSet
	merged *region.Region
	imbal  int // |case − ctrl| support of merged
}

// pairBetter reports whether a outranks b.
//
// Order:
//  1. With caseCtrl, larger |case − ctrl| first.
//  2. Larger merged region by region.Compare.
//  3. Smaller parent node sets, so ties never depend on evaluation order.
func pairBetter(a, b *pair, caseCtrl bool) bool {
	if caseCtrl && a.imbal != b.imbal {
		return a.imbal > b.imbal
	}
	if c := region.Compare(a.merged, b.merged); c != 0 {
		return c > 0
	}
	if c := a.iNodes.Compare(b.iNodes); c != 0 {
		return c < 0
	}

	return a.jNodes.Compare(b.jNodes) < 0
}

// pairPQ is a max-heap of *pair ordered by pairBetter.
type pairPQ struct {
	items    []*pair
	caseCtrl bool
}

// Len returns the number of items in the heap.
func (pq *pairPQ) Len() int { return len(pq.items) }

// Less puts the better pair first.
func (pq *pairPQ) Less(i, j int) bool { return pairBetter(pq.items[i], pq.items[j], pq.caseCtrl) }

// Swap swaps two elements in the heap.
func (pq *pairPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *pairPQ) Push(x any) { pq.items = append(pq.items, x.(*pair)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *pairPQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]

	return item
}

// pairQueue guards pairPQ for concurrent producers and a single consumer.
type pairQueue struct {
	mu sync.Mutex
	pq pairPQ
}

func newPairQueue(caseCtrl bool) *pairQueue {
	return &pairQueue{pq: pairPQ{caseCtrl: caseCtrl}}
}

// push inserts p. Safe for concurrent use.
func (q *pairQueue) push(p *pair) {
	q.mu.Lock()
	heap.Push(&q.pq, p)
	q.mu.Unlock()
}

// popLive returns the best pair whose parents are both live, discarding
// stale entries on the way. It returns nil when no live pair remains.
func (q *pairQueue) popLive(retired []bool) *pair {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.pq.Len() > 0 {
		p := heap.Pop(&q.pq).(*pair)
		if retired[p.i] || retired[p.j] {
			continue
		}

		return p
	}

	return nil
}

// len returns the number of entries, stale ones included.
func (q *pairQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pq.Len()
}
