package solver

import "container/heap"

// queue orders unassigned variables by decreasing activity, the way
// cespare-saturday's litHeap orders unassigned vars by watch-list size: a
// container/heap-backed max-heap keyed by an externally owned activity
// slice, with O(log n) insert/remove and a "decrease" operation used after
// a var's activity is bumped.
type queue struct {
	activity *[]float64
	items    []int // var indices currently in the queue
	indexOf  map[int]int
}

func newQueue(activity *[]float64) queue {
	return queue{activity: activity, indexOf: make(map[int]int)}
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	return (*q.activity)[q.items[i]] > (*q.activity)[q.items[j]]
}

func (q *queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.indexOf[q.items[i]] = i
	q.indexOf[q.items[j]] = j
}

func (q *queue) Push(x interface{}) {
	v := x.(int)
	q.indexOf[v] = len(q.items)
	q.items = append(q.items, v)
}

func (q *queue) Pop() interface{} {
	old := q.items
	n := len(old)
	v := old[n-1]
	q.items = old[:n-1]
	delete(q.indexOf, v)
	return v
}

func (q *queue) contains(v int) bool {
	_, ok := q.indexOf[v]
	return ok
}

func (q *queue) insert(v int) {
	if q.contains(v) {
		return
	}
	heap.Push(q, v)
}

// decrease re-establishes heap order after v's activity increased (the
// var "decreased" its rank in a min-ordered heap of negated activity).
func (q *queue) decrease(v int) {
	if i, ok := q.indexOf[v]; ok {
		heap.Fix(q, i)
	}
}

func (q *queue) removeMin() int {
	return heap.Pop(q).(int)
}

func (q *queue) empty() bool { return len(q.items) == 0 }

func (q *queue) build(vars []int) {
	q.items = append(q.items[:0], vars...)
	q.indexOf = make(map[int]int, len(vars))
	for i, v := range q.items {
		q.indexOf[v] = i
	}
	heap.Init(q)
}
