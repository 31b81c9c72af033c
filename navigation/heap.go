package navigation

// heapEntry is an open-set node keyed by f = g + h
type heapEntry struct {
	idx int // Flat grid index (y*width + x)
	g   int // Steps from start when pushed
	f   int // g + heuristic
}

// less orders by f, preferring the node closer to the goal on ties
func (a heapEntry) less(b heapEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.f-a.g < b.f-b.g
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !(*h)[i].less((*h)[parent]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if !(*h)[smallest].less((*h)[i]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}
