package svg2polylines

import "math"

// Simplify reduces the point count of each polyline using Visvalingam-Whyatt
// vertex decimation: interior points are removed in order of the effective
// (triangle) area they span with their neighbours, until every remaining
// point spans at least the given tolerance. First and last points are always
// kept. Polylines with a single point are dropped, and two-point polylines
// are dropped when both coordinate deltas stay within the tolerance.
func Simplify(lines []Polyline, tolerance float64) []Polyline {
	result := make([]Polyline, 0, len(lines))
	for _, line := range lines {
		if simplified := simplifyPolyline(line, tolerance); !simplified.Empty() {
			result = append(result, simplified)
		}
	}
	return result
}

func simplifyPolyline(line Polyline, tolerance float64) Polyline {
	if len(line) <= 1 {
		return nil
	} else if len(line) == 2 {
		if math.Abs(line[1].X-line[0].X) <= tolerance && math.Abs(line[1].Y-line[0].Y) <= tolerance {
			return nil // degenerate
		}
		return line
	}

	computeArea := func(a, b, c Point) float64 {
		return math.Abs(a.PerpDot(b) + b.PerpDot(c) + c.PerpDot(a))
	}
	tolerance *= 2.0 // save on 0.5 multiply in computeArea

	items := make([]itemVW, 0, len(line))
	var heap heapVW
	heap.Reset(len(line))
	for i, cur := range line {
		item := itemVW{
			Point: cur,
			area:  math.NaN(),
			prev:  int32(i - 1),
			next:  int32(i + 1),
		}
		if 0 < i && i < len(line)-1 {
			item.area = computeArea(line[i-1], cur, line[i+1])
		}
		items = append(items, item)
		if !math.IsNaN(item.area) {
			heap.Append(&items[i])
		}
	}
	items[len(items)-1].next = -1
	heap.Init()

	removed := false
	for 0 < len(heap) {
		item := heap.Pop()
		if tolerance <= item.area {
			break
		}

		// remove the point from the linked list and recompute the areas of
		// its neighbours
		items[item.prev].next = item.next
		items[item.next].prev = item.prev

		if prev := &items[item.prev]; !math.IsNaN(prev.area) {
			prev.area = computeArea(items[prev.prev].Point, prev.Point, items[prev.next].Point)
			heap.Fix(int(prev.heapIdx))
		}
		if next := &items[item.next]; !math.IsNaN(next.area) {
			next.area = computeArea(items[next.prev].Point, next.Point, items[next.next].Point)
			heap.Fix(int(next.heapIdx))
		}
		removed = true
	}

	if !removed {
		return line
	}
	simplified := Polyline{}
	for i := int32(0); i != -1; i = items[i].next {
		simplified = append(simplified, items[i].Point)
	}
	return simplified
}

type itemVW struct {
	Point
	area       float64
	prev, next int32 // indices into items
	heapIdx    int32
}

type heapVW []*itemVW

func (q *heapVW) Reset(capacity int) {
	if cap(*q) < capacity {
		*q = heapVW(make([]*itemVW, 0, capacity))
	} else {
		*q = (*q)[:0]
	}
}

func (q heapVW) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *heapVW) Append(item *itemVW) {
	item.heapIdx = int32(len(*q))
	*q = append(*q, item)
}

func (q *heapVW) Pop() *itemVW {
	n := len(*q) - 1
	q.swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	(*q) = (*q)[:n]
	return item
}

func (q heapVW) Fix(i int) {
	if !q.down(i, len(q)) {
		q.up(i)
	}
}

func (q heapVW) less(i, j int) bool {
	return q[i].area < q[j].area
}

func (q heapVW) swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].heapIdx, q[j].heapIdx = int32(i), int32(j)
}

// from container/heap
func (q heapVW) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q heapVW) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i0 < i
}
