/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package solver

// A binary heap over Var with support for decrease/increase key, strongly
// inspired by MiniSat's mtl/Heap.h. Unlike the original, this one is keyed
// directly on this package's Var type rather than a bare int, so the
// decision queue never needs an int(...)/Var(...) conversion at its own
// call sites — only at the boundary where a *Solver stores one.

// queue is the VSIDS decision heap: content holds the candidate variables
// in heap order (an assigned variable stays there until chooseVar pops
// it), indices is the reverse map from variable to its position
// in content (-1 if absent), and activity is the solver's own activity
// slice — shared, never copied, so a varBumpActivity call is immediately
// visible to the heap's ordering.
type queue struct {
	activity []float64
	content  []Var
	indices  []int
}

func newQueue(activity []float64) queue {
	q := queue{activity: activity}
	for v := range q.activity {
		q.insert(Var(v))
	}
	return q
}

// lt orders by descending activity; equal activities go to the lower Var.
func (q *queue) lt(a, b Var) bool {
	return q.activity[a] > q.activity[b] || (q.activity[a] == q.activity[b] && a < b)
}

// Heap-position arithmetic; these index into content, not into Var space.
func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (q *queue) percolateUp(i int) {
	x := q.content[i]
	p := parent(i)
	for i != 0 && q.lt(x, q.content[p]) {
		q.content[i] = q.content[p]
		q.indices[q.content[p]] = i
		i = p
		p = parent(p)
	}
	q.content[i] = x
	q.indices[x] = i
}

func (q *queue) percolateDown(i int) {
	x := q.content[i]
	for left(i) < len(q.content) {
		child := left(i)
		if right(i) < len(q.content) && q.lt(q.content[right(i)], q.content[left(i)]) {
			child = right(i)
		}
		if !q.lt(q.content[child], x) {
			break
		}
		q.content[i] = q.content[child]
		q.indices[q.content[i]] = i
		i = child
	}
	q.content[i] = x
	q.indices[x] = i
}

func (q *queue) len() int    { return len(q.content) }
func (q *queue) empty() bool { return len(q.content) == 0 }

func (q *queue) contains(v Var) bool {
	return int(v) < len(q.indices) && q.indices[v] >= 0
}

func (q *queue) get(index int) Var {
	return q.content[index]
}

func (q *queue) decrease(v Var) {
	q.percolateUp(q.indices[v])
}

func (q *queue) increase(v Var) {
	q.percolateDown(q.indices[v])
}

func (q *queue) update(v Var) {
	if !q.contains(v) {
		q.insert(v)
	} else {
		q.percolateUp(q.indices[v])
		q.percolateDown(q.indices[v])
	}
}

func (q *queue) insert(v Var) {
	for i := len(q.indices); i <= int(v); i++ {
		q.indices = append(q.indices, -1)
	}
	q.indices[v] = len(q.content)
	q.content = append(q.content, v)
	q.percolateUp(q.indices[v])
}

func (q *queue) removeMin() Var {
	x := q.content[0]
	q.content[0] = q.content[len(q.content)-1]
	q.indices[q.content[0]] = 0
	q.indices[x] = -1
	q.content = q.content[:len(q.content)-1]
	if len(q.content) > 1 {
		q.percolateDown(0)
	}
	return x
}

// build rebuilds the heap from scratch, using the elements in vs.
func (q *queue) build(vs []Var) {
	for i := range q.content {
		q.indices[q.content[i]] = -1
	}
	q.content = q.content[:0]
	for i, v := range vs {
		q.indices[v] = i
		q.content = append(q.content, v)
	}
	for i := len(q.content)/2 - 1; i >= 0; i-- {
		q.percolateDown(i)
	}
}
