package profile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// MergedValue pairs the values one key has on the two sides of a merge. The
// In flags distinguish an absent side from a present zero value.
type MergedValue[V any] struct {
	Right   V
	Left    V
	InRight bool
	InLeft  bool
}

// mergeQueue consumes one side's entries front to back. Keys pulled out of
// order are removed from remaining and skipped when they reach the front.
type mergeQueue[V any] struct {
	keys      []string
	remaining map[string]V
}

func newMergeQueue[V any](om *orderedmap.OrderedMap[string, V]) *mergeQueue[V] {
	q := &mergeQueue[V]{remaining: make(map[string]V)}
	if om == nil {
		return q
	}
	q.keys = make([]string, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		q.keys = append(q.keys, pair.Key)
		q.remaining[pair.Key] = pair.Value
	}
	return q
}

// head returns the first not-yet-consumed key, discarding consumed ones.
func (q *mergeQueue[V]) head() (string, bool) {
	for len(q.keys) > 0 {
		if _, ok := q.remaining[q.keys[0]]; ok {
			return q.keys[0], true
		}
		q.keys = q.keys[1:]
	}
	return "", false
}

func (q *mergeQueue[V]) contains(key string) bool {
	_, ok := q.remaining[key]
	return ok
}

// take consumes a key, wherever it sits in the queue.
func (q *mergeQueue[V]) take(key string) V {
	v := q.remaining[key]
	delete(q.remaining, key)
	return v
}

// deferHead moves the head key to the back of the queue.
func (q *mergeQueue[V]) deferHead() {
	q.keys = append(q.keys[1:], q.keys[0])
}

// MergeOrdered merges two mappings over a shared key domain into one mapping
// of (right, left) value pairs covering the union of both key sets. The
// output key order is deterministic: it follows left's order, interleaving
// right-only keys where they would have appeared relative to left's keys,
// with trailing right-only keys in right's order.
//
// Both sides are processed as queues:
//
//   - equal heads are emitted together;
//   - when left's head appears later in right, right's entry is pulled out
//     of order and the pair is emitted;
//   - when right's head appears later in left, it is requeued at the back
//     and left's head is emitted alone;
//   - when neither head appears in the other side, both are emitted alone,
//     right first.
//
// A nil input is treated as empty. The inputs are not modified.
func MergeOrdered[V any](right, left *orderedmap.OrderedMap[string, V]) *orderedmap.OrderedMap[string, MergedValue[V]] {
	rq := newMergeQueue(right)
	lq := newMergeQueue(left)
	out := orderedmap.New[string, MergedValue[V]]()

	for {
		rk, rok := rq.head()
		lk, lok := lq.head()
		switch {
		case !rok && !lok:
			return out
		case rok && lok && rk == lk:
			out.Set(rk, MergedValue[V]{
				Right: rq.take(rk), InRight: true,
				Left: lq.take(lk), InLeft: true,
			})
		case lok && rq.contains(lk):
			// Left's head sits later in right: cross-pull it.
			out.Set(lk, MergedValue[V]{
				Right: rq.take(lk), InRight: true,
				Left: lq.take(lk), InLeft: true,
			})
		case rok && lok && lq.contains(rk):
			// Right's head isn't ready yet; requeue it so it surfaces
			// once left catches up, and emit left's head alone.
			rq.deferHead()
			out.Set(lk, MergedValue[V]{Left: lq.take(lk), InLeft: true})
		default:
			// Neither head occurs on the other side.
			if rok {
				out.Set(rk, MergedValue[V]{Right: rq.take(rk), InRight: true})
			}
			if lok {
				out.Set(lk, MergedValue[V]{Left: lq.take(lk), InLeft: true})
			}
		}
	}
}
