package rtaiter

import (
	"iter"

	"github.com/katalvlaran/rta/duration"
)

// Seq is a lazy, pull-based sequence of strictly increasing Durations, as
// produced by any step function's step enumerator. It is the Go analogue of
// the original implementation's generator-based Iterable[Duration].
type Seq = iter.Seq[duration.Duration]

// MergeSortedUnique merges any number of sorted-ascending Duration sequences
// into a single sorted-ascending, duplicate-free sequence. Each input is
// consumed lazily with bounded look-ahead: at most one buffered value per
// input stream at any time, regardless of how many values the consumer of
// the merged sequence ultimately asks for.
//
// The next value is found by a linear scan over the buffered value of
// every live input cursor; no heap is kept.
func MergeSortedUnique(streams ...Seq) Seq {
	return func(yield func(duration.Duration) bool) {
		type cursor struct {
			next func() (duration.Duration, bool)
			stop func()
			val  duration.Duration
			ok   bool
		}

		cursors := make([]*cursor, 0, len(streams))
		for _, s := range streams {
			next, stop := iter.Pull(s)
			c := &cursor{next: next, stop: stop}
			c.val, c.ok = c.next()
			if !c.ok {
				c.stop()
				continue
			}
			cursors = append(cursors, c)
		}
		defer func() {
			for _, c := range cursors {
				c.stop()
			}
		}()

		var last duration.Duration
		haveLast := false
		for len(cursors) > 0 {
			minIdx := 0
			for i := 1; i < len(cursors); i++ {
				if cursors[i].val < cursors[minIdx].val {
					minIdx = i
				}
			}

			v := cursors[minIdx].val
			if !haveLast || v != last {
				if !yield(v) {
					return
				}
				last, haveLast = v, true
			}

			c := cursors[minIdx]
			c.val, c.ok = c.next()
			if !c.ok {
				c.stop()
				cursors = append(cursors[:minIdx], cursors[minIdx+1:]...)
			}
		}
	}
}
