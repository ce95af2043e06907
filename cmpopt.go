//go:build !prod && !nocmpopts

package keyq

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// queueState is the observable state of a [Queue]: which items it holds at
// which priorities, popped from which end. Heap layout is deliberately
// excluded as two equal queues may arrange their slots differently.
type queueState[P constraints.Ordered, F comparable] struct {
	Order Order
	Items map[F]P
}

// CmpOpt returns a configuration for use with [cmp.Diff] to allow it to
// compare [Queue] instances. Queues are considered equal when they pop from
// the same end and hold the same items at the same priorities, regardless
// of internal slot layout.
//
// The option applies only to queues of the exact (P, F) instantiation it
// was created with. A nil queue transforms to the zero state, which no
// constructed queue compares equal to.
func CmpOpt[P constraints.Ordered, F comparable]() cmp.Option {
	return cmp.Transformer("keyq.queueState", func(q *Queue[P, F]) queueState[P, F] {
		if q == nil {
			return queueState[P, F]{}
		}
		s := queueState[P, F]{
			Order: q.order,
			Items: make(map[F]P, len(q.heap)),
		}
		for _, e := range q.heap {
			s.Items[e.item] = e.priority
		}
		return s
	})
}
