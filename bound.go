package main

// feasibilityBound estimates whether a partial team can still reach the
// target. It must over-estimate: pruning a branch that could succeed would
// change the result.
type feasibilityBound struct {
	mode    BoundMode
	target  int
	perSlot int
	// suffixMax[i] is the largest yield of any pool champion at index >= i.
	// suffixMax[len(pool)] is 0.
	suffixMax []int
}

func newFeasibilityBound(opts SearchOptions, target int, pool []Champion, ev *Evaluator) *feasibilityBound {
	b := &feasibilityBound{mode: opts.Bound, target: target, perSlot: opts.PerSlotGain}
	if b.mode == BoundTight {
		b.suffixMax = make([]int, len(pool)+1)
		for i := len(pool) - 1; i >= 0; i-- {
			b.suffixMax[i] = max(b.suffixMax[i+1], ev.yield(&pool[i]))
		}
	}
	return b
}

// canReach reports whether current activated traits plus the optimistic gain
// of slots more picks from pool[start:] can meet the target.
//
// Counts only grow as champions are added, so every threshold trait active now
// stays active; the exact-count trait can switch off but never pushes the
// total above this estimate. Each pick can newly activate at most the number
// of eligible traits it carries.
func (b *feasibilityBound) canReach(current, slots, start int) bool {
	switch b.mode {
	case BoundNone:
		return true
	case BoundFixed:
		return current+b.perSlot*slots >= b.target
	default:
		return current+slots*b.suffixMax[start] >= b.target
	}
}
