package math3d

import "sync"

// tmpArena holds preallocated scratch values used by multi-step algorithms
// (rotation-from-axes, angle-between, look-at) to hold intermediates without
// heap allocation. Each call chain borrows its own arena, so concurrent and
// reentrant callers never share slots.
type tmpArena struct {
	vectors     [6]Vector3
	matrices    [2]Matrix
	quaternions [3]Quaternion
}

var tmpPool = sync.Pool{
	New: func() any { return new(tmpArena) },
}

// borrowTmp acquires a scratch arena. The caller must release it before
// returning and must not let any slot pointer escape the call.
func borrowTmp() *tmpArena {
	return tmpPool.Get().(*tmpArena)
}

func (t *tmpArena) release() {
	tmpPool.Put(t)
}
