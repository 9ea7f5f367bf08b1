package core

// FrameFunc is a scheduled frame callback. The timestamp is in milliseconds.
type FrameFunc func(timestamp float64) error

// FrameHandle identifies a scheduled frame. The zero handle is never issued.
type FrameHandle uint64

// Scheduler is the frame-scheduling primitive a host offers to a simulation.
type Scheduler interface {
	// RequestFrame schedules fn for the next frame and returns its handle.
	RequestFrame(fn FrameFunc) FrameHandle
	// CancelFrame drops the frame identified by h. Unknown or already
	// consumed handles are ignored.
	CancelFrame(h FrameHandle)
}

// FrameQueue is a single-slot Scheduler driven by the host loop. At most one
// callback is in flight; a new request replaces a pending one.
type FrameQueue struct {
	next    FrameHandle
	pending FrameHandle
	fn      FrameFunc
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameHandle {
	if fn == nil {
		return 0
	}
	q.next++
	q.pending = q.next
	q.fn = fn
	return q.pending
}

// CancelFrame implements Scheduler.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 || h != q.pending {
		return
	}
	q.pending = 0
	q.fn = nil
}

// Pending reports whether a callback is waiting for the next frame.
func (q *FrameQueue) Pending() bool { return q.fn != nil }

// RunFrame consumes the pending callback, if any, and invokes it with the
// timestamp. The slot is cleared before the call so the callback may schedule
// its successor.
func (q *FrameQueue) RunFrame(timestamp float64) (bool, error) {
	if q.fn == nil {
		return false, nil
	}
	fn := q.fn
	q.pending = 0
	q.fn = nil
	return true, fn(timestamp)
}
