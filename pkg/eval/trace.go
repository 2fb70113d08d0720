package eval

import "github.com/vic/golam/pkg/lambda"

type TraceEvent struct {
	Step uint64
	Term lambda.Term
	Size int
}

// traceRing keeps the most recent events of a run.
type traceRing struct {
	buf   []TraceEvent
	count uint64
}

func (e *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	e.trace = &traceRing{buf: make([]TraceEvent, capacity)}
}

func (e *Evaluator) DisableTrace() {
	e.trace = nil
}

// TraceSnapshot returns the retained events of the most recent run, oldest
// first.
func (e *Evaluator) TraceSnapshot() []TraceEvent {
	if e.trace == nil {
		return nil
	}
	return e.trace.snapshot()
}

func (r *traceRing) reset() {
	r.count = 0
	clear(r.buf)
}

func (r *traceRing) record(ev TraceEvent) {
	r.buf[r.count%uint64(len(r.buf))] = ev
	r.count++
}

func (r *traceRing) snapshot() []TraceEvent {
	n := uint64(len(r.buf))
	if r.count <= n {
		res := make([]TraceEvent, r.count)
		copy(res, r.buf[:r.count])
		return res
	}
	res := make([]TraceEvent, 0, n)
	start := r.count % n
	res = append(res, r.buf[start:]...)
	res = append(res, r.buf[:start]...)
	return res
}
