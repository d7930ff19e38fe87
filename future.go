// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// futureCapacity is the bounded capacity of the settlement queue.
// A future settles at most once; the ring keeps one slot of headroom.
const futureCapacity = 2

// Future states. A future passes through settling while its outcome is
// enqueued, so Settled never reports true ahead of Poll.
const (
	futurePending uint32 = iota
	futureSettling
	futureSettled
)

// Future is the awaitable form of a started [Task].
//
// Settlement travels over a bounded lock-free SPSC queue from lfq: the
// task's settling callback is the single producer and the goroutine that
// polls or waits is the single consumer. A Future must not be polled from
// more than one goroutine.
type Future[A, E any] struct {
	serial Serial
	state  atomix.Uint32
	q      lfq.SPSC[Result[A, E]]
	res    Result[A, E]
	taken  bool
}

func newFuture[A, E any]() *Future[A, E] {
	f := &Future[A, E]{serial: nextSerial()}
	f.q.Init(futureCapacity)
	return f
}

// settle publishes the outcome. Only the first call has an effect.
func (f *Future[A, E]) settle(r Result[A, E]) {
	if !f.state.CompareAndSwap(futurePending, futureSettling) {
		return
	}
	_ = f.q.Enqueue(&r)
	f.state.Add(futureSettled - futureSettling)
}

// Serial returns the serial number of the run that produced this future.
func (f *Future[A, E]) Serial() Serial {
	return f.serial
}

// Settled reports whether the task has resolved or rejected.
// Once it reports true, Poll returns the outcome.
func (f *Future[A, E]) Settled() bool {
	return f.state.Load() == futureSettled
}

// Poll returns the outcome without blocking.
// Returns iox.ErrWouldBlock while the task is still pending.
func (f *Future[A, E]) Poll() (Result[A, E], error) {
	if f.taken {
		return f.res, nil
	}
	r, err := f.q.Dequeue()
	if err != nil {
		var zero Result[A, E]
		return zero, err
	}
	f.res, f.taken = r, true
	return r, nil
}

// Wait blocks until the task settles or ctx ends.
// Waits past the iox.ErrWouldBlock boundary with adaptive backoff
// (iox.Backoff), without spawning goroutines or creating channels.
func (f *Future[A, E]) Wait(ctx context.Context) (Result[A, E], error) {
	var bo iox.Backoff
	for {
		r, err := f.Poll()
		if err == nil {
			return r, nil
		}
		if !iox.IsWouldBlock(err) {
			return r, err
		}
		if err := ctx.Err(); err != nil {
			var zero Result[A, E]
			return zero, err
		}
		bo.Wait()
	}
}

// Then implements [Async]: the outcome is delivered to onDone or onFail on
// a goroutine that waits for settlement. The future must have no other
// consumer.
func (f *Future[A, E]) Then(onDone func(A), onFail func(E)) {
	deliver := func(r Result[A, E]) {
		if e, failed := r.Failure(); failed {
			onFail(e)
			return
		}
		onDone(r.value)
	}
	if r, err := f.Poll(); err == nil {
		deliver(r)
		return
	}
	go func() {
		r, _ := f.Wait(context.Background())
		deliver(r)
	}()
}
