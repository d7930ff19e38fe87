// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import "context"

// Async is a pending asynchronous operation that reports its completion
// through two callbacks. [*Future] implements Async.
type Async[A, E any] interface {
	Then(onDone func(A), onFail func(E))
}

// AsyncFunc adapts an ordinary function to [Async].
type AsyncFunc[A, E any] func(onDone func(A), onFail func(E))

// Then calls f(onDone, onFail).
func (f AsyncFunc[A, E]) Then(onDone func(A), onFail func(E)) { f(onDone, onFail) }

// FromAsync adapts an asynchronous operation into a Task.
// The operation's completion or failure becomes exactly one resolve or
// reject; repeated signals are ignored.
func FromAsync[A, E any](a Async[A, E]) Task[A, E] {
	return NewTask(func(resolve func(A), reject func(E)) {
		a.Then(resolve, reject)
	})
}

// Taskify converts a function returning an asynchronous operation into one
// returning a Task with the same argument. The function is called when the
// task runs; a panic during the call is routed to reject as *[PanicError].
// Panics raised by the task's continuations are not recovered.
func Taskify[P, A any](f func(P) Async[A, error]) func(P) Task[A, error] {
	return func(p P) Task[A, error] {
		return NewTask(func(resolve func(A), reject func(error)) {
			a, err := guard(func() (Async[A, error], error) { return f(p), nil })
			if err != nil {
				reject(err)
				return
			}
			a.Then(resolve, reject)
		})
	}
}

// Taskify2 is [Taskify] for two-argument functions.
func Taskify2[P1, P2, A any](f func(P1, P2) Async[A, error]) func(P1, P2) Task[A, error] {
	return func(p1 P1, p2 P2) Task[A, error] {
		return NewTask(func(resolve func(A), reject func(error)) {
			a, err := guard(func() (Async[A, error], error) { return f(p1, p2), nil })
			if err != nil {
				reject(err)
				return
			}
			a.Then(resolve, reject)
		})
	}
}

// Go creates a task that, on each run, calls fn on a new goroutine and
// settles with its result. A panic inside fn rejects with *[PanicError];
// panics raised by the task's continuations are not recovered.
func Go[A any](ctx context.Context, fn func(context.Context) (A, error)) Task[A, error] {
	return NewTask(func(resolve func(A), reject func(error)) {
		go func() {
			a, err := guard(func() (A, error) { return fn(ctx) })
			if err != nil {
				reject(err)
				return
			}
			resolve(a)
		}()
	})
}

// guard calls fn and reports a panic inside it as *PanicError.
// Callers settle outside guard: settling may continue the run loop.
func guard[A any](fn func() (A, error)) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero A
			a, err = zero, &PanicError{Value: r}
		}
	}()
	return fn()
}
