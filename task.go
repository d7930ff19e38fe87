// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"context"

	"code.hybscloud.com/kont"
)

// Task is a lazy computation that eventually resolves with A or rejects
// with E. Constructing or composing a Task performs no work; work happens
// only when the task is run via [Task.Run], [Task.Start], [Task.ToResult],
// [Task.Await], [Task.AwaitOr] or [Task.Fire]. Each run invokes the
// initializers afresh.
//
// The zero Task resolves with the zero value of A.
type Task[A, E any] struct {
	n *taskNode
}

// NewTask creates a task from an initializer. The initializer receives
// resolve and reject callbacks; the first call wins and later calls are
// ignored. It may settle synchronously or from another goroutine.
func NewTask[A, E any](init func(resolve func(A), reject func(E))) Task[A, E] {
	return Task[A, E]{n: &taskNode{
		kind: taskAsync,
		init: func(resolve, reject func(kont.Erased)) {
			init(
				func(a A) { resolve(a) },
				func(e E) { reject(e) },
			)
		},
	}}
}

// Done creates a task that resolves with a.
func Done[A, E any](a A) Task[A, E] {
	return Task[A, E]{n: &taskNode{kind: taskPure, value: a}}
}

// Fail creates a task that rejects with e.
func Fail[A, E any](e E) Task[A, E] {
	return Task[A, E]{n: &taskNode{kind: taskFail, value: e}}
}

// node returns the task's node tree; the zero Task is Done(zero).
func (t Task[A, E]) node() *taskNode {
	if t.n == nil {
		var zero A
		return &taskNode{kind: taskPure, value: zero}
	}
	return t.n
}

// MapTask transforms the resolved value of t.
func MapTask[A, B, E any](t Task[A, E], f func(A) B) Task[B, E] {
	return Task[B, E]{n: &taskNode{
		kind: taskBind,
		src:  t.node(),
		k: func(v kont.Erased) *taskNode {
			return &taskNode{kind: taskPure, value: f(fromErased[A](v))}
		},
	}}
}

// FlatMapTask sequences t with the task returned by f.
func FlatMapTask[A, B, E any](t Task[A, E], f func(A) Task[B, E]) Task[B, E] {
	return Task[B, E]{n: &taskNode{
		kind: taskBind,
		src:  t.node(),
		k: func(v kont.Erased) *taskNode {
			return f(fromErased[A](v)).node()
		},
	}}
}

// MapFailure transforms the rejection of t.
func MapFailure[A, E, F any](t Task[A, E], f func(E) F) Task[A, F] {
	return Task[A, F]{n: &taskNode{
		kind: taskRescue,
		src:  t.node(),
		k: func(e kont.Erased) *taskNode {
			return &taskNode{kind: taskFail, value: f(fromErased[E](e))}
		},
	}}
}

// MatchTask folds both outcomes of t into a value. The resulting task never
// rejects.
func MatchTask[A, E, R any](t Task[A, E], onDone func(A) R, onFail func(E) R) Task[R, E] {
	done := &taskNode{
		kind: taskBind,
		src:  t.node(),
		k: func(v kont.Erased) *taskNode {
			return &taskNode{kind: taskPure, value: onDone(fromErased[A](v))}
		},
	}
	return Task[R, E]{n: &taskNode{
		kind: taskRescue,
		src:  done,
		k: func(e kont.Erased) *taskNode {
			return &taskNode{kind: taskPure, value: onFail(fromErased[E](e))}
		},
	}}
}

// Run invokes the task once, reporting the outcome to resolve or reject.
// Exactly one of them is called if every initializer settles.
func (t Task[A, E]) Run(resolve func(A), reject func(E)) {
	r := &taskRun{
		done: func(v kont.Erased) { resolve(fromErased[A](v)) },
		fail: func(e kont.Erased) { reject(fromErased[E](e)) },
	}
	r.loop(t.node())
}

// Initializer returns the task's initializer: a function that runs the task
// each time it is called.
func (t Task[A, E]) Initializer() func(resolve func(A), reject func(E)) {
	return t.Run
}

// Start runs the task and returns its single-settlement handle.
func (t Task[A, E]) Start() *Future[A, E] {
	f := newFuture[A, E]()
	t.Run(
		func(a A) { f.settle(Ok[A, E](a)) },
		func(e E) { f.settle(Err[A](e)) },
	)
	return f
}

// ToResult runs the task and waits for its outcome as a Result.
// The task's failure is reported inside the Result; the error return is
// only ctx.Err() when the context ends first.
func (t Task[A, E]) ToResult(ctx context.Context) (Result[A, E], error) {
	return t.Start().Wait(ctx)
}

// Await runs the task and waits for its value. A rejection is returned as
// the error: unchanged if E implements error, otherwise as *[RejectedError].
func (t Task[A, E]) Await(ctx context.Context) (A, error) {
	r, err := t.ToResult(ctx)
	if err != nil {
		var zero A
		return zero, err
	}
	if e, failed := r.Failure(); failed {
		var zero A
		return zero, rejection(e)
	}
	return r.value, nil
}

// AwaitOr runs the task and waits for its value, substituting fallback()
// on rejection. The error return is only ctx.Err().
func (t Task[A, E]) AwaitOr(ctx context.Context, fallback func() A) (A, error) {
	r, err := t.ToResult(ctx)
	if err != nil {
		var zero A
		return zero, err
	}
	return r.UnwrapOr(fallback), nil
}

// Fire runs the task for its effects and discards the outcome.
// In-flight work is not cancelled.
func (t Task[A, E]) Fire() {
	t.Run(func(A) {}, func(E) {})
}

// Family returns [FamilyTask].
func (Task[A, E]) Family() Family { return FamilyTask }

// suspend lands a task that runs t and feeds its value to resume.
// The rest of the program is evaluated when that task runs.
func (t Task[A, E]) suspend(resume func(kont.Resumed) bounce) bounce {
	return landed(Task[kont.Erased, E]{n: &taskNode{
		kind: taskBind,
		src:  t.node(),
		k: func(v kont.Erased) *taskNode {
			return resume(v).final().(taskNoder).node()
		},
	}})
}

func (Task[A, E]) inner() A {
	var zero A
	return zero
}

// taskNoder is implemented by every Task instantiation.
type taskNoder interface {
	node() *taskNode
}

func (Task[A, E]) failureOf() E {
	var zero E
	return zero
}

func (Task[A, E]) sameKind(c Monadic) bool {
	_, ok := c.(interface{ failureOf() E })
	return ok
}

func (Task[A, E]) halt(kont.Resumed) (Task[A, E], bool) {
	return Task[A, E]{}, false
}

func (Task[A, E]) coerce(m Monadic) (Task[A, E], bool) {
	tn, ok := m.(taskNoder)
	if !ok {
		return Task[A, E]{}, false
	}
	return Task[A, E]{n: tn.node()}, true
}

func (Task[A, E]) delay(f func() Task[A, E]) Task[A, E] {
	return Task[A, E]{n: &taskNode{
		kind:  taskDelay,
		thunk: func() *taskNode { return f().node() },
	}}
}
