// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Result represents the outcome of a synchronous computation:
// Ok with a value of type A, or Err with a failure of type E.
// An Err holding a nil or zero failure is still an Err.
type Result[A, E any] struct {
	value A
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[A, E any](a A) Result[A, E] {
	return Result[A, E]{value: a, ok: true}
}

// Err creates a failed Result.
func Err[A, E any](e E) Result[A, E] {
	return Result[A, E]{err: e}
}

// ResultOf adapts a Go (value, error) pair. A non-nil err yields Err(err).
func ResultOf[A any](a A, err error) Result[A, error] {
	if err != nil {
		return Result[A, error]{err: err}
	}
	return Result[A, error]{value: a, ok: true}
}

// ResultFromEither converts a kont Either: Right becomes Ok, Left becomes Err.
func ResultFromEither[E, A any](e kont.Either[E, A]) Result[A, E] {
	if a, ok := e.GetRight(); ok {
		return Ok[A, E](a)
	}
	l, _ := e.GetLeft()
	return Err[A](l)
}

// ResultFromEff runs a computation using kont's Error effect.
// A [kont.ThrowError] becomes Err; normal completion becomes Ok.
func ResultFromEff[E, A any](m kont.Eff[A]) Result[A, E] {
	return ResultFromEither(kont.RunError[E, A](m))
}

// IsOk reports whether the Result is successful.
func (r Result[A, E]) IsOk() bool { return r.ok }

// IsErr reports whether the Result failed.
func (r Result[A, E]) IsErr() bool { return !r.ok }

// Get returns the value and true, or zero and false.
func (r Result[A, E]) Get() (A, bool) {
	return r.value, r.ok
}

// Failure returns the failure and true, or zero and false.
func (r Result[A, E]) Failure() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the value.
// Panics with *[UnwrapError] carrying the optional message on Err.
func (r Result[A, E]) Unwrap(message ...string) A {
	if !r.ok {
		panic(&UnwrapError{Family: FamilyResult, Message: unwrapMessage(message)})
	}
	return r.value
}

// UnwrapOr returns the value, or alt() on Err.
func (r Result[A, E]) UnwrapOr(alt func() A) A {
	if r.ok {
		return r.value
	}
	return alt()
}

// Option discards the failure: Ok(v) becomes Some(v), Err becomes None.
func (r Result[A, E]) Option() Option[A] {
	if !r.ok {
		return Option[A]{}
	}
	return OptionOf(r.value)
}

// Either converts the Result to a kont Either (Err → Left, Ok → Right).
func (r Result[A, E]) Either() kont.Either[E, A] {
	if r.ok {
		return kont.Right[E](r.value)
	}
	return kont.Left[E, A](r.err)
}

// String formats the Result as Ok(v) or Err(e).
func (r Result[A, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Family returns [FamilyResult].
func (Result[A, E]) Family() Family { return FamilyResult }

func (r Result[A, E]) suspend(resume func(kont.Resumed) bounce) bounce {
	if !r.ok {
		return halt(failureCause[E]{err: r.err})
	}
	v := r.value
	return deferred(func() bounce { return resume(v) })
}

func (Result[A, E]) inner() A {
	var zero A
	return zero
}

// failureCause boxes an Err payload so that a nil failure survives erasure.
type failureCause[E any] struct{ err E }

func (Result[A, E]) halt(cause kont.Resumed) (Result[A, E], bool) {
	c, ok := cause.(failureCause[E])
	if !ok {
		return Result[A, E]{}, false
	}
	return Result[A, E]{err: c.err}, true
}

func (Result[A, E]) coerce(m Monadic) (Result[A, E], bool) {
	r, ok := m.(Result[A, E])
	return r, ok
}

func (Result[A, E]) delay(f func() Result[A, E]) Result[A, E] { return f() }

func (Result[A, E]) failureOf() E {
	var zero E
	return zero
}

func (Result[A, E]) sameKind(c Monadic) bool {
	_, ok := c.(interface{ failureOf() E })
	return ok
}

// MapResult applies f to a successful value; Err passes through untouched.
func MapResult[A, B, E any](r Result[A, E], f func(A) B) Result[B, E] {
	if !r.ok {
		return Result[B, E]{err: r.err}
	}
	return Result[B, E]{value: f(r.value), ok: true}
}

// FlatMapResult sequences r with f.
func FlatMapResult[A, B, E any](r Result[A, E], f func(A) Result[B, E]) Result[B, E] {
	if !r.ok {
		return Result[B, E]{err: r.err}
	}
	return f(r.value)
}

// MapErr applies f to the failure; Ok passes through untouched.
func MapErr[A, E, F any](r Result[A, E], f func(E) F) Result[A, F] {
	if r.ok {
		return Result[A, F]{value: r.value, ok: true}
	}
	return Result[A, F]{err: f(r.err)}
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[A, E, R any](r Result[A, E], onOk func(A) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// ResultToTask converts Ok(v) to a resolving task and Err(e) to a failing one.
func ResultToTask[A, E any](r Result[A, E]) Task[A, E] {
	if r.ok {
		return Done[A, E](r.value)
	}
	return Fail[A](r.err)
}
