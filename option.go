// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"fmt"
	"reflect"

	"code.hybscloud.com/kont"
)

// Option represents a value that may be absent.
// The zero value is None; all None values of one type compare equal.
// A Some never holds a nil value.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option holding v.
// Panics if v is nil; use [OptionOf] for values that may be nil.
func Some[T any](v T) Option[T] {
	if isNil(v) {
		panic("dots: Some of nil value")
	}
	return Option[T]{value: v, some: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf returns None if v is nil and Some(v) otherwise.
func OptionOf[T any](v T) Option[T] {
	if isNil(v) {
		return Option[T]{}
	}
	return Option[T]{value: v, some: true}
}

// OptionFrom adapts the comma-ok idiom: Some(v) when ok and v is non-nil.
func OptionFrom[T any](v T, ok bool) Option[T] {
	if !ok {
		return Option[T]{}
	}
	return OptionOf(v)
}

// OptionFromPtr returns Some(*p) for a non-nil p, otherwise None.
func OptionFromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return OptionOf(*p)
}

// isNil reports whether v is a nil interface, pointer, map, slice, chan or func.
func isNil[T any](v T) bool {
	a := any(v)
	if a == nil {
		return true
	}
	switch rv := reflect.ValueOf(a); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value.
// Panics with *[UnwrapError] carrying the optional message on None.
func (o Option[T]) Unwrap(message ...string) T {
	if !o.some {
		panic(&UnwrapError{Family: FamilyOption, Message: unwrapMessage(message)})
	}
	return o.value
}

// UnwrapOr returns the value, or alt() on None.
func (o Option[T]) UnwrapOr(alt func() T) T {
	if o.some {
		return o.value
	}
	return alt()
}

// Filter keeps the value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return Option[T]{}
}

// OrElse returns o if present, otherwise alt().
func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt()
}

// String formats the Option as Some(v) or None.
func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Family returns [FamilyOption].
func (Option[T]) Family() Family { return FamilyOption }

func (o Option[T]) suspend(resume func(kont.Resumed) bounce) bounce {
	if !o.some {
		return halt(nil)
	}
	v := o.value
	return deferred(func() bounce { return resume(v) })
}

func (Option[T]) inner() T {
	var zero T
	return zero
}

func (Option[T]) halt(kont.Resumed) (Option[T], bool) {
	return Option[T]{}, true
}

func (Option[T]) coerce(m Monadic) (Option[T], bool) {
	o, ok := m.(Option[T])
	return o, ok
}

func (Option[T]) delay(f func() Option[T]) Option[T] { return f() }

// sameKind accepts every Option: None carries no payload to mistype.
func (Option[T]) sameKind(Monadic) bool { return true }

// MapOption applies f to a present value.
// A nil result becomes None.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return Option[U]{}
	}
	return OptionOf(f(o.value))
}

// FlatMapOption sequences o with f.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return Option[U]{}
	}
	return f(o.value)
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// ZipOption pairs two present values; any None yields None.
func ZipOption[T, U any](a Option[T], b Option[U]) Option[kont.Pair[T, U]] {
	if !a.some || !b.some {
		return Option[kont.Pair[T, U]]{}
	}
	return Option[kont.Pair[T, U]]{value: kont.Pair[T, U]{Fst: a.value, Snd: b.value}, some: true}
}

// OptionToResult converts Some(v) to Ok(v) and None to Err(mkErr()).
// mkErr is not called for Some.
func OptionToResult[T, E any](o Option[T], mkErr func() E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T](mkErr())
}

// OptionToTask converts Some(v) to a task that resolves with v,
// and None to a task that fails with [ErrNone].
func OptionToTask[T any](o Option[T]) Task[T, error] {
	if o.some {
		return Done[T, error](o.value)
	}
	return Fail[T](ErrNone)
}
