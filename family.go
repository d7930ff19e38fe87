// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import "code.hybscloud.com/kont"

// Family identifies a container family.
// A Do-program yields containers of exactly one family.
type Family uint8

const (
	familyUnknown Family = iota
	FamilyOption
	FamilyResult
	FamilyTask
	FamilyState
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyOption:
		return "Option"
	case FamilyResult:
		return "Result"
	case FamilyTask:
		return "Task"
	case FamilyState:
		return "State"
	default:
		return "Unknown"
	}
}

// Monadic is the capability the Do interpreter drives.
//
// The suspension hook receives a resume callback. A present or successful
// container returns a deferred call of resume with its inner value; an absent
// or failed container returns a halt without calling resume. Deferred
// families (Task, State) land a new container that calls resume once per run.
type Monadic interface {
	Family() Family
	suspend(resume func(kont.Resumed) bounce) bounce
}

// Yieldable is a Monadic whose inner value has type A.
// It types the resumption value of [Yield].
type Yieldable[A any] interface {
	Monadic
	inner() A
}

// Monad is the F-bounded constraint for the return type of a Do-program.
// The methods are called on the zero value of M:
//   - halt re-types a short-circuit cause into M (false on a cause of foreign type)
//   - coerce recovers M from the landed container of a run
//   - delay defers evaluation for lazy families, and calls f directly otherwise
//   - sameKind reports whether a yielded container of M's family also
//     carries M's failure or state type
type Monad[M Monad[M]] interface {
	Monadic
	sameKind(c Monadic) bool
	halt(cause kont.Resumed) (M, bool)
	coerce(m Monadic) (M, bool)
	delay(f func() M) M
}

// fromErased recovers a typed value from the erased pipeline.
// Nil completion means the zero value, matching kont's convention.
func fromErased[A any](v kont.Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
