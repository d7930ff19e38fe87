// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import "code.hybscloud.com/kont"

// bounce is one step of the Do trampoline. Exactly one of the following holds:
//   - next != nil: a deferred continuation still to be invoked
//   - halted: the program short-circuited with cause
//   - err != nil: the program broke an interpreter rule
//   - otherwise: land is the final container
type bounce struct {
	next   func() bounce
	land   Monadic
	cause  kont.Resumed
	err    error
	halted bool
}

// deferred suspends f as a no-argument continuation.
func deferred(f func() bounce) bounce { return bounce{next: f} }

// landed finishes the trampoline with a concrete container.
func landed(m Monadic) bounce { return bounce{land: m} }

// halt finishes the trampoline with a short-circuit cause.
func halt(cause kont.Resumed) bounce { return bounce{cause: cause, halted: true} }

// fault finishes the trampoline with an interpreter error.
func fault(err error) bounce { return bounce{err: err} }

// run invokes deferred continuations until a concrete outcome appears.
// Stack depth stays constant however many continuations are chained.
func (b bounce) run() bounce {
	for b.next != nil {
		b = b.next()
	}
	return b
}

// final runs b and returns the landed container.
// Used inside deferred families, where a run cannot halt.
func (b bounce) final() Monadic {
	b = b.run()
	if b.err != nil {
		panic(b.err)
	}
	if b.halted {
		panic(&FamilyError{Got: familyUnknown, Detail: "short-circuit inside a deferred family"})
	}
	return b.land
}
