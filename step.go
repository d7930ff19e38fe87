// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// interpreter advances a Do-program returning a container of family.
type interpreter[M Monad[M]] struct {
	family Family
}

// step handles the container the program is suspended on.
// The suspension is consumed exactly once: resumed by the container's
// hook, or discarded on a halt or a broken rule.
func (in interpreter[M]) step(s *kont.Suspension[M]) bounce {
	op, ok := s.Op().(yielder)
	if !ok {
		s.Discard()
		panic("dots: unhandled effect in Do")
	}
	c := op.container()
	if c == nil {
		s.Discard()
		return fault(&FamilyError{Want: in.family, Got: familyUnknown, Detail: "nil container"})
	}
	if got := c.Family(); got != in.family {
		s.Discard()
		return fault(&FamilyError{Want: in.family, Got: got})
	}
	var zero M
	if !zero.sameKind(c) {
		s.Discard()
		return fault(&FamilyError{Want: in.family, Got: in.family, Detail: "container of a foreign failure or state type"})
	}
	return deferred(func() bounce {
		b := c.suspend(func(v kont.Resumed) bounce {
			return in.resume(s, op.box(v))
		})
		if b.halted {
			s.Discard()
		}
		return b
	})
}

// resume feeds v to the program and handles whatever follows.
func (in interpreter[M]) resume(s *kont.Suspension[M], v kont.Resumed) bounce {
	result, next := s.Resume(v)
	if next == nil {
		return landed(any(result).(Monadic))
	}
	return in.step(next)
}

// start evaluates the program up to its first yield.
func (in interpreter[M]) start(program kont.Expr[M]) bounce {
	result, s := kont.StepExpr(program)
	if s == nil {
		return landed(any(result).(Monadic))
	}
	return in.step(s)
}
