// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// Do runs a Cont-world Do-program and returns its container.
//
// Each yielded container binds its inner value for the next step. The first
// absent or failed container ends the program, and Do returns it re-typed to
// M. Options and Results are evaluated immediately. Tasks and States are
// returned unevaluated; each run re-executes the program from its first step.
//
// Do panics with *[FamilyError] if the program yields a container whose
// family differs from M's.
func Do[M Monad[M]](program kont.Eff[M]) M {
	var zero M
	return zero.delay(func() M {
		return drive(zero, kont.Reify(program))
	})
}

// DoExpr runs an Expr-world Do-program and returns its container.
// See [Do].
func DoExpr[M Monad[M]](program kont.Expr[M]) M {
	var zero M
	return zero.delay(func() M {
		return drive(zero, program)
	})
}

// drive steps program until it lands or halts.
// Stack depth does not grow with the number of yields.
func drive[M Monad[M]](zero M, program kont.Expr[M]) M {
	in := interpreter[M]{family: zero.Family()}
	b := in.start(program).run()
	if b.err != nil {
		panic(b.err)
	}
	if b.halted {
		m, ok := zero.halt(b.cause)
		if !ok {
			panic(&FamilyError{Want: zero.Family(), Got: zero.Family(), Detail: "short-circuit of a foreign failure type"})
		}
		return m
	}
	m, ok := zero.coerce(b.land)
	if !ok {
		panic(&FamilyError{Want: zero.Family(), Got: b.land.Family(), Detail: "returned container of another type"})
	}
	return m
}

// DoFunc turns a function building a Do-program into a function returning
// the program's container.
func DoFunc[P any, M Monad[M]](f func(P) kont.Eff[M]) func(P) M {
	return func(p P) M {
		return Do(f(p))
	}
}

// DoFunc2 is [DoFunc] for two-argument functions.
func DoFunc2[P1, P2 any, M Monad[M]](f func(P1, P2) kont.Eff[M]) func(P1, P2) M {
	return func(p1 P1, p2 P2) M {
		return Do(f(p1, p2))
	}
}

// DoFunc3 is [DoFunc] for three-argument functions.
func DoFunc3[P1, P2, P3 any, M Monad[M]](f func(P1, P2, P3) kont.Eff[M]) func(P1, P2, P3) M {
	return func(p1 P1, p2 P2, p3 P3) M {
		return Do(f(p1, p2, p3))
	}
}
