// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// Expr-world programs are built from kont's public constructors, never from
// pooled frames: a Task or State produced by DoExpr evaluates its program
// once per run.

// ExprYield binds the inner value of c in an Expr-world Do-program.
func ExprYield[A any](c Yieldable[A]) kont.Expr[A] {
	return kont.ExprMap(kont.ExprPerform(yieldOp[A]{from: c}), unslot[A])
}

// ExprBind yields c and passes its inner value to f.
// Fuses ExprPerform(yield) + ExprBind.
func ExprBind[A, B any](c Yieldable[A], f func(A) kont.Expr[B]) kont.Expr[B] {
	return kont.ExprBind(kont.ExprPerform(yieldOp[A]{from: c}), func(s slot[A]) kont.Expr[B] {
		return f(s.v)
	})
}

// ExprThen yields c for its effect and continues with next.
// Fuses ExprPerform(yield) + ExprThen.
func ExprThen[A, B any](c Yieldable[A], next kont.Expr[B]) kont.Expr[B] {
	return kont.ExprThen(kont.ExprPerform(yieldOp[A]{from: c}), next)
}

// ExprReturn ends an Expr-world Do-program with the container m.
func ExprReturn[M Monad[M]](m M) kont.Expr[M] {
	return kont.ExprReturn(m)
}
