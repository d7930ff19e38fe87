// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive Do-program (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// ExprLoop runs a recursive Do-program (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Completed steps are iterated without building frames.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	s := initial
	for {
		m := step(s)
		if _, ok := m.Frame.(kont.ReturnFrame); !ok {
			return kont.ExprBind(m, func(e kont.Either[S, A]) kont.Expr[A] {
				return exprLoopNext(e, step)
			})
		}
		left, ok := m.Value.GetLeft()
		if !ok {
			right, _ := m.Value.GetRight()
			return kont.ExprReturn(right)
		}
		s = left
	}
}

func exprLoopNext[S, A any](e kont.Either[S, A], step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	if left, ok := e.GetLeft(); ok {
		return ExprLoop(left, step)
	}
	right, _ := e.GetRight()
	return kont.ExprReturn(right)
}
