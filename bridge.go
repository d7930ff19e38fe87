// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world Do-program into an Expr-world one, for DoExpr
// or for composition with [ExprBind] and [ExprLoop].
//
// The Cont program is reified on each evaluation of the result, so a Task or
// State built from it with DoExpr stays re-runnable.
func Reify[M Monad[M]](program kont.Eff[M]) kont.Expr[M] {
	return kont.Expr[M]{Frame: &kont.BindFrame[kont.Erased, kont.Erased]{
		F: func(kont.Erased) kont.Expr[kont.Erased] {
			e := kont.Reify(program)
			return kont.Expr[kont.Erased]{Value: kont.Erased(e.Value), Frame: e.Frame}
		},
		Next: kont.ReturnFrame{},
	}}
}

// Reflect converts an Expr-world Do-program into a Cont-world one, for Do
// or for composition with [Bind] and [Loop].
func Reflect[M Monad[M]](program kont.Expr[M]) kont.Eff[M] {
	return kont.Reflect(program)
}
