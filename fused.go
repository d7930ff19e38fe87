// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// Yield binds the inner value of c in a Cont-world Do-program.
// If c is absent or failed, the program stops at this step.
func Yield[A any](c Yieldable[A]) kont.Eff[A] {
	return kont.Map(kont.Perform(yieldOp[A]{from: c}), unslot[A])
}

// Bind yields c and passes its inner value to f.
// Fuses Perform(yield) + Bind.
func Bind[A, B any](c Yieldable[A], f func(A) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(yieldOp[A]{from: c}), func(s slot[A]) kont.Eff[B] {
		return f(s.v)
	})
}

// Then yields c for its effect and continues with next.
// Fuses Perform(yield) + Then.
func Then[A, B any](c Yieldable[A], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(yieldOp[A]{from: c}), next)
}

// Return ends a Cont-world Do-program with the container m.
func Return[M Monad[M]](m M) kont.Eff[M] {
	return kont.Pure(m)
}
