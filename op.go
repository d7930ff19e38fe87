// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// slot carries a yielded inner value through the kont pipeline.
// Boxing keeps nil interface values intact across resumption.
type slot[A any] struct {
	v A
}

func unslot[A any](s slot[A]) A { return s.v }

// yieldOp is the effect operation performed by [Yield] and [ExprYield].
// The interpreter binds the container's inner value and resumes the
// program with it.
type yieldOp[A any] struct {
	kont.Phantom[slot[A]]
	from Monadic
}

// yielder is implemented by every yieldOp instantiation.
type yielder interface {
	container() Monadic
	box(v kont.Resumed) kont.Resumed
}

func (o yieldOp[A]) container() Monadic { return o.from }

// box types an erased inner value for resumption.
func (yieldOp[A]) box(v kont.Resumed) kont.Resumed {
	return slot[A]{v: fromErased[A](v)}
}
