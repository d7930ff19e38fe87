// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots_test

import (
	"testing"

	"code.hybscloud.com/dots"
	"code.hybscloud.com/kont"
)

func TestReifyDoExpr(t *testing.T) {
	cont := dots.Bind(dots.Some(6), func(n int) kont.Eff[dots.Option[int]] {
		return dots.Return(dots.Some(n * 7))
	})
	if got := dots.DoExpr(dots.Reify(cont)); got != dots.Some(42) {
		t.Fatalf("got %v, want Some(42)", got)
	}
}

func TestReflectDo(t *testing.T) {
	expr := dots.ExprBind(dots.Ok[int, string](6), func(n int) kont.Expr[dots.Result[int, string]] {
		return dots.ExprBind(dots.Err[int]("halt"), func(m int) kont.Expr[dots.Result[int, string]] {
			return dots.ExprReturn(dots.Ok[int, string](n + m))
		})
	})
	if got := dots.Do(dots.Reflect(expr)); got != dots.Err[int]("halt") {
		t.Fatalf("got %v, want Err(halt)", got)
	}
}

func TestReflectTaskRerun(t *testing.T) {
	calls := 0
	counted := dots.NewTask(func(resolve func(int), _ func(error)) {
		calls++
		resolve(calls)
	})
	expr := dots.ExprBind(counted, func(n int) kont.Expr[dots.Task[int, error]] {
		return dots.ExprReturn(dots.Done[int, error](n))
	})
	task := dots.Do(dots.Reflect(expr))
	runSync(t, task)
	if got := runSync(t, task); got != dots.Ok[int, error](2) {
		t.Fatalf("got %v, want Ok(2)", got)
	}
}

func TestReifyTaskRerun(t *testing.T) {
	calls := 0
	counted := dots.NewTask(func(resolve func(int), _ func(error)) {
		calls++
		resolve(calls)
	})
	cont := dots.Bind(counted, func(n int) kont.Eff[dots.Task[int, error]] {
		return dots.Bind(counted, func(m int) kont.Eff[dots.Task[int, error]] {
			return dots.Return(dots.Done[int, error](n*10 + m))
		})
	})
	task := dots.DoExpr(dots.Reify(cont))
	if got := runSync(t, task); got != dots.Ok[int, error](12) {
		t.Fatalf("first run: got %v, want Ok(12)", got)
	}
	if got := runSync(t, task); got != dots.Ok[int, error](34) {
		t.Fatalf("second run: got %v, want Ok(34)", got)
	}
}

func TestReifyStateRerun(t *testing.T) {
	cont := dots.Bind(dots.Read[int](), func(n int) kont.Eff[dots.State[int, int]] {
		return dots.Then(dots.Write(n*2), dots.Return(dots.StatePure[int](n+1)))
	})
	st := dots.DoExpr(dots.Reify(cont))
	for _, initial := range []int{1, 5} {
		s, v := st.Run(initial)
		if s != initial*2 || v != initial+1 {
			t.Fatalf("Run(%d): got (%d, %d), want (%d, %d)", initial, s, v, initial*2, initial+1)
		}
	}
}
