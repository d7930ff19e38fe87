// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots_test

import (
	"testing"

	"code.hybscloud.com/dots"
	"code.hybscloud.com/kont"
)

func TestDoExprOption(t *testing.T) {
	prog := dots.ExprBind(dots.Some(4), func(a int) kont.Expr[dots.Option[int]] {
		return dots.ExprBind(dots.Some(5), func(b int) kont.Expr[dots.Option[int]] {
			return dots.ExprReturn(dots.Some(a * b))
		})
	})
	if got := dots.DoExpr(prog); got != dots.Some(20) {
		t.Fatalf("got %v, want Some(20)", got)
	}
}

func TestDoExprYieldThen(t *testing.T) {
	prog := kont.ExprBind(dots.ExprYield(dots.Ok[int, string](2)), func(n int) kont.Expr[dots.Result[int, string]] {
		return dots.ExprThen(dots.Ok[struct{}, string](struct{}{}), dots.ExprReturn(dots.Ok[int, string](n+1)))
	})
	if got := dots.DoExpr(prog); got != dots.Ok[int, string](3) {
		t.Fatalf("got %v, want Ok(3)", got)
	}
}

func TestDoExprShortCircuit(t *testing.T) {
	reached := false
	prog := dots.ExprBind(dots.Err[int]("stop"), func(int) kont.Expr[dots.Result[int, string]] {
		reached = true
		return dots.ExprReturn(dots.Ok[int, string](0))
	})
	if got := dots.DoExpr(prog); got != dots.Err[int]("stop") || reached {
		t.Fatalf("got %v (continued: %v), want Err(stop)", got, reached)
	}
}

func TestDoExprPure(t *testing.T) {
	if got := dots.DoExpr(dots.ExprReturn(dots.Some(1))); got != dots.Some(1) {
		t.Fatalf("got %v, want Some(1)", got)
	}
}

func TestDoExprTaskRerun(t *testing.T) {
	calls := 0
	counted := dots.NewTask(func(resolve func(int), _ func(string)) {
		calls++
		resolve(calls)
	})
	// The program value is built once and evaluated on every run.
	prog := dots.ExprBind(counted, func(n int) kont.Expr[dots.Task[int, string]] {
		return dots.ExprReturn(dots.Done[int, string](n * 100))
	})
	task := dots.DoExpr(prog)
	if got := runSync(t, task); got != dots.Ok[int, string](100) {
		t.Fatalf("got %v, want Ok(100)", got)
	}
	if got := runSync(t, task); got != dots.Ok[int, string](200) {
		t.Fatalf("got %v, want Ok(200)", got)
	}
}

func TestDoExprState(t *testing.T) {
	prog := dots.ExprThen(dots.Modify(func(s []string) []string { return append(s, "a") }),
		dots.ExprBind(dots.Read[[]string](), func(s []string) kont.Expr[dots.State[[]string, int]] {
			return dots.ExprReturn(dots.StatePure[[]string](len(s)))
		}),
	)
	s, v := dots.DoExpr(prog).Run([]string{"x"})
	if v != 2 || len(s) != 2 || s[1] != "a" {
		t.Fatalf("got (%v, %d), want ([x a], 2)", s, v)
	}
}
