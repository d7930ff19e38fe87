// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots_test

import (
	"context"
	"testing"
	"time"

	"code.hybscloud.com/dots"
)

// runSync runs a task whose initializers all settle synchronously and
// returns its outcome. Fails the test if the task is still pending.
func runSync[A, E any](tb testing.TB, task dots.Task[A, E]) dots.Result[A, E] {
	tb.Helper()
	var r dots.Result[A, E]
	settled := false
	task.Run(
		func(a A) { r, settled = dots.Ok[A, E](a), true },
		func(e E) { r, settled = dots.Err[A](e), true },
	)
	if !settled {
		tb.Fatalf("task did not settle synchronously")
	}
	return r
}

// waitCtx returns a context that ends when the test does or after 5s.
func waitCtx(tb testing.TB) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	tb.Cleanup(cancel)
	return ctx
}

// mustPanic runs f and returns the recovered value.
func mustPanic(tb testing.TB, f func()) (v any) {
	tb.Helper()
	defer func() {
		v = recover()
		if v == nil {
			tb.Fatalf("expected panic")
		}
	}()
	f()
	return nil
}
