// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"code.hybscloud.com/dots"
	"code.hybscloud.com/iox"
)

func TestFuturePoll(t *testing.T) {
	var resolve func(int)
	task := dots.NewTask(func(res func(int), _ func(string)) { resolve = res })
	f := task.Start()

	if f.Settled() {
		t.Fatalf("settled before resolve")
	}
	if _, err := f.Poll(); !iox.IsWouldBlock(err) {
		t.Fatalf("got %v, want iox.ErrWouldBlock", err)
	}

	resolve(5)
	resolve(6)
	if !f.Settled() {
		t.Fatalf("not settled after resolve")
	}
	for range 2 {
		r, err := f.Poll()
		if err != nil {
			t.Fatalf("poll: %v", err)
		}
		if r != dots.Ok[int, string](5) {
			t.Fatalf("got %v, want Ok(5)", r)
		}
	}
}

// TestFutureSettledImpliesPoll checks that a future observed as settled from
// another goroutine already has its outcome available to Poll.
func TestFutureSettledImpliesPoll(t *testing.T) {
	skipRace(t)
	for i := range 1000 {
		var resolve func(int)
		f := dots.NewTask(func(res func(int), _ func(string)) { resolve = res }).Start()
		go resolve(i)
		for !f.Settled() {
			runtime.Gosched()
		}
		r, err := f.Poll()
		if err != nil {
			t.Fatalf("iteration %d: settled but Poll returned %v", i, err)
		}
		if r != dots.Ok[int, string](i) {
			t.Fatalf("iteration %d: got %v, want Ok(%d)", i, r, i)
		}
	}
}

func TestFutureWaitAcrossGoroutines(t *testing.T) {
	skipRace(t)
	task := dots.NewTask(func(_ func(int), reject func(string)) {
		go func() {
			time.Sleep(time.Millisecond)
			reject("late")
		}()
	})
	r, err := task.Start().Wait(waitCtx(t))
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if r != dots.Err[int]("late") {
		t.Fatalf("got %v, want Err(late)", r)
	}
}

func TestFutureWaitDeadline(t *testing.T) {
	never := dots.NewTask(func(func(int), func(string)) {})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := never.Start().Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
}

func TestFutureAsAsync(t *testing.T) {
	skipRace(t)
	f := dots.Done[int, string](20).Start()
	var async dots.Async[int, string] = f
	chained := dots.MapTask(dots.FromAsync(async), func(n int) int { return n + 1 })
	got, err := chained.Await(waitCtx(t))
	if err != nil || got != 21 {
		t.Fatalf("got (%d, %v), want (21, nil)", got, err)
	}
}
