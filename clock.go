// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Race creates a task that settles with the first of tasks to settle.
// The others keep running; their outcomes are discarded.
// Race of no tasks never settles.
func Race[A, E any](tasks ...Task[A, E]) Task[A, E] {
	return NewTask(func(resolve func(A), reject func(E)) {
		for _, t := range tasks {
			t.Run(resolve, reject)
		}
	})
}

// Sleep creates a task that resolves d after it is run, timed by clk.
func Sleep[E any](clk clock.Clock, d time.Duration) Task[struct{}, E] {
	return NewTask(func(resolve func(struct{}), _ func(E)) {
		clk.AfterFunc(d, func() { resolve(struct{}{}) })
	})
}

// Timeout races t against a timer of d on clk. If the timer fires first the
// task rejects with onTimeout(). t itself is not cancelled.
func Timeout[A, E any](t Task[A, E], clk clock.Clock, d time.Duration, onTimeout func() E) Task[A, E] {
	expire := FlatMapTask(Sleep[E](clk, d), func(struct{}) Task[A, E] {
		return Fail[A](onTimeout())
	})
	return Race(t, expire)
}
