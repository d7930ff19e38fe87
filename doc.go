// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dots provides composable containers for absence, failure,
// deferred asynchronous work and threaded state, sequenced by a
// do-notation interpreter built on algebraic effects from
// [code.hybscloud.com/kont].
//
// # Containers
//
//   - [Option]: a value that may be absent. [Some], [None], [OptionOf].
//   - [Result]: a success value or a failure. [Ok], [Err], [ResultOf].
//   - [Task]: a lazy computation that eventually resolves or rejects. [NewTask], [Done], [Fail].
//   - [State]: a pure computation threading a state. [NewState], [Read], [Write], [Modify].
//
// Combinators are free functions because Go methods cannot introduce type
// parameters: [MapOption], [FlatMapResult], [MapTask], [FlatMapState], and so on.
//
// # Do-notation
//
// A Do-program is a kont computation whose steps yield containers of one
// family. [Do] and [DoExpr] drive the program one yield at a time: a present
// or successful container resumes the program with its inner value, and the
// first absent or failed container ends it. The drive loop is a trampoline,
// so programs of any length run in constant stack depth.
//
//   - Cont-world: [Yield], [Bind], [Then], [Return].
//   - Expr-world: [ExprYield], [ExprBind], [ExprThen], [ExprReturn]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop].
//   - Adapters: [DoFunc], [DoFunc2], [DoFunc3].
//
// Tasks and States produced by Do stay lazy: each run re-executes the program.
// Yielding a container of another family panics with *[FamilyError].
//
// # Tasks
//
//   - Running: [Task.Run] reports through callbacks. [Task.Start] returns a [Future].
//   - Awaiting: [Future.Poll] returns [code.hybscloud.com/iox.ErrWouldBlock] while
//     pending; [Future.Wait], [Task.Await] and [Task.ToResult] wait with adaptive backoff.
//   - Sources: [FromAsync], [Taskify], [Go].
//   - Timing: [Sleep], [Timeout] and [Race] on a [github.com/benbjohnson/clock.Clock].
//
// # Example
//
//	sum := dots.Do(dots.Bind(dots.Some(1), func(a int) kont.Eff[dots.Option[int]] {
//		return dots.Bind(dots.Some(2), func(b int) kont.Eff[dots.Option[int]] {
//			return dots.Return(dots.Some(a + b))
//		})
//	}))
//	// sum is Some(3)
package dots
