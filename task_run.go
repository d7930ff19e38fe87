// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// taskKind tags a node of the defunctionalized task tree.
type taskKind uint8

const (
	taskPure   taskKind = iota // resolved with value
	taskFail                   // rejected with value
	taskAsync                  // initializer
	taskBind                   // src, then k on resolution
	taskRescue                 // src, then k on rejection
	taskDelay                  // thunk builds the node on each run
)

// taskNode is an immutable task description. Nodes are shared between
// tasks and never mutated after construction.
type taskNode struct {
	kind  taskKind
	value kont.Erased
	init  func(resolve, reject func(kont.Erased))
	src   *taskNode
	k     func(kont.Erased) *taskNode
	thunk func() *taskNode
}

// taskFrame is a pending continuation on the run stack.
// Exactly one of onDone and onFail is set.
type taskFrame struct {
	onDone func(kont.Erased) *taskNode
	onFail func(kont.Erased) *taskNode
}

// taskRun is the state of one run of a task tree.
// The loop evaluates nodes iteratively; an initializer that settles
// synchronously continues the same loop, and one that settles later
// re-enters the loop from its callback.
type taskRun struct {
	stack []taskFrame
	done  func(kont.Erased)
	fail  func(kont.Erased)
}

func (r *taskRun) loop(cur *taskNode) {
	for {
		switch cur.kind {
		case taskPure:
			next, ok := r.unwind(cur.value, false)
			if !ok {
				r.done(cur.value)
				return
			}
			cur = next
		case taskFail:
			next, ok := r.unwind(cur.value, true)
			if !ok {
				r.fail(cur.value)
				return
			}
			cur = next
		case taskBind:
			r.stack = append(r.stack, taskFrame{onDone: cur.k})
			cur = cur.src
		case taskRescue:
			r.stack = append(r.stack, taskFrame{onFail: cur.k})
			cur = cur.src
		case taskDelay:
			cur = cur.thunk()
		case taskAsync:
			next, ok := r.await(cur)
			if !ok {
				return
			}
			cur = next
		default:
			panic("dots: unknown task node")
		}
	}
}

// unwind pops frames until one accepts the outcome.
// Returns false when the stack is exhausted.
func (r *taskRun) unwind(v kont.Erased, failed bool) (*taskNode, bool) {
	for len(r.stack) > 0 {
		f := r.stack[len(r.stack)-1]
		r.stack[len(r.stack)-1] = taskFrame{}
		r.stack = r.stack[:len(r.stack)-1]
		if failed && f.onFail != nil {
			return f.onFail(v), true
		}
		if !failed && f.onDone != nil {
			return f.onDone(v), true
		}
	}
	return nil, false
}

// Gate states for one initializer invocation.
const (
	gateRunning  uint32 = iota // initializer still on the stack
	gateSync                   // settled before the initializer returned
	gateDetached               // initializer returned first; the callback continues
)

// gate admits exactly one settlement of an initializer and decides which
// side continues the run loop.
type gate struct {
	settled atomix.Uint32
	state   atomix.Uint32
	value   kont.Erased
	failed  bool
}

func (g *gate) outcome() *taskNode {
	if g.failed {
		return &taskNode{kind: taskFail, value: g.value}
	}
	return &taskNode{kind: taskPure, value: g.value}
}

// await invokes an initializer. It returns the outcome node when the
// initializer settled synchronously; otherwise false, and the settling
// callback resumes the loop later.
func (r *taskRun) await(n *taskNode) (*taskNode, bool) {
	g := &gate{}
	settle := func(v kont.Erased, failed bool) {
		if !g.settled.CompareAndSwap(0, 1) {
			return
		}
		g.value, g.failed = v, failed
		if g.state.CompareAndSwap(gateRunning, gateSync) {
			return
		}
		r.loop(g.outcome())
	}
	n.init(
		func(v kont.Erased) { settle(v, false) },
		func(e kont.Erased) { settle(e, true) },
	)
	if g.state.CompareAndSwap(gateRunning, gateDetached) {
		return nil, false
	}
	return g.outcome(), true
}
