// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"code.hybscloud.com/kont"
)

// State is a pure computation that threads a state S and yields A.
// It is an immutable description; [State.Run] evaluates it with an explicit
// continuation stack, so chains of any length run in constant stack depth.
//
// The zero State yields the zero value of A and leaves the state unchanged.
type State[S, A any] struct {
	n *stateNode
}

// stateNode is one node of a State tree. Exactly one of step, src and
// thunk is set.
type stateNode struct {
	step  func(s kont.Erased) (a, next kont.Erased)
	src   *stateNode
	k     func(kont.Erased) *stateNode
	thunk func() *stateNode
}

var stateIdentity = &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
	return nil, s
}}

func (st State[S, A]) tree() *stateNode {
	if st.n == nil {
		return stateIdentity
	}
	return st.n
}

// NewState creates a State from a transition function.
func NewState[S, A any](run func(S) (S, A)) State[S, A] {
	return State[S, A]{n: &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
		ns, a := run(fromErased[S](s))
		return a, ns
	}}}
}

// StatePure creates a State that yields a and leaves the state unchanged.
func StatePure[S, A any](a A) State[S, A] {
	return State[S, A]{n: &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
		return a, s
	}}}
}

// Read creates a State that yields the current state.
func Read[S any]() State[S, S] {
	return State[S, S]{n: &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
		return s, s
	}}}
}

// Write creates a State that replaces the state with s.
func Write[S any](s S) State[S, struct{}] {
	return State[S, struct{}]{n: &stateNode{step: func(kont.Erased) (kont.Erased, kont.Erased) {
		return struct{}{}, s
	}}}
}

// Modify creates a State that applies f to the state.
func Modify[S any](f func(S) S) State[S, struct{}] {
	return State[S, struct{}]{n: &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
		return struct{}{}, f(fromErased[S](s))
	}}}
}

// MapState transforms the value yielded by st.
func MapState[S, A, B any](st State[S, A], f func(A) B) State[S, B] {
	return State[S, B]{n: &stateNode{
		src: st.tree(),
		k: func(v kont.Erased) *stateNode {
			b := f(fromErased[A](v))
			return &stateNode{step: func(s kont.Erased) (kont.Erased, kont.Erased) {
				return b, s
			}}
		},
	}}
}

// FlatMapState sequences st with the State returned by f.
func FlatMapState[S, A, B any](st State[S, A], f func(A) State[S, B]) State[S, B] {
	return State[S, B]{n: &stateNode{
		src: st.tree(),
		k: func(v kont.Erased) *stateNode {
			return f(fromErased[A](v)).tree()
		},
	}}
}

// Run evaluates st from initial and returns the final state and value.
func (st State[S, A]) Run(initial S) (S, A) {
	a, s := runState(st.tree(), initial)
	return fromErased[S](s), fromErased[A](a)
}

// Eval evaluates st from initial and returns only the value.
func (st State[S, A]) Eval(initial S) A {
	_, a := st.Run(initial)
	return a
}

// Exec evaluates st from initial and returns only the final state.
func (st State[S, A]) Exec(initial S) S {
	s, _ := st.Run(initial)
	return s
}

// runState is the iterative evaluator shared by every State instantiation.
func runState(n *stateNode, s kont.Erased) (a, final kont.Erased) {
	var stack []func(kont.Erased) *stateNode
	cur := n
	for {
		switch {
		case cur.thunk != nil:
			cur = cur.thunk()
		case cur.src != nil:
			stack = append(stack, cur.k)
			cur = cur.src
		default:
			a, s = cur.step(s)
			if len(stack) == 0 {
				return a, s
			}
			k := stack[len(stack)-1]
			stack[len(stack)-1] = nil
			stack = stack[:len(stack)-1]
			cur = k(a)
		}
	}
}

// Eff converts st into a kont computation on the State effect.
// The result runs under kont.RunState or any handler of kont.Get and kont.Put.
func (st State[S, A]) Eff() kont.Eff[A] {
	return kont.Bind(kont.Perform(kont.Get[S]{}), func(s S) kont.Eff[A] {
		ns, a := st.Run(s)
		return kont.Then(kont.Perform(kont.Put[S]{Value: ns}), kont.Pure(a))
	})
}

// StateFromEff converts a kont computation on the State effect into a State.
// m is handled by kont.RunState on each run.
func StateFromEff[S, A any](m kont.Eff[A]) State[S, A] {
	return NewState(func(s S) (S, A) {
		a, ns := kont.RunState[S, A](s, m)
		return ns, a
	})
}

// Family returns [FamilyState].
func (State[S, A]) Family() Family { return FamilyState }

// suspend lands a State that runs st and feeds its value to resume.
func (st State[S, A]) suspend(resume func(kont.Resumed) bounce) bounce {
	return landed(State[S, kont.Erased]{n: &stateNode{
		src: st.tree(),
		k: func(v kont.Erased) *stateNode {
			return resume(v).final().(stateNoder).tree()
		},
	}})
}

func (State[S, A]) inner() A {
	var zero A
	return zero
}

// stateNoder is implemented by every State instantiation.
type stateNoder interface {
	tree() *stateNode
}

func (State[S, A]) stateOf() S {
	var zero S
	return zero
}

func (State[S, A]) sameKind(c Monadic) bool {
	_, ok := c.(interface{ stateOf() S })
	return ok
}

func (State[S, A]) halt(kont.Resumed) (State[S, A], bool) {
	return State[S, A]{}, false
}

func (State[S, A]) coerce(m Monadic) (State[S, A], bool) {
	sn, ok := m.(stateNoder)
	if !ok {
		return State[S, A]{}, false
	}
	return State[S, A]{n: sn.tree()}, true
}

func (State[S, A]) delay(f func() State[S, A]) State[S, A] {
	return State[S, A]{n: &stateNode{
		thunk: func() *stateNode { return f().tree() },
	}}
}
