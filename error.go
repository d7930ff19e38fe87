// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dots

import (
	"errors"
	"fmt"
)

var (
	// ErrNone is the failure of a Task converted from an absent Option.
	ErrNone = errors.New("dots: option is none")

	// ErrMixedFamily is wrapped by every [FamilyError].
	ErrMixedFamily = errors.New("dots: mixed container families in Do program")
)

// UnwrapError is the misuse fault raised by Unwrap on None or Err.
// It is a panic value, never a domain failure.
type UnwrapError struct {
	Family  Family
	Message string
}

func (e *UnwrapError) Error() string {
	if e.Message != "" {
		return "dots: " + e.Message
	}
	switch e.Family {
	case FamilyOption:
		return "dots: unwrapped an Option of None"
	case FamilyResult:
		return "dots: unwrapped a Result of Err"
	default:
		return "dots: unwrapped an absent value"
	}
}

// unwrapMessage joins the optional caller-supplied diagnostic.
func unwrapMessage(message []string) string {
	switch len(message) {
	case 0:
		return ""
	case 1:
		return message[0]
	default:
		return fmt.Sprint(message)
	}
}

// FamilyError reports a Do-program that yields a container of a family
// other than the one it returns, or a short-circuit cause whose type does not
// fit the return type. The interpreter panics with it.
type FamilyError struct {
	Want   Family
	Got    Family
	Detail string
}

func (e *FamilyError) Error() string {
	msg := "dots: Do program returns " + e.Want.String() + " but yielded " + e.Got.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns [ErrMixedFamily].
func (e *FamilyError) Unwrap() error { return ErrMixedFamily }

// PanicError carries a value recovered from a panicking task source.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("dots: task panicked: %v", e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RejectedError wraps a task failure whose type does not implement error.
type RejectedError[E any] struct {
	Cause E
}

func (e *RejectedError[E]) Error() string {
	return fmt.Sprintf("dots: task rejected: %v", e.Cause)
}

// rejection converts a task failure into an error.
// Failures that already are errors pass through unchanged.
func rejection[E any](e E) error {
	if err, ok := any(e).(error); ok && err != nil {
		return err
	}
	return &RejectedError[E]{Cause: e}
}
