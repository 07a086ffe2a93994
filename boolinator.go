// Package boolinator converts bool values into optional and result values
// using the same combinator style those types use. In general true maps to
// a present optional or a success result and false to an empty optional or
// a failure result.
//
// Methods cannot take type parameters so the generic conversions are package
// functions over a plain bool. The non-generic ones are also available as
// methods on Bool.
package boolinator

import (
	"gopkg.microglot.org/boolinator.go/exc"
	"gopkg.microglot.org/boolinator.go/optional"
	"gopkg.microglot.org/boolinator.go/result"
)

// Boolinator is implemented by bool-like values that can convert themselves
// into the equivalent optional or assert their own truth.
type Boolinator interface {
	// AsOption returns a present unit optional if the value is true.
	AsOption() optional.Optional[struct{}]
	// Expect panics with msg if the value is false.
	Expect(msg string)
}

// Bool is a bool that implements Boolinator.
type Bool bool

func (b Bool) AsOption() optional.Optional[struct{}] {
	return AsOption(bool(b))
}

func (b Bool) Expect(msg string) {
	Expect(bool(b), msg)
}

// AsOption converts b into a logically equivalent Some(struct{}{}) or None.
func AsOption(b bool) optional.Optional[struct{}] {
	return AsSome(b, struct{}{})
}

// AsSome returns Some(v) if b is true and None otherwise.
func AsSome[T any](b bool, v T) optional.Optional[T] {
	if !b {
		return optional.None[T]()
	}
	return optional.Some(v)
}

// AsSomeFrom returns Some(f()) if b is true and None otherwise. f is only
// called when b is true.
func AsSomeFrom[T any](b bool, f func() T) optional.Optional[T] {
	if !b {
		return optional.None[T]()
	}
	return optional.Some(f())
}

// AndOption returns o if b is true and None otherwise.
func AndOption[T any](b bool, o optional.Optional[T]) optional.Optional[T] {
	if !b {
		return optional.None[T]()
	}
	return o
}

// AndOptionFrom returns f() if b is true and None otherwise. f is only called
// when b is true.
func AndOptionFrom[T any](b bool, f func() optional.Optional[T]) optional.Optional[T] {
	if !b {
		return optional.None[T]()
	}
	return f()
}

// AsResult returns Ok(ok) if b is true and Err(err) otherwise.
func AsResult[T any, E any](b bool, ok T, err E) result.Result[T, E] {
	if !b {
		return result.Err[T](err)
	}
	return result.Ok[T, E](ok)
}

// AsResultFrom returns Ok(ok()) if b is true and Err(err()) otherwise. Only
// the function for the selected branch is called.
func AsResultFrom[T any, E any](b bool, ok func() T, err func() E) result.Result[T, E] {
	if !b {
		return result.Err[T](err())
	}
	return result.Ok[T, E](ok())
}

// Expect does nothing if b is true. Otherwise it panics with an
// exc.Exception whose Error and Message both return msg.
func Expect(b bool, msg string) {
	if !b {
		panic(exc.New(exc.CodeAssertionFailed, msg))
	}
}
