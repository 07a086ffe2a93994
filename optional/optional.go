package optional

import "gopkg.microglot.org/boolinator.go/exc"

// Optional holds either nothing or exactly one value. The zero value is
// empty.
type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the contained value or the zero value of T if empty.
func (self Optional[T]) Value() T {
	return self.value
}

func (self Optional[T]) Get() (T, bool) {
	return self.value, self.present
}

func (self Optional[T]) OrElse(v T) T {
	if self.present {
		return self.value
	}
	return v
}

// Expect returns the contained value. It panics with an exc.Exception
// carrying msg if the optional is empty.
func (self Optional[T]) Expect(msg string) T {
	if !self.present {
		panic(exc.New(exc.CodeAssertionFailed, msg))
	}
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{
		present: true,
		value:   v,
	}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
