package result

// Result holds exactly one of a success value of type T or a failure value
// of type E. Unlike the usual (T, error) pair, E may be any type.
type Result[T any, E any] struct {
	ok      bool
	value   T
	failure E
}

func (self Result[T, E]) IsOk() bool {
	return self.ok
}

func (self Result[T, E]) IsErr() bool {
	return !self.ok
}

// Value returns the success value or the zero value of T on failure.
func (self Result[T, E]) Value() T {
	return self.value
}

// Failure returns the failure value or the zero value of E on success.
func (self Result[T, E]) Failure() E {
	return self.failure
}

func (self Result[T, E]) Get() (T, E, bool) {
	return self.value, self.failure, self.ok
}

func Ok[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:    true,
		value: v,
	}
}

func Err[T any, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure: e,
	}
}
