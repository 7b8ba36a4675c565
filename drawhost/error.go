package drawhost

import (
	"fmt"
)

// errorHandler returns a check function that aborts the current input by
// panicking with a wrapped error, and a handle function, to be deferred,
// that recovers such a panic and passes the error to fn.
func errorHandler(fn func(err error)) (func(error, string), func()) {
	type localError struct {
		err error
	}

	check := func(err error, msg string) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", msg, err)})
		}
	}
	handle := func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return check, handle
}
