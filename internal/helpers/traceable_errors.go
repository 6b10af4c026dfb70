package helpers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ztrue/tracerr"
)

// Error carries zero or more traced errors. The zero value (NilError) means
// success, so constructors can return it by value without the nil-interface
// trap.
type Error struct {
	errs []tracerr.Error
}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

func (e Error) HasError() bool {
	return !IsNil(e)
}

type ErrorRef struct {
	// only hold a single value so the internal accumulated value isn't copied
	// when ErrorRef is passed by value
	reference []Error
}

func (errRef *ErrorRef) NumErrors() int {
	if errRef.IsNil() {
		return 0
	}
	return errRef.reference[0].NumErrors()
}

func (e *ErrorRef) Add(err Error) {
	if IsNil(err) {
		return
	}
	if e.reference == nil {
		e.reference = []Error{err}
	} else {
		e.reference[0] = Join(e.reference[0], err)
	}
}

func (e *ErrorRef) IsNil() bool {
	return e.reference == nil || IsNil(e.reference[0])
}

func (e *ErrorRef) HasError() bool {
	return !e.IsNil()
}

func (e *ErrorRef) Error() Error {
	if e.reference == nil {
		return NilError
	}
	return e.reference[0]
}

var NilError = Error{nil}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.First() == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.First() == nil
	}
	return err == nil
}

const _errorIndent = ".  "

func (e Error) Error() string {
	result := []string{}
	for _, err := range e.errs {
		result = append(result, Indent(tracerr.Sprint(err), _errorIndent))
	}
	return strings.Join(result, "\n")
}

func (e Error) String() string {
	result := ""
	for _, err := range e.errs {
		result += "-------------------------------------------------------------------------------\n"
		result += tracerr.SprintSourceColor(err, 3) + "\n"
	}
	return result
}

// Is reports whether any of the accumulated errors matches target, so callers
// can test for sentinels such as ErrInvalidPiece with errors.Is.
func (e Error) Is(target error) bool {
	for _, err := range e.errs {
		if errors.Is(tracerr.Unwrap(err), target) {
			return true
		}
	}
	return false
}

// Message is the first error without its stack trace.
func (e Error) Message() string {
	first := e.First()
	if first == nil {
		return ""
	}
	return tracerr.Unwrap(first).Error()
}

func (e Error) First() tracerr.Error {
	if e.errs == nil {
		return nil
	}
	return e.errs[0]
}

func Wrap(err error) Error {
	if IsNil(err) {
		return NilError
	}
	if traceableErr, ok := err.(Error); ok {
		return traceableErr
	}
	return Error{[]tracerr.Error{tracerr.Wrap(err)}}
}

func WrapReturn[T any](x T, err error) (T, Error) {
	return x, Wrap(err)
}

func Join(others ...Error) Error {
	others = FilterSlice(others, func(err Error) bool {
		return !IsNil(err)
	})
	if len(others) == 0 {
		return NilError
	}
	if len(others) == 1 {
		return others[0]
	}

	result := Error{}
	for _, o := range others {
		result.errs = append(result.errs, o.errs...)
	}
	return result
}

func (err Error) NumErrors() int {
	num := 0
	for _, e := range err.errs {
		if e != nil {
			num++
		}
	}
	return num
}

// Errorf supports %w, which keeps wrapped sentinels visible to errors.Is.
func Errorf(format string, args ...interface{}) Error {
	return Error{[]tracerr.Error{tracerr.Wrap(fmt.Errorf(format, args...))}}
}
