// Package errors mirrors the standard errors package and adds Wrap, which
// annotates an error with a message and optionally the caller location.
package errors

import (
	stdErr "errors"
	"fmt"
	"runtime"
)

// RuntimeFileInfo makes Wrap append function, file and line of its caller.
var RuntimeFileInfo = false

func As(err error, target any) bool {
	return stdErr.As(err, target)
}

func Is(err, target error) bool {
	return stdErr.Is(err, target)
}

func Join(errs ...error) error {
	return stdErr.Join(errs...)
}

func New(text string) error {
	return stdErr.New(text)
}

func Newf(text string, args ...any) error {
	return fmt.Errorf(text, args...)
}

func Unwrap(err error) error {
	return stdErr.Unwrap(err)
}

// Wrap returns nil for a nil err, otherwise "msg: err" with msg formatted
// using args. The result unwraps to err.
func Wrap(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	if RuntimeFileInfo {
		if pc, file, line, ok := runtime.Caller(1); ok {
			msg += " function=%s file=%s line=%d"
			args = append(args, runtime.FuncForPC(pc).Name(), file, line)
		}
	}

	msg += ": %w"
	args = append(args, err)

	return fmt.Errorf(msg, args...)
}

// Must panics when err is non-nil and returns v otherwise. Meant for package
// level initialisation only.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
