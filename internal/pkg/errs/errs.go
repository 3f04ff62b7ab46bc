// Package errs narrows the cockroachdb/errors surface to the handful of
// operations the rest of the codebase needs: wrapping with context,
// creating sentinels, and marking errors so errors.Is can match a
// sentinel without losing the original chain.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark makes err match markErr under errors.Is while keeping err's own
// message and stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
