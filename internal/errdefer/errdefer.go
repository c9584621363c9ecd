// Package errdefer runs deferred cleanup that can fail,
// folding the failure into the enclosing function's error.
package errdefer

import (
	"errors"
	"io"

	"braces.dev/errtrace"
)

// Close closes closer and joins any error it reports into *err.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closer io.Closer) {
	if cerr := closer.Close(); cerr != nil {
		*err = errors.Join(*err, errtrace.Wrap(cerr))
	}
}
