package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that may be repeated,
// collecting every value passed to it in order.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice of flag.Getter values
// into a repeatable flag.
//
//	flag.Var(flagvalue.ListOf(&globs), "exclude", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far as a []T.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns the values in this list separated by semicolons.
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i, v := range *lv {
		items[i] = fmt.Sprint(PT(&v))
	}
	return strings.Join(items, "; ")
}

// Set parses a single flag argument and appends it to the list.
// The list is left unchanged if the argument is invalid.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
