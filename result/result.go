/*
Package result implements a result type for computations which may fail.

Results are used where many independent computations are carried out in
one go, e.g. processing a list of pages, and failures of single items
should be reported without stopping the others.

    var report Report
    var err error
    switch m := r.Match(); m {
    case m.Ok(&report):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result holds either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error) // the value or the error
	IsOk() bool
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. A nil error is a valid result with the zero value.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From wraps the return values of a function following the usual Go
// convention:
//
//    f, err := os.Open(path)
//    r := result.From(f, err)
//
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// AndThen chains a computation to a result. f is called only for Ok results.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(x)
}

// Collect splits results into values and errors, preserving order.
func Collect[T any](rs []Result[T]) ([]T, []error) {
	var values []T
	var errs []error
	for _, r := range rs {
		if x, err := r.Get(); err != nil {
			errs = append(errs, err)
		} else {
			values = append(values, x)
		}
	}
	return values, errs
}

// --- Matching --------------------------------------------------------------

// Matcher is used to pattern-match a result in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		if v != nil {
			*v = rm.r.value
		}
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		if err != nil {
			*err = rm.r.err
		}
		return rm
	}
	return nil
}
