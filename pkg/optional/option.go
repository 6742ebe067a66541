// Copyright 2021 Taiki Kawakami (a.k.a. moznion) https://moznion.net
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the "Software"), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package optional provides an Option[T] value container.
package optional

import "fmt"

// Option is a data type that either holds a value of type T (Some) or
// nothing (None).
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option that holds v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

// None returns an Option that holds nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsNone reports whether the Option holds nothing.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// Unwrap returns the held value; it returns the zero value of T if the
// Option is None.
func (o Option[T]) Unwrap() T {
	if o.IsNone() {
		var zero T
		return zero
	}
	return o.value
}

// Take returns the held value and whether it was present.
func (o Option[T]) Take() (T, bool) {
	if o.IsNone() {
		var zero T
		return zero, false
	}
	return o.value, true
}

// TakeOr returns the held value, or fallbackValue if the Option is None.
func (o Option[T]) TakeOr(fallbackValue T) T {
	if o.IsNone() {
		return fallbackValue
	}
	return o.value
}

// TakeOrElse returns the held value, or the result of fallbackFunc if the
// Option is None.
func (o Option[T]) TakeOrElse(fallbackFunc func() T) T {
	if o.IsNone() {
		return fallbackFunc()
	}
	return o.value
}

// Filter keeps the held value only if predicate returns true for it.
func (o Option[T]) Filter(predicate func(v T) bool) Option[T] {
	if o.IsNone() || !predicate(o.value) {
		return None[T]()
	}
	return o
}

// IfSome calls f with the held value if the Option holds one.
func (o Option[T]) IfSome(f func(v T)) {
	if o.IsNone() {
		return
	}
	f(o.value)
}

// IfSomeWithError calls f with the held value if the Option holds one and
// returns f's error.
func (o Option[T]) IfSomeWithError(f func(v T) error) error {
	if o.IsNone() {
		return nil
	}
	return f(o.value)
}

// IfNone calls f if the Option holds nothing.
func (o Option[T]) IfNone(f func()) {
	if o.IsSome() {
		return
	}
	f()
}

// IfNoneWithError calls f if the Option holds nothing and returns f's error.
func (o Option[T]) IfNoneWithError(f func() error) error {
	if o.IsSome() {
		return nil
	}
	return f()
}

func (o Option[T]) String() string {
	if o.IsNone() {
		return "None[]"
	}
	v := o.value
	if stringer, ok := interface{}(v).(fmt.Stringer); ok {
		return fmt.Sprintf("Some[%s]", stringer)
	}
	return fmt.Sprintf("Some[%v]", v)
}

// Map converts the held value with mapper.
func Map[T, U any](option Option[T], mapper func(v T) U) Option[U] {
	if option.IsNone() {
		return None[U]()
	}
	return Some(mapper(option.value))
}

// MapOr converts the held value with mapper, or returns fallbackValue for
// None.
func MapOr[T, U any](option Option[T], fallbackValue U, mapper func(v T) U) U {
	if option.IsNone() {
		return fallbackValue
	}
	return mapper(option.value)
}

// MapWithError is Map for a mapper that can fail.
func MapWithError[T, U any](option Option[T], mapper func(v T) (U, error)) (Option[U], error) {
	if option.IsNone() {
		return None[U](), nil
	}
	u, err := mapper(option.value)
	if err != nil {
		return None[U](), err
	}
	return Some(u), nil
}

// MapOrWithError is MapOr for a mapper that can fail.
func MapOrWithError[T, U any](option Option[T], fallbackValue U, mapper func(v T) (U, error)) (U, error) {
	if option.IsNone() {
		return fallbackValue, nil
	}
	return mapper(option.value)
}

// FlatMap converts the held value with a mapper that itself returns an
// Option.
func FlatMap[T, U any](option Option[T], mapper func(v T) Option[U]) Option[U] {
	if option.IsNone() {
		return None[U]()
	}
	return mapper(option.value)
}

// FlatMapOr is FlatMap with a fallback value for None.
func FlatMapOr[T, U any](option Option[T], fallbackValue U, mapper func(v T) Option[U]) U {
	if option.IsNone() {
		return fallbackValue
	}
	return mapper(option.value).TakeOr(fallbackValue)
}

// FlatMapWithError is FlatMap for a mapper that can fail.
func FlatMapWithError[T, U any](option Option[T], mapper func(v T) (Option[U], error)) (Option[U], error) {
	if option.IsNone() {
		return None[U](), nil
	}
	mapped, err := mapper(option.value)
	if err != nil {
		return None[U](), err
	}
	return mapped, nil
}

// FlatMapOrWithError is FlatMapOr for a mapper that can fail.
func FlatMapOrWithError[T, U any](option Option[T], fallbackValue U, mapper func(v T) (Option[U], error)) (U, error) {
	if option.IsNone() {
		return fallbackValue, nil
	}
	mapped, err := mapper(option.value)
	if err != nil {
		var zero U
		return zero, err
	}
	return mapped.TakeOr(fallbackValue), nil
}

// Pair is a pair of values.
type Pair[T, U any] struct {
	Value1 T
	Value2 U
}

// Zip zips two Options into an Option of a Pair.
func Zip[T, U any](opt1 Option[T], opt2 Option[U]) Option[Pair[T, U]] {
	if opt1.IsSome() && opt2.IsSome() {
		return Some(Pair[T, U]{
			Value1: opt1.value,
			Value2: opt2.value,
		})
	}
	return None[Pair[T, U]]()
}

// ZipWith zips two Options with a custom zipper.
func ZipWith[T, U, V any](opt1 Option[T], opt2 Option[U], zipper func(opt1 T, opt2 U) V) Option[V] {
	if opt1.IsSome() && opt2.IsSome() {
		return Some(zipper(opt1.value, opt2.value))
	}
	return None[V]()
}

// Unzip splits an Option of a Pair into two Options.
func Unzip[T, U any](zipped Option[Pair[T, U]]) (Option[T], Option[U]) {
	if zipped.IsNone() {
		return None[T](), None[U]()
	}
	pair := zipped.value
	return Some(pair.Value1), Some(pair.Value2)
}

// UnzipWith splits an Option with a custom unzipper.
func UnzipWith[T, U, V any](zipped Option[V], unzipper func(zipped V) (T, U)) (Option[T], Option[U]) {
	if zipped.IsNone() {
		return None[T](), None[U]()
	}
	v1, v2 := unzipper(zipped.value)
	return Some(v1), Some(v2)
}
