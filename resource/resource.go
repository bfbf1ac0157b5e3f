// Package resource wraps the outcome of an asynchronous fetch.
package resource

import (
	"github.com/pokedex-cli/pokedex/constant"
	"github.com/samber/mo"
)

// Status is the variant of a Resource.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// Resource is Loading, Success(data) or Error(message).
type Resource[T any] struct {
	status  Status
	data    mo.Option[T]
	message string
	err     error
}

// Loading returns a resource that has not resolved yet.
func Loading[T any]() Resource[T] {
	return Resource[T]{status: StatusLoading, data: mo.None[T]()}
}

// Success wraps fetched data.
func Success[T any](data T) Resource[T] {
	return Resource[T]{status: StatusSuccess, data: mo.Some(data)}
}

// Error wraps a failure. The user only ever sees constant.UnknownError; err is kept for logs.
func Error[T any](err error) Resource[T] {
	return Resource[T]{status: StatusError, data: mo.None[T](), message: constant.UnknownError, err: err}
}

func (r Resource[T]) Status() Status  { return r.status }
func (r Resource[T]) IsLoading() bool { return r.status == StatusLoading }
func (r Resource[T]) IsSuccess() bool { return r.status == StatusSuccess }
func (r Resource[T]) IsError() bool   { return r.status == StatusError }

// Data is present only for Success.
func (r Resource[T]) Data() mo.Option[T] {
	return r.data
}

// Message is the user-facing error text, empty unless IsError.
func (r Resource[T]) Message() string {
	return r.message
}

// Err is the underlying cause of an Error resource.
func (r Resource[T]) Err() error {
	return r.err
}

// Result converts the resource into a mo.Result. Loading converts to an error result.
func (r Resource[T]) Result() mo.Result[T] {
	if v, ok := r.data.Get(); ok {
		return mo.Ok(v)
	}
	if r.err != nil {
		return mo.Err[T](r.err)
	}
	return mo.Err[T](errNotResolved)
}
