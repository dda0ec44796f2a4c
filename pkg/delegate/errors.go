// ABOUTME: Sentinel errors for delegate invocation and construction
// ABOUTME: Invocation of an unbound delegate and rejected bindings are typed, never silent

package delegate

import "errors"

var (
	// ErrUnbound is returned (or panicked with, by Call) when a delegate
	// with no target is invoked.
	ErrUnbound = errors.New("delegate: call through unbound delegate")

	// ErrNotInlinable is returned by Inline when the callable value does
	// not fit the inline buffer, is over-aligned, or holds pointers.
	ErrNotInlinable = errors.New("delegate: value cannot be stored inline")

	// ErrNotStateless is returned by Stateless when the zero value of the
	// callable type is nil and so cannot be called.
	ErrNotStateless = errors.New("delegate: zero value is not a usable callable")

	// ErrNilTarget is returned by the owning constructors for a nil object
	// or a nil method.
	ErrNilTarget = errors.New("delegate: nil target")

	// ErrNothingToOwn is returned by the owning constructors when the
	// object is zero-sized: a stateless callable has no lifetime to manage.
	ErrNothingToOwn = errors.New("delegate: stateless object cannot be owned")
)
