// Package errors provides structured error handling for the bloc binding layer.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindResolution indicates a failed bloc lookup through the element tree.
	KindResolution
	// KindBinding indicates a malformed stream binding.
	KindBinding
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindBinding:
		return "binding"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the bloc framework.
type Error struct {
	// Op is the operation that failed (e.g., "bloc.Of").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ResolutionError reports a bloc lookup that found no ancestor provider of
// the requested type and no explicit instance at the call site. It is fatal
// to the construction of the binding or provider that required the bloc.
type ResolutionError struct {
	// BlocType is the type name of the requested bloc.
	BlocType string
	// Op is the lookup operation (e.g., "bloc.Of").
	Op string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: no ancestor provider for %s and no explicit instance supplied", e.Op, e.BlocType)
}

// BindingError reports a binding that cannot be established, such as a
// selector returning a nil stream or a provider with no creation mode.
// It is fatal at bind time, never deferred to a later emission.
type BindingError struct {
	// Op is the operation that failed (e.g., "bloc.Builder").
	Op string
	// Reason describes what made the binding unusable.
	Reason string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.FlushBuild").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the bloc framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
