package core

import (
	"sync"

	"github.com/go-drift/bloc/pkg/errors"
)

// ErrorWidgetBuilder creates a fallback widget when a widget build fails.
// The builder receives the build error and should return a widget to show
// in place of the failed subtree; returning nil falls through to the
// minimal built-in placeholder.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var (
	errorWidgetBuilder ErrorWidgetBuilder = DefaultErrorWidgetBuilder
	errorBuilderMu     sync.RWMutex
)

// SetErrorWidgetBuilder configures the global error widget builder.
// Pass nil to restore the default builder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	if builder == nil {
		errorWidgetBuilder = DefaultErrorWidgetBuilder
	} else {
		errorWidgetBuilder = builder
	}
}

// GetErrorWidgetBuilder returns the current error widget builder.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorWidgetBuilder
}

// DefaultErrorWidgetBuilder returns nil, selecting the built-in
// errorPlaceholder. Host toolkits register a visible error surface here.
func DefaultErrorWidgetBuilder(err *errors.BuildError) Widget {
	return nil
}

// errorPlaceholder is the minimal fallback widget mounted when a build
// fails and no error widget builder produced a replacement. It renders
// nothing; the error has already been reported.
type errorPlaceholder struct {
	StatelessBase
	err *errors.BuildError
}

func (p errorPlaceholder) Build(ctx BuildContext) Widget {
	return nil
}
