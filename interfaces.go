package slottable

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Renderer is implemented by components that produce templ output from
// props. Table[R] implements Renderer[Props[R]].
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// HXComponent is implemented by anything the Registry can route click
// requests to.
//
// HXPrefix returns the unique URL prefix for the instance.
// HXServeHTTP handles every request below that prefix.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// attachable is implemented by components that need the registry's
// encoder, error handler and instrumentation.
type attachable interface {
	attach(reg *Registry)
}

var (
	_ HXComponent          = (*Table[any])(nil)
	_ Renderer[Props[any]] = (*Table[any])(nil)
	_ attachable           = (*Table[any])(nil)
)
