// Package slottableecho provides Echo framework integration for slottable
// tables.
//
// Mount the click handler onto an Echo instance or group:
//
//	e := echo.New()
//	reg := slottableecho.Mount(e)
//	reg.Add(employees)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := slottableecho.MountGroup(g)
//	reg.Add(employees)
//
// Tables added to the returned registry post their clicks below the mounted
// path, group prefix included.
package slottableecho

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/slottable"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key     []byte
	path    string
	regOpts []slottable.RegistryOption
}

// WithKey sets the payload key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path tables are served below, relative to the
// instance or group. Defaults to slottable.DefaultBasePath.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithRegistryOptions passes options such as slottable.WithMetrics or
// slottable.WithLogger to the created registry.
func WithRegistryOptions(opts ...slottable.RegistryOption) Option {
	return func(o *options) {
		o.regOpts = append(o.regOpts, opts...)
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
//
//	e := echo.New()
//	reg := slottableecho.Mount(e)
//	reg.Add(employees)
//
//	// With options:
//	reg := slottableecho.Mount(e, slottableecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *slottable.Registry {
	o := newOptions(opts)
	m := &mount{}
	routes := e.Any(o.path+"*", echo.WrapHandler(m))
	return m.init(o, routes)
}

// MountGroup creates a registry and mounts its handler on an Echo group.
// This allows tables to share middleware with the group (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	reg := slottableecho.MountGroup(g)
//	reg.Add(employees)
func MountGroup(g *echo.Group, opts ...Option) *slottable.Registry {
	o := newOptions(opts)
	m := &mount{}
	routes := g.Any(o.path+"*", echo.WrapHandler(m))
	return m.init(o, routes)
}

func newOptions(opts []Option) *options {
	o := &options{path: slottable.DefaultBasePath}
	for _, opt := range opts {
		opt(o)
	}
	if !strings.HasSuffix(o.path, "/") {
		o.path += "/"
	}
	if !strings.HasPrefix(o.path, "/") {
		o.path = "/" + o.path
	}
	return o
}

// mount forwards requests to the registry handler. Echo reports the full
// route path only after registration, so the registry is created afterwards.
type mount struct {
	handler http.Handler
}

func (m *mount) init(o *options, routes []*echo.Route) *slottable.Registry {
	base := o.path
	if len(routes) > 0 {
		base = strings.TrimSuffix(routes[0].Path, "*")
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("slottableecho: failed to generate random key: %v", err))
		}
	}

	regOpts := append([]slottable.RegistryOption{slottable.WithBasePath(base)}, o.regOpts...)
	reg := slottable.NewRegistry(key, regOpts...)
	m.handler = reg.Handler()
	return reg
}

func (m *mount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return slottableecho.Render(c, employees.Render(c.Request().Context(), props))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
