package slottable

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// DefaultBasePath is the path tables are served below unless WithBasePath
// says otherwise.
const DefaultBasePath = "/_t/"

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithMetrics registers event counters on reg.
func WithMetrics(reg prometheus.Registerer) RegistryOption {
	return func(r *Registry) {
		r.metrics = newMetrics(reg)
	}
}

// WithBasePath serves tables below path instead of DefaultBasePath. The path
// is the full request path, including any prefix added by a router group.
func WithBasePath(path string) RegistryOption {
	return func(r *Registry) {
		if !strings.HasSuffix(path, "/") {
			path += "/"
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		r.basePath = path
	}
}

// WithLogger logs dispatch failures to logger.
func WithLogger(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry routes click requests to registered tables.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	basePath   string
	encoder    *Encoder
	components map[string]HXComponent // map[prefix]component
	metrics    *metrics
	logger     logrus.FieldLogger

	// OnError is called when a click request fails, either because the
	// payload could not be decoded or because a listener replied with Fail.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry whose tables sign or encrypt click
// payloads with key.
func NewRegistry(key []byte, opts ...RegistryOption) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("slottable: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		basePath:   DefaultBasePath,
		encoder:    enc,
		components: make(map[string]HXComponent),
	}
	for _, opt := range opts {
		opt(reg)
	}

	reg.OnError = defaultOnError
	return reg
}

func defaultOnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, ErrMethodNotAllowed):
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	case IsBadRequest(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers tables with the registry.
// Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		if a, ok := comp.(attachable); ok {
			a.attach(reg)
		}
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("slottable: prefix collision for %q", prefix))
		}
		reg.components[prefix] = comp

		c := comp
		reg.mux.HandleFunc(prefix+"/", func(w http.ResponseWriter, r *http.Request) {
			c.HXServeHTTP(w, r)
		})
	}
}

// Get returns the component registered under prefix.
func (reg *Registry) Get(prefix string) (HXComponent, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	c, ok := reg.components[prefix]
	return c, ok
}

// BasePath returns the path tables are served below.
func (reg *Registry) BasePath() string {
	return reg.basePath
}

// Handler returns the HTTP handler for table routes.
// Mount this at BasePath in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsHTMX(r) {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mu.RLock()
		mux := reg.mux
		reg.mu.RUnlock()

		if _, pattern := mux.Handler(r); pattern == "" {
			reg.handleError(w, r, ErrNotFound)
			return
		}
		mux.ServeHTTP(w, r)
	})
}

// observe records the outcome of one emitted notification. Safe on a nil
// registry (tables used without one).
func (reg *Registry) observe(table string, kind EventKind, err error) {
	if reg == nil {
		return
	}
	reg.metrics.observe(table, kind, err)
	if err != nil && reg.logger != nil {
		reg.logger.WithFields(logrus.Fields{
			"table": table,
			"event": string(kind),
		}).WithError(err).Warn("table event failed")
	}
}

func (reg *Registry) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if reg == nil || reg.OnError == nil {
		defaultOnError(w, r, err)
		return
	}
	reg.OnError(w, r, err)
}
