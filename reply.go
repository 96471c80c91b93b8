package slottable

import (
	"maps"
	"slices"

	"github.com/a-h/templ"
)

// Reply is returned from click listeners to control the response sent back
// to the browser. Builder methods never write into the receiver's slices or
// headers, so a shared Reply value is safe to extend from many goroutines.
//
// Clicks are notifications, so the default response is empty (204). A
// listener can still attach flashes, events, a redirect or content:
//
//	// Acknowledge silently
//	return slottable.OK()
//
//	// Toast notification
//	return slottable.OK().Flash(slottable.FlashInfo, "Selected "+e.Row.Name)
//
//	// Navigate via HX-Redirect
//	return slottable.RedirectTo("/employees/" + e.Row.ID)
//
//	// Swap a detail panel (pair with Table.Target)
//	return slottable.OK().Render(employeeDetail(e.Row))
type Reply struct {
	err      error
	redirect string
	flashes  []Flash
	triggers []Trigger
	content  templ.Component
	headers  map[string]string
	status   int
}

// Trigger is one event broadcast through the HX-Trigger header.
type Trigger struct {
	Name string
	Data map[string]any
}

// OK creates an empty success reply.
func OK() Reply {
	return Reply{}
}

// Fail creates a reply that hands err to the registry's OnError handler.
func Fail(err error) Reply {
	return Reply{err: err}
}

// RedirectTo creates a reply that redirects via the HX-Redirect header.
func RedirectTo(url string) Reply {
	return Reply{redirect: url}
}

// Flash adds a flash message (toast notification) to the reply.
func (r Reply) Flash(level, message string) Reply {
	r.flashes = append(slices.Clip(r.flashes), Flash{Level: level, Message: message})
	return r
}

// Trigger broadcasts an additional event via HX-Trigger. Listeners receive
// data as evt.detail.
func (r Reply) Trigger(event string, data ...map[string]any) Reply {
	t := Trigger{Name: event}
	if len(data) > 0 {
		t.Data = data[0]
	}
	r.triggers = append(slices.Clip(r.triggers), t)
	return r
}

// Render sets the response body. Where it lands is decided by the table's
// Target and Swap settings.
func (r Reply) Render(c templ.Component) Reply {
	r.content = c
	return r
}

// Header sets a custom response header.
func (r Reply) Header(key, value string) Reply {
	headers := make(map[string]string, len(r.headers)+1)
	maps.Copy(headers, r.headers)
	headers[key] = value
	r.headers = headers
	return r
}

// Status sets the HTTP status code.
func (r Reply) Status(code int) Reply {
	r.status = code
	return r
}

// Merge combines two replies produced by one click (a cell click also
// notifies row listeners). The first error wins and stops the merge; flashes,
// triggers and headers accumulate; later redirects, content and status
// override earlier ones.
func (r Reply) Merge(other Reply) Reply {
	if r.err != nil {
		return r
	}
	if other.err != nil {
		r.err = other.err
		return r
	}
	r.flashes = append(slices.Clip(r.flashes), other.flashes...)
	r.triggers = append(slices.Clip(r.triggers), other.triggers...)
	if len(other.headers) > 0 {
		headers := maps.Clone(r.headers)
		if headers == nil {
			headers = make(map[string]string, len(other.headers))
		}
		maps.Copy(headers, other.headers)
		r.headers = headers
	}
	if other.redirect != "" {
		r.redirect = other.redirect
	}
	if other.content != nil {
		r.content = other.content
	}
	if other.status != 0 {
		r.status = other.status
	}
	return r
}

// Err returns the reply error.
func (r Reply) Err() error {
	return r.err
}

// Redirect returns the redirect URL.
func (r Reply) Redirect() string {
	return r.redirect
}

// Flashes returns the flash messages.
func (r Reply) Flashes() []Flash {
	return r.flashes
}

// Triggers returns the events broadcast by listeners.
func (r Reply) Triggers() []Trigger {
	return r.triggers
}

// Content returns the response body component, if any.
func (r Reply) Content() templ.Component {
	return r.content
}

// Headers returns the response headers.
func (r Reply) Headers() map[string]string {
	return r.headers
}

// StatusCode returns the HTTP status code (0 means not set).
func (r Reply) StatusCode() int {
	return r.status
}
