package slottable

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// WriteHTML writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    slottable.WriteHTML(w, r, employees.Render(r.Context(), props))
//	}
func WriteHTML(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// TriggerID returns the id attribute of the element that triggered the request.
//
// Returns empty string if not present.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id attribute of the target element.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//  1. A single event without data: "row-click" -> "row-click"
//  2. Anything else: {"cell-click": {...}, "row-click": {...}}
//
// Events without data map to true in the JSON form. When the same event name
// appears twice the later data wins.
func BuildTriggerHeader(triggers []Trigger) string {
	if len(triggers) == 0 {
		return ""
	}
	if len(triggers) == 1 && triggers[0].Data == nil {
		return triggers[0].Name
	}

	merged := make(map[string]any, len(triggers))
	for _, t := range triggers {
		if t.Data != nil {
			merged[t.Name] = t.Data
		} else {
			merged[t.Name] = true
		}
	}

	data, _ := json.Marshal(merged)
	return string(data)
}
