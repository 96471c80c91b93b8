package slottable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// TestResult holds the outcome of rendering a table or posting a click.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Flashes         []Flash
	RedirectURL     string
}

// TestRender renders a component with props and returns its HTML.
//
//	result, err := slottable.TestRender[slottable.Props[Employee]](table, props)
//	if !result.HTMLContains("slot-table-striped") { ... }
func TestRender[P any](comp Renderer[P], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext[P any](ctx context.Context, comp Renderer[P], props P) (*TestResult, error) {
	var buf bytes.Buffer
	if err := comp.Render(ctx, props).Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction sends a request to an HXComponent with the HX-Request header
// set, the way HTMX would.
func TestAction(comp HXComponent, actionURL, method string, formData map[string]string) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, actionURL, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	comp.HXServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	if redirect := rec.Header().Get("HX-Redirect"); redirect != "" {
		result.RedirectURL = redirect
	}
	result.Flashes = parseFlashesFromHTML(result.HTML)

	return result, nil
}

// TestClick replays a click from the hx-post and hx-vals attribute values
// of a rendered element.
//
//	result, err := slottable.TestClick(table, attr(td, "hx-post"), attr(td, "hx-vals"))
//	if !result.HasEvent("cell-click") { ... }
func TestClick(comp HXComponent, hxPost, hxVals string) (*TestResult, error) {
	vals := map[string]string{}
	if hxVals != "" {
		if err := json.Unmarshal([]byte(hxVals), &vals); err != nil {
			return nil, fmt.Errorf("slottable: parse hx-vals: %w", err)
		}
	}
	return TestAction(comp, hxPost, http.MethodPost, vals)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasEvent checks if an event with exactly this name was triggered.
func (r *TestResult) HasEvent(event string) bool {
	return r.EventCount(event) > 0
}

// EventCount returns how many times an event was triggered.
func (r *TestResult) EventCount(event string) int {
	n := 0
	for _, e := range r.TriggeredEvents {
		if e == event {
			n++
		}
	}
	return n
}

// HasFlash checks if a flash message was set with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// WasRedirected checks if the response was a redirect.
func (r *TestResult) WasRedirected() bool {
	return r.RedirectURL != ""
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// parseTriggerHeader parses the HX-Trigger header value into event names.
// The header can be a simple event name, a comma-separated list or JSON.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &obj); err != nil {
			return nil
		}
		events := make([]string, 0, len(obj))
		for name := range obj {
			events = append(events, name)
		}
		return events
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			events = append(events, p)
		}
	}
	return events
}

// parseFlashesFromHTML extracts flash messages from OOB swap HTML, undoing
// the escaping applied when they were rendered.
// Looks for patterns like: <div class="toast toast-success" ...>message</div>
func parseFlashesFromHTML(markup string) []Flash {
	var flashes []Flash

	const prefix = `<div class="toast toast-`
	idx := 0
	for {
		start := strings.Index(markup[idx:], prefix)
		if start == -1 {
			break
		}
		start += idx + len(prefix)

		levelEnd := strings.Index(markup[start:], `"`)
		if levelEnd == -1 {
			break
		}
		level := markup[start : start+levelEnd]

		tagEnd := strings.Index(markup[start:], ">")
		if tagEnd == -1 {
			break
		}
		contentStart := start + tagEnd + 1

		contentEnd := strings.Index(markup[contentStart:], "</div>")
		if contentEnd == -1 {
			break
		}
		message := markup[contentStart : contentStart+contentEnd]

		flashes = append(flashes, Flash{
			Level:   html.UnescapeString(level),
			Message: html.UnescapeString(message),
		})
		idx = contentStart + contentEnd
	}

	return flashes
}
