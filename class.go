package slottable

import (
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Fixed class names written by the renderer.
const (
	ClassStriped      = "slot-table-striped"
	ClassHoverable    = "slot-table-hoverable"
	ClassBordered     = "slot-table-bordered"
	ClassStickyHeader = "slot-table-sticky-header"
	ClassCaption      = "slot-table-caption"
	ClassEmpty        = "slot-table-empty"
	ClassLoading      = "slot-table-loading"
)

func stickyClass(s Sticky) string {
	switch s {
	case StickyLeft:
		return "sticky-left"
	case StickyRight:
		return "sticky-right"
	}
	return ""
}

func alignClass(a Align) string {
	switch a {
	case AlignLeft:
		return "align-left"
	case AlignCenter:
		return "align-center"
	case AlignRight:
		return "align-right"
	}
	return ""
}

// resolveClass flattens a static class spec into class names.
//
// Supported shapes are string (whitespace separated), []string,
// map[string]bool (true keys, sorted) and templ.KeyValue[string, bool].
// Anything else yields no classes.
func resolveClass(spec any) []string {
	switch v := spec.(type) {
	case nil:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		var out []string
		for _, s := range v {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, on := range v {
			if on {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			out = append(out, strings.Fields(k)...)
		}
		return out
	case templ.KeyValue[string, bool]:
		if v.Value {
			return strings.Fields(v.Key)
		}
		return nil
	}
	return nil
}

// resolveRowClass resolves a rowClass spec, invoking it first when it is a
// per-row function.
func resolveRowClass[R any](spec any, row R, index int) []string {
	switch fn := spec.(type) {
	case func(R, int) string:
		return resolveClass(fn(row, index))
	case func(R, int) map[string]bool:
		return resolveClass(fn(row, index))
	case func(R, int) any:
		return resolveClass(fn(row, index))
	}
	return resolveClass(spec)
}

// classList accumulates class names, dropping empties and duplicates.
type classList struct {
	names []string
}

func (l *classList) add(names ...string) {
	for _, n := range names {
		if n == "" || l.has(n) {
			continue
		}
		l.names = append(l.names, n)
	}
}

func (l *classList) has(name string) bool {
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

func (l *classList) String() string {
	return strings.Join(l.names, " ")
}

// sizeStyle builds the inline style for a header cell.
func sizeStyle(width, minWidth string) string {
	var parts []string
	if width != "" {
		parts = append(parts, "width: "+width)
	}
	if minWidth != "" {
		parts = append(parts, "min-width: "+minWidth)
	}
	return strings.Join(parts, "; ")
}
