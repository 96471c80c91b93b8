package slottable

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResolveClass(t *testing.T) {
	tests := []struct {
		name string
		spec any
		want []string
	}{
		{"nil", nil, nil},
		{"empty string", "", nil},
		{"single", "highlight", []string{"highlight"}},
		{"space separated", " a  b ", []string{"a", "b"}},
		{"slice", []string{"a", "b c"}, []string{"a", "b", "c"}},
		{"flag map", map[string]bool{"highlight": true, "dimmed": false, "alpha": true}, []string{"alpha", "highlight"}},
		{"key value on", templ.KV("active", true), []string{"active"}},
		{"key value off", templ.KV("active", false), nil},
		{"int", 42, nil},
		{"struct", struct{}{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, resolveClass(tt.spec), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("resolveClass() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveRowClass(t *testing.T) {
	row := person{Name: "Bob", Age: 34}

	tests := []struct {
		name string
		spec any
		want []string
	}{
		{"static", "row", []string{"row"}},
		{"string func", func(p person, i int) string { return p.Name }, []string{"Bob"}},
		{"map func", func(p person, i int) map[string]bool {
			return map[string]bool{"odd": i%2 == 1, "even": i%2 == 0}
		}, []string{"odd"}},
		{"any func", func(p person, i int) any { return []string{"x", "y"} }, []string{"x", "y"}},
		{"func for other row type", func(s string, i int) string { return "nope" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRowClass[person](tt.spec, row, 1)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("resolveRowClass() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassList(t *testing.T) {
	var l classList
	l.add("a", "", "b")
	l.add("a", "c")
	if got := l.String(); got != "a b c" {
		t.Errorf("String() = %q, want %q", got, "a b c")
	}

	var empty classList
	if got := empty.String(); got != "" {
		t.Errorf("empty String() = %q", got)
	}
}

func TestStickyAndAlignClasses(t *testing.T) {
	stickies := map[Sticky]string{
		StickyNone:  "",
		StickyLeft:  "sticky-left",
		StickyRight: "sticky-right",
		"middle":    "",
	}
	for s, want := range stickies {
		if got := stickyClass(s); got != want {
			t.Errorf("stickyClass(%q) = %q, want %q", s, got, want)
		}
	}

	aligns := map[Align]string{
		AlignDefault: "",
		AlignLeft:    "align-left",
		AlignCenter:  "align-center",
		AlignRight:   "align-right",
		"justify":    "",
	}
	for a, want := range aligns {
		if got := alignClass(a); got != want {
			t.Errorf("alignClass(%q) = %q, want %q", a, got, want)
		}
	}
}

func TestSizeStyle(t *testing.T) {
	tests := []struct {
		width, minWidth, want string
	}{
		{"", "", ""},
		{"100px", "", "width: 100px"},
		{"", "200px", "min-width: 200px"},
		{"10%", "4ch", "width: 10%; min-width: 4ch"},
	}
	for _, tt := range tests {
		if got := sizeStyle(tt.width, tt.minWidth); got != tt.want {
			t.Errorf("sizeStyle(%q, %q) = %q, want %q", tt.width, tt.minWidth, got, tt.want)
		}
	}
}

func TestKeyField(t *testing.T) {
	t.Run("struct field", func(t *testing.T) {
		key := KeyField[person]("Name")
		if got := key(person{Name: "Alice"}, 3); got != "Alice" {
			t.Errorf("key = %q", got)
		}
	})

	t.Run("pointer", func(t *testing.T) {
		key := KeyField[*person]("ID")
		if got := key(&person{ID: 7}, 0); got != "7" {
			t.Errorf("key = %q", got)
		}
		if got := key(nil, 4); got != "4" {
			t.Errorf("nil row key = %q, want index", got)
		}
	})

	t.Run("map", func(t *testing.T) {
		key := KeyField[map[string]any]("id")
		if got := key(map[string]any{"id": "e-1"}, 0); got != "e-1" {
			t.Errorf("key = %q", got)
		}
		if got := key(map[string]any{}, 2); got != "2" {
			t.Errorf("missing key = %q, want index", got)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		key := KeyField[person]("Email")
		if got := key(person{}, 5); got != "5" {
			t.Errorf("key = %q, want index", got)
		}
	})
}
