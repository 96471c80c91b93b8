package slottable

import (
	"context"
	"fmt"
	"reflect"

	"github.com/a-h/templ"
)

// KeyFunc derives the identity of a row. The key is written to the row's
// data-key attribute for client-side reconciliation (hx-swap morphing,
// idiomorph); it carries no other meaning.
type KeyFunc[R any] func(row R, index int) string

// RowSource returns the rows a table currently shows. Click requests look the
// clicked row up in it.
type RowSource[R any] func(ctx context.Context) ([]R, error)

// KeyField returns a KeyFunc reading the named struct field or map key.
// Rows without the field fall back to their index.
func KeyField[R any](name string) KeyFunc[R] {
	return func(row R, index int) string {
		v := reflect.ValueOf(row)
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return fmt.Sprint(index)
			}
			v = v.Elem()
		}
		switch v.Kind() {
		case reflect.Struct:
			if f := v.FieldByName(name); f.IsValid() && f.CanInterface() {
				return fmt.Sprint(f.Interface())
			}
		case reflect.Map:
			if v.Type().Key().Kind() == reflect.String {
				if f := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())); f.IsValid() {
					return fmt.Sprint(f.Interface())
				}
			}
		}
		return fmt.Sprint(index)
	}
}

// Options are the table-level display options. None of them change row or
// column data; they only affect classes and attributes.
type Options[R any] struct {
	// TableClass is appended to the table element's class list.
	TableClass string

	// RowKey derives the data-key attribute of body rows.
	RowKey KeyFunc[R]

	// RowClass is a class spec for body rows: any static shape accepted by
	// Column.TdClass, or func(R, int) string, func(R, int) map[string]bool,
	// func(R, int) any.
	RowClass any

	Striped      bool
	Hoverable    bool
	Bordered     bool
	StickyHeader bool

	// Loading replaces the body with a single loading placeholder row.
	// It takes precedence over the empty state.
	Loading bool

	Caption string

	// EmptyContent fills the placeholder cell when there are no rows.
	EmptyContent templ.Component

	// LoadingContent fills the placeholder cell while Loading is set.
	LoadingContent templ.Component
}
