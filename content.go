package slottable

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Text renders fmt.Sprint(v), HTML-escaped.
//
//	slottable.Text(s.Row.Age) // "28"
func Text(v any) templ.Component {
	s := fmt.Sprint(v)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Textf renders a formatted, HTML-escaped string.
func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Raw renders trusted markup without escaping.
func Raw(html string) templ.Component {
	return templ.Raw(html)
}

// renderContent renders c when present. A nil component renders nothing.
func renderContent(ctx context.Context, w io.Writer, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, w)
}
