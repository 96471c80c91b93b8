package slottable

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// Render projects a column model against rows and produces the table markup.
//
// Render is pure: it reads m, rows and opts and writes HTML. Errors returned
// by caller-supplied content propagate out of the component's Render call.
// No click wiring is attached; use Table.Render for interactive tables.
//
//	m := slottable.BuildModel[Employee](nameCol, ageCol)
//	err := slottable.Render(m, employees, slottable.Options[Employee]{Striped: true}).Render(ctx, w)
func Render[R any](m Model[R], rows []R, opts Options[R]) templ.Component {
	return renderTable(m, rows, opts, nil)
}

// wiring attaches interaction attributes to clickable elements. A nil
// function leaves the element inert.
type wiring[R any] struct {
	table  func() templ.Attributes
	header func(columnIndex int) (templ.Attributes, error)
	row    func(rowIndex int, row R) (templ.Attributes, error)
	cell   func(rowIndex, columnIndex int, row R) (templ.Attributes, error)
}

func renderTable[R any](m Model[R], rows []R, opts Options[R], wire *wiring[R]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r := &tableRenderer[R]{
			ctx:     ctx,
			out:     &htmlWriter{w: w},
			model:   m,
			visible: m.Visible(),
			rows:    rows,
			opts:    opts,
			wire:    wire,
		}
		if wire == nil {
			r.wire = &wiring[R]{}
		}
		r.render()
		return r.out.err
	})
}

type tableRenderer[R any] struct {
	ctx     context.Context
	out     *htmlWriter
	model   Model[R]
	visible []ColumnDef[R]
	rows    []R
	opts    Options[R]
	wire    *wiring[R]
}

func (r *tableRenderer[R]) render() {
	var cls classList
	cls.add(resolveClass(r.opts.TableClass)...)
	if r.opts.Bordered {
		cls.add(ClassBordered)
	}

	attrs := []attr{{"class", cls.String()}}
	if r.wire.table != nil {
		attrs = append(attrs, sortedAttrs(r.wire.table())...)
	}
	r.out.open("table", attrs...)

	if r.opts.Caption != "" {
		r.out.open("caption", attr{"class", ClassCaption})
		r.out.text(r.opts.Caption)
		r.out.close("caption")
	}

	r.renderHead()
	r.renderBody()
	if r.model.HasFooter() {
		r.renderFoot()
	}

	r.out.close("table")
}

func (r *tableRenderer[R]) renderHead() {
	var headCls string
	if r.opts.StickyHeader {
		headCls = ClassStickyHeader
	}
	r.out.open("thead", attr{"class", headCls})

	if len(r.model.Groups) > 0 {
		r.out.open("tr")
		for _, g := range r.model.Groups {
			r.out.open("th",
				attr{"class", stickyClass(g.Sticky)},
				attr{"colspan", strconv.Itoa(g.Colspan)},
			)
			r.out.content(r.ctx, g.Label)
			r.out.close("th")
		}
		r.out.close("tr")
	}

	r.out.open("tr")
	for i, col := range r.visible {
		var cls classList
		cls.add(stickyClass(col.Sticky), alignClass(col.Align))
		cls.add(resolveClass(col.ThClass)...)

		attrs := []attr{
			{"class", cls.String()},
			{"style", sizeStyle(col.Width, col.MinWidth)},
		}
		attrs = r.wired(attrs, func() (templ.Attributes, error) {
			if r.wire.header == nil {
				return nil, nil
			}
			return r.wire.header(i)
		})

		r.out.open("th", attrs...)
		r.out.content(r.ctx, col.Header)
		r.out.close("th")
	}
	r.out.close("tr")

	r.out.close("thead")
}

func (r *tableRenderer[R]) renderBody() {
	r.out.open("tbody")
	switch {
	case r.opts.Loading:
		r.placeholder(ClassLoading, r.opts.LoadingContent)
	case len(r.rows) == 0:
		r.placeholder(ClassEmpty, r.opts.EmptyContent)
	default:
		for i, row := range r.rows {
			r.renderRow(i, row)
		}
	}
	r.out.close("tbody")
}

// placeholder writes the single loading or empty row spanning all visible
// columns.
func (r *tableRenderer[R]) placeholder(class string, content templ.Component) {
	span := len(r.visible)
	if span < 1 {
		span = 1
	}
	r.out.open("tr")
	r.out.open("td", attr{"class", class}, attr{"colspan", strconv.Itoa(span)})
	r.out.content(r.ctx, content)
	r.out.close("td")
	r.out.close("tr")
}

func (r *tableRenderer[R]) renderRow(rowIndex int, row R) {
	var cls classList
	if r.opts.Hoverable {
		cls.add(ClassHoverable)
	}
	if r.opts.Striped && rowIndex%2 == 1 {
		cls.add(ClassStriped)
	}
	cls.add(resolveRowClass(r.opts.RowClass, row, rowIndex)...)

	attrs := []attr{{"class", cls.String()}}
	if r.opts.RowKey != nil {
		attrs = append(attrs, attr{"data-key", r.opts.RowKey(row, rowIndex)})
	}
	attrs = r.wired(attrs, func() (templ.Attributes, error) {
		if r.wire.row == nil {
			return nil, nil
		}
		return r.wire.row(rowIndex, row)
	})
	r.out.open("tr", attrs...)

	for colIndex, col := range r.visible {
		var cellCls classList
		cellCls.add(stickyClass(col.Sticky), alignClass(col.Align))
		cellCls.add(resolveClass(col.TdClass)...)

		cellAttrs := r.wired([]attr{{"class", cellCls.String()}}, func() (templ.Attributes, error) {
			if r.wire.cell == nil {
				return nil, nil
			}
			return r.wire.cell(rowIndex, colIndex, row)
		})

		r.out.open("td", cellAttrs...)
		if col.Cell != nil && r.out.err == nil {
			r.out.content(r.ctx, col.Cell(CellScope[R]{
				Row:         row,
				RowIndex:    rowIndex,
				ColumnIndex: colIndex,
			}))
		}
		r.out.close("td")
	}

	r.out.close("tr")
}

func (r *tableRenderer[R]) renderFoot() {
	r.out.open("tfoot")
	r.out.open("tr")
	for _, col := range r.visible {
		var cls classList
		cls.add(stickyClass(col.Sticky), alignClass(col.Align))
		r.out.open("td", attr{"class", cls.String()})
		r.out.content(r.ctx, col.Footer)
		r.out.close("td")
	}
	r.out.close("tr")
	r.out.close("tfoot")
}

// wired appends the attributes produced by fn, recording its error.
func (r *tableRenderer[R]) wired(attrs []attr, fn func() (templ.Attributes, error)) []attr {
	if r.out.err != nil {
		return attrs
	}
	extra, err := fn()
	if err != nil {
		r.out.err = err
		return attrs
	}
	return append(attrs, sortedAttrs(extra)...)
}

type attr struct {
	name  string
	value string
}

// sortedAttrs flattens templ.Attributes in key order so output is stable.
func sortedAttrs(a templ.Attributes) []attr {
	if len(a) == 0 {
		return nil
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]attr, 0, len(keys))
	for _, k := range keys {
		switch v := a[k].(type) {
		case string:
			out = append(out, attr{k, v})
		case bool:
			if v {
				out = append(out, attr{k, k})
			}
		default:
			out = append(out, attr{k, fmt.Sprint(v)})
		}
	}
	return out
}

// htmlWriter writes markup and keeps the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) write(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// open writes a start tag. Attributes with empty values are omitted.
func (h *htmlWriter) open(tag string, attrs ...attr) {
	h.write("<" + tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		h.write(" " + a.name + `="` + templ.EscapeString(a.value) + `"`)
	}
	h.write(">")
}

func (h *htmlWriter) close(tag string) {
	h.write("</" + tag + ">")
}

func (h *htmlWriter) text(s string) {
	h.write(templ.EscapeString(s))
}

func (h *htmlWriter) content(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = renderContent(ctx, h.w, c)
}
