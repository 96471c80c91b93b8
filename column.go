package slottable

import "github.com/a-h/templ"

// Sticky pins a column or column group to one edge of a horizontally
// scrolling table. Pinning is purely a class on the rendered cells.
type Sticky string

const (
	StickyNone  Sticky = ""
	StickyLeft  Sticky = "left"
	StickyRight Sticky = "right"
)

// Align controls horizontal alignment of header, body and footer cells.
type Align string

const (
	AlignDefault Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
)

// CellScope is passed to a column's cell function once per rendered cell.
//
// ColumnIndex is the column's index among the columns visible in this render,
// not its declaration position.
type CellScope[R any] struct {
	Row         R
	RowIndex    int
	ColumnIndex int
}

// CellFunc produces the content of one body cell.
type CellFunc[R any] func(scope CellScope[R]) templ.Component

// Column declares one table column. Build it with NewColumn and the fluent
// setters, then pass it to BuildModel or Props.Columns:
//
//	slottable.NewColumn[Employee]().
//	    HeaderText("Name").
//	    Cell(func(s slottable.CellScope[Employee]) templ.Component {
//	        return slottable.Text(s.Row.Name)
//	    }).
//	    Sticky(slottable.StickyLeft).
//	    Width("160px")
type Column[R any] struct {
	sticky   Sticky
	align    Align
	width    string
	minWidth string
	visible  bool
	tdClass  any
	thClass  any
	header   templ.Component
	cell     CellFunc[R]
	footer   templ.Component
}

// NewColumn creates a visible column with no content.
func NewColumn[R any]() *Column[R] {
	return &Column[R]{visible: true}
}

// Sticky pins the column's header, body and footer cells.
func (c *Column[R]) Sticky(s Sticky) *Column[R] {
	c.sticky = s
	return c
}

// Align sets the alignment class of every cell in the column.
func (c *Column[R]) Align(a Align) *Column[R] {
	c.align = a
	return c
}

// Width sets the inline width of the header cell. The value is passed
// through to CSS unmodified ("120px", "10%", "12ch").
func (c *Column[R]) Width(w string) *Column[R] {
	c.width = w
	return c
}

// MinWidth sets the inline min-width of the header cell.
func (c *Column[R]) MinWidth(w string) *Column[R] {
	c.minWidth = w
	return c
}

// Visible toggles the column. Hidden columns render no header, body or
// footer cells but keep their declaration position.
func (c *Column[R]) Visible(v bool) *Column[R] {
	c.visible = v
	return c
}

// TdClass sets extra classes for body cells. Accepts a string, []string,
// map[string]bool or templ.KeyValue[string, bool].
func (c *Column[R]) TdClass(spec any) *Column[R] {
	c.tdClass = spec
	return c
}

// ThClass sets extra classes for the column header cell. Same shapes as TdClass.
func (c *Column[R]) ThClass(spec any) *Column[R] {
	c.thClass = spec
	return c
}

// Header sets the header cell content.
func (c *Column[R]) Header(content templ.Component) *Column[R] {
	c.header = content
	return c
}

// HeaderText sets plain-text header content.
func (c *Column[R]) HeaderText(s string) *Column[R] {
	return c.Header(Text(s))
}

// Cell sets the function rendering each body cell.
func (c *Column[R]) Cell(fn CellFunc[R]) *Column[R] {
	c.cell = fn
	return c
}

// Footer sets the footer cell content. A footer row is rendered as soon as
// one visible column has footer content.
func (c *Column[R]) Footer(content templ.Component) *Column[R] {
	c.footer = content
	return c
}

// FooterText sets plain-text footer content.
func (c *Column[R]) FooterText(s string) *Column[R] {
	return c.Footer(Text(s))
}

// ColumnGroup declares one cell of the optional group header row rendered
// above the column headers.
type ColumnGroup struct {
	sticky  Sticky
	colspan int
	label   templ.Component
}

// NewColumnGroup creates a group spanning a single column.
func NewColumnGroup(label templ.Component) *ColumnGroup {
	return &ColumnGroup{colspan: 1, label: label}
}

// NewColumnGroupText creates a group with a plain-text label.
func NewColumnGroupText(label string) *ColumnGroup {
	return NewColumnGroup(Text(label))
}

// Sticky pins the group header cell.
func (g *ColumnGroup) Sticky(s Sticky) *ColumnGroup {
	g.sticky = s
	return g
}

// Colspan sets how many columns the group spans. The span is rendered as
// declared; it is not adjusted when columns are hidden.
func (g *ColumnGroup) Colspan(n int) *ColumnGroup {
	g.colspan = n
	return g
}
