package slottable

import "github.com/a-h/templ"

// ColumnDef is the resolved definition of one declared column.
type ColumnDef[R any] struct {
	// Position is the index among declared columns, assigned before
	// visibility filtering.
	Position int
	Sticky   Sticky
	Align    Align
	Width    string
	MinWidth string
	Visible  bool
	TdClass  any
	ThClass  any
	Header   templ.Component
	Cell     CellFunc[R]
	Footer   templ.Component
}

// GroupDef is the resolved definition of one declared column group.
type GroupDef struct {
	Sticky  Sticky
	Colspan int
	Label   templ.Component
}

// Model is the column model of a single render pass.
type Model[R any] struct {
	Columns []ColumnDef[R]
	Groups  []GroupDef
}

// BuildModel partitions declared children into column groups and columns,
// keeping declaration order within each kind.
//
// Children that are neither *Column[R] nor *ColumnGroup are skipped, which
// includes nil values and columns declared for a different row type.
func BuildModel[R any](children ...any) Model[R] {
	var m Model[R]
	for _, child := range children {
		switch c := child.(type) {
		case *Column[R]:
			if c == nil {
				continue
			}
			m.Columns = append(m.Columns, ColumnDef[R]{
				Position: len(m.Columns),
				Sticky:   c.sticky,
				Align:    c.align,
				Width:    c.width,
				MinWidth: c.minWidth,
				Visible:  c.visible,
				TdClass:  c.tdClass,
				ThClass:  c.thClass,
				Header:   c.header,
				Cell:     c.cell,
				Footer:   c.footer,
			})
		case *ColumnGroup:
			if c == nil {
				continue
			}
			colspan := c.colspan
			if colspan < 1 {
				colspan = 1
			}
			m.Groups = append(m.Groups, GroupDef{
				Sticky:  c.sticky,
				Colspan: colspan,
				Label:   c.label,
			})
		}
	}
	return m
}

// Visible returns the visible columns in position order.
func (m Model[R]) Visible() []ColumnDef[R] {
	visible := make([]ColumnDef[R], 0, len(m.Columns))
	for _, col := range m.Columns {
		if col.Visible {
			visible = append(visible, col)
		}
	}
	return visible
}

// Declared returns the number of declared columns, hidden ones included.
func (m Model[R]) Declared() int {
	return len(m.Columns)
}

// HasFooter reports whether any visible column declares footer content.
func (m Model[R]) HasFooter() bool {
	for _, col := range m.Columns {
		if col.Visible && col.Footer != nil {
			return true
		}
	}
	return false
}
