// Package textview prints a plain-text preview of a table.
//
// Header, cell and footer content is rendered to HTML first and reduced to
// its text, so the preview shows exactly what the HTML table would show.
// Column groups are not drawn; the sticky, width and class options have no
// text equivalent and are ignored.
package textview

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pthm/slottable"
)

// Write prints the table described by m, rows and opts to w.
func Write[R any](ctx context.Context, w io.Writer, m slottable.Model[R], rows []R, opts slottable.Options[R]) error {
	visible := m.Visible()

	if opts.Caption != "" {
		if _, err := fmt.Fprintln(w, opts.Caption); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	header := make([]string, len(visible))
	alignment := make([]int, len(visible))
	for i, col := range visible {
		text, err := Text(ctx, col.Header)
		if err != nil {
			return fmt.Errorf("textview: header %d: %w", i, err)
		}
		header[i] = text
		alignment[i] = columnAlignment(col.Align)
	}
	table.SetHeader(header)
	table.SetColumnAlignment(alignment)

	switch {
	case opts.Loading:
		if err := appendPlaceholder(ctx, table, len(visible), opts.LoadingContent); err != nil {
			return err
		}
	case len(rows) == 0:
		if err := appendPlaceholder(ctx, table, len(visible), opts.EmptyContent); err != nil {
			return err
		}
	default:
		for rowIndex, row := range rows {
			line := make([]string, len(visible))
			for colIndex, col := range visible {
				if col.Cell == nil {
					continue
				}
				text, err := Text(ctx, col.Cell(slottable.CellScope[R]{
					Row:         row,
					RowIndex:    rowIndex,
					ColumnIndex: colIndex,
				}))
				if err != nil {
					return fmt.Errorf("textview: row %d column %d: %w", rowIndex, colIndex, err)
				}
				line[colIndex] = text
			}
			table.Append(line)
		}
	}

	if m.HasFooter() {
		footer := make([]string, len(visible))
		for i, col := range visible {
			text, err := Text(ctx, col.Footer)
			if err != nil {
				return fmt.Errorf("textview: footer %d: %w", i, err)
			}
			footer[i] = text
		}
		table.SetFooter(footer)
	}

	table.Render()
	return nil
}

func appendPlaceholder(ctx context.Context, table *tablewriter.Table, columns int, content templ.Component) error {
	text, err := Text(ctx, content)
	if err != nil {
		return fmt.Errorf("textview: placeholder: %w", err)
	}
	if columns < 1 {
		columns = 1
	}
	line := make([]string, columns)
	line[0] = text
	table.Append(line)
	return nil
}

func columnAlignment(a slottable.Align) int {
	switch a {
	case slottable.AlignCenter:
		return tablewriter.ALIGN_CENTER
	case slottable.AlignRight:
		return tablewriter.ALIGN_RIGHT
	}
	return tablewriter.ALIGN_LEFT
}

// Text renders c and returns its visible text with whitespace collapsed.
// A nil component yields the empty string.
func Text(ctx context.Context, c templ.Component) (string, error) {
	if c == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(&buf, body)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return strings.Join(strings.Fields(sb.String()), " "), nil
}
