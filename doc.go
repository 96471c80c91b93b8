// Package slottable renders HTML tables from declared columns, using templ
// for output and HTMX for click notifications.
//
// Callers describe columns and column groups as values, and supply per-cell
// content as callbacks. The package builds a column model from those
// declarations, then projects it against a row collection to produce the
// caption, header, body and footer.
//
// # Declaring columns
//
//	name := slottable.NewColumn[Employee]().
//	    HeaderText("Name").
//	    Cell(func(s slottable.CellScope[Employee]) templ.Component {
//	        return slottable.Text(s.Row.Name)
//	    }).
//	    Sticky(slottable.StickyLeft)
//
//	age := slottable.NewColumn[Employee]().
//	    HeaderText("Age").
//	    Align(slottable.AlignRight).
//	    Cell(func(s slottable.CellScope[Employee]) templ.Component {
//	        return slottable.Text(s.Row.Age)
//	    })
//
//	people := slottable.NewColumnGroupText("People").Colspan(2)
//
// # Rendering
//
// Render is a pure function of the column model, the rows and the options:
//
//	m := slottable.BuildModel[Employee](people, name, age)
//	slottable.Render(m, employees, slottable.Options[Employee]{
//	    Striped:      true,
//	    EmptyContent: slottable.Text("No data available"),
//	})
//
// The body shows exactly one of three states: a loading placeholder when
// Options.Loading is set, an empty placeholder when there are no rows, or one
// row per element of rows. Hidden columns render no cells anywhere.
//
// # Click notifications
//
// A Table adds row-click, header-click and cell-click notifications. Clickable
// elements carry hx-post attributes with a signed payload; the Registry
// routes the request back to the table, which calls the listeners:
//
//	table := slottable.New[Employee]("employees").
//	    OnCellClick(func(ctx context.Context, e slottable.CellClick[Employee]) slottable.Reply {
//	        return slottable.OK()
//	    }).
//	    OnRowClick(func(ctx context.Context, e slottable.RowClick[Employee]) slottable.Reply {
//	        return slottable.OK().Flash(slottable.FlashInfo, "Selected "+e.Row.Name)
//	    })
//
//	reg := slottable.NewRegistry(key)
//	reg.Add(table)
//	http.Handle("/_t/", reg.Handler())
//
// A click on a cell emits cell-click followed by row-click, mirroring DOM
// event propagation. Clicks on the group row, footer and placeholder rows
// emit nothing.
package slottable
