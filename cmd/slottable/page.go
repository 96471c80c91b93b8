package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/slottable"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

const pageStyle = `
body { font-family: system-ui, sans-serif; margin: 2rem; }
.table-scroll { overflow-x: auto; max-width: 100%; }
table { border-collapse: collapse; }
th, td { padding: .4rem .8rem; text-align: left; background: #fff; }
thead th { border-bottom: 2px solid #ccc; }
.slot-table-caption { caption-side: top; font-weight: 600; padding-bottom: .5rem; }
.slot-table-bordered th, .slot-table-bordered td { border: 1px solid #ddd; }
.slot-table-striped td { background: #f6f6f6; }
.slot-table-hoverable:hover td { background: #eef4ff; cursor: pointer; }
.slot-table-sticky-header th { position: sticky; top: 0; z-index: 2; }
.sticky-left { position: sticky; left: 0; z-index: 1; }
.sticky-right { position: sticky; right: 0; z-index: 1; }
.align-left { text-align: left; }
.align-center { text-align: center; }
.align-right { text-align: right; }
.slot-table-empty, .slot-table-loading { text-align: center; color: #777; }
.toast-container { position: fixed; right: 1rem; bottom: 1rem; }
.toast { padding: .5rem 1rem; margin-top: .5rem; border-radius: 4px; background: #333; color: #fff; }
`

// page wraps content in a standalone HTML document that loads htmx and the
// default table styles.
func page(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<script src="` + htmxScript + `"></script>` +
			`<style>` + pageStyle + `</style></head><body><div class="table-scroll">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if err := slottable.ToastContainer().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
