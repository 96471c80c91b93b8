package slottable

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/a-h/templ"
)

// Props are the per-render inputs of a Table. Columns holds the declared
// children (*Column[R] and *ColumnGroup values); the column model is rebuilt
// from it on every render.
type Props[R any] struct {
	Rows    []R
	Columns []any
	Options Options[R]
}

// Table is an interactive table component. It renders like Render and, once
// added to a Registry, wires clicks on rows, header cells and body cells to
// the registered listeners.
//
//	employees := slottable.New[Employee]("employees").
//	    OnRowClick(func(ctx context.Context, e slottable.RowClick[Employee]) slottable.Reply {
//	        return slottable.RedirectTo("/employees/" + e.Row.ID)
//	    })
//	reg.Add(employees)
//
//	// in a handler or template
//	employees.Render(ctx, slottable.Props[Employee]{Rows: list, Columns: cols})
//
// Each table receives a deterministic URL prefix based on its name and the
// source location of the New call, below the registry's base path.
type Table[R any] struct {
	name      string
	id        string
	prefix    string
	sensitive bool
	swap      SwapMode
	target    string
	encoder   *Encoder
	rows      RowSource[R]
	key       KeyFunc[R]
	listeners listeners[R]
	registry  *Registry
}

// New creates a table component with the given name.
//
// Click payloads are signed by default (visible but tamper-proof). Call
// Sensitive to encrypt them when rows hold data that must stay opaque.
func New[R any](name string) *Table[R] {
	id := name + "-" + componentHash(name, 1)
	return &Table[R]{
		name:   name,
		id:     id,
		prefix: DefaultBasePath + id,
		swap:   SwapNone,
	}
}

// Sensitive encrypts click payloads instead of signing them.
func (t *Table[R]) Sensitive() *Table[R] {
	t.sensitive = true
	return t
}

// Swap sets the hx-swap mode used for click responses.
func (t *Table[R]) Swap(mode SwapMode) *Table[R] {
	t.swap = mode
	return t
}

// Target sets the hx-target selector receiving click response content.
func (t *Table[R]) Target(selector string) *Table[R] {
	t.target = selector
	return t
}

// Rows sets the source click requests read rows from. Payloads then carry
// only the row index and key, and listeners receive the row exactly as the
// source returns it.
//
// Without a source the row travels inside the payload, so R must survive a
// msgpack round trip: a func or chan field fails the render, unexported
// fields arrive zeroed and interface values come back widened (int64,
// uint64, float64).
func (t *Table[R]) Rows(source RowSource[R]) *Table[R] {
	t.rows = source
	return t
}

// RowKey sets the row identity. A clicked row is matched by key against the
// row source, so a row that moved since the render is still found. It also
// becomes the default Options.RowKey.
func (t *Table[R]) RowKey(fn KeyFunc[R]) *Table[R] {
	t.key = fn
	return t
}

// OnRowClick registers the row-click listener. It also receives clicks that
// land on a cell of the row.
func (t *Table[R]) OnRowClick(fn RowClickListener[R]) *Table[R] {
	t.listeners.row = fn
	return t
}

// OnHeaderClick registers the header-click listener.
func (t *Table[R]) OnHeaderClick(fn HeaderClickListener) *Table[R] {
	t.listeners.header = fn
	return t
}

// OnCellClick registers the cell-click listener.
func (t *Table[R]) OnCellClick(fn CellClickListener[R]) *Table[R] {
	t.listeners.cell = fn
	return t
}

// Name returns the table's name.
func (t *Table[R]) Name() string {
	return t.name
}

// Prefix returns the table's URL prefix.
func (t *Table[R]) Prefix() string {
	return t.prefix
}

// HXPrefix implements HXComponent.
func (t *Table[R]) HXPrefix() string {
	return t.prefix
}

// IsSensitive returns whether click payloads are encrypted.
func (t *Table[R]) IsSensitive() bool {
	return t.sensitive
}

// SetEncoder sets the payload encoder (called by the registry).
func (t *Table[R]) SetEncoder(enc *Encoder) {
	t.encoder = enc
}

// Encoder returns the table's payload encoder.
func (t *Table[R]) Encoder() *Encoder {
	return t.encoder
}

// attach connects the table to its registry and moves it under the
// registry's base path.
func (t *Table[R]) attach(reg *Registry) {
	t.encoder = reg.encoder
	t.registry = reg
	t.prefix = reg.basePath + t.id
}

// Render builds the column model from props.Columns and renders the table.
// Click attributes are only attached once the table has an encoder and a
// listener for the element's notification.
//
// Without a Rows source, rows are encoded into the click payloads and R must
// survive a msgpack round trip (see Rows); otherwise rendering fails.
func (t *Table[R]) Render(ctx context.Context, props Props[R]) templ.Component {
	m := BuildModel[R](props.Columns...)
	opts := props.Options
	if opts.RowKey == nil {
		opts.RowKey = t.key
	}
	return renderTable(m, props.Rows, opts, t.wiring())
}

// Dispatch delivers a click to the listeners as if it had arrived over HTTP.
func (t *Table[R]) Dispatch(ctx context.Context, ev Event[R]) Reply {
	reply, _ := t.listeners.dispatch(ctx, ev)
	return reply
}

func (t *Table[R]) wiring() *wiring[R] {
	if t.encoder == nil {
		return nil
	}
	w := &wiring[R]{
		table: func() templ.Attributes {
			return templ.Attributes{"data-slot-table": t.name}
		},
	}
	if t.listeners.header != nil {
		w.header = func(columnIndex int) (templ.Attributes, error) {
			return t.attrs(click[R]{Kind: EventHeaderClick, ColumnIndex: columnIndex}, false)
		}
	}
	if t.listeners.row != nil {
		w.row = func(rowIndex int, row R) (templ.Attributes, error) {
			return t.attrs(t.rowClick(EventRowClick, rowIndex, 0, row), false)
		}
	}
	if t.listeners.cell != nil {
		w.cell = func(rowIndex, columnIndex int, row R) (templ.Attributes, error) {
			return t.attrs(t.rowClick(EventCellClick, rowIndex, columnIndex, row), true)
		}
	}
	return w
}

// click is the payload carried in hx-vals. It shares its field tags with
// Event so an encoded Event decodes into it.
type click[R any] struct {
	Kind        EventKind `msgpack:"k"`
	RowIndex    int       `msgpack:"r"`
	ColumnIndex int       `msgpack:"c"`
	Key         string    `msgpack:"key,omitempty"`
	Row         *R        `msgpack:"d,omitempty"`
}

func (t *Table[R]) rowClick(kind EventKind, rowIndex, columnIndex int, row R) click[R] {
	c := click[R]{Kind: kind, RowIndex: rowIndex, ColumnIndex: columnIndex}
	if t.key != nil {
		c.Key = t.key(row, rowIndex)
	}
	if t.rows == nil {
		c.Row = &row
	}
	return c
}

// resolve turns a decoded payload into the event delivered to listeners,
// reading the row from the row source when there is one.
func (t *Table[R]) resolve(ctx context.Context, c click[R]) (Event[R], error) {
	ev := Event[R]{Kind: c.Kind, RowIndex: c.RowIndex, ColumnIndex: c.ColumnIndex}
	switch c.Kind {
	case EventHeaderClick:
		return ev, nil
	case EventRowClick, EventCellClick:
	default:
		return ev, ErrUnknownEvent
	}

	if t.rows == nil {
		if c.Row != nil {
			ev.Row = *c.Row
		}
		return ev, nil
	}

	rows, err := t.rows(ctx)
	if err != nil {
		return ev, fmt.Errorf("slottable: load rows: %w", err)
	}
	row, ok := t.lookup(rows, c)
	if !ok {
		return ev, ErrRowNotFound
	}
	ev.Row = row
	return ev, nil
}

// lookup finds the clicked row. Without a key the index decides; with one the
// row at the index must carry the key, else the first row that does wins.
func (t *Table[R]) lookup(rows []R, c click[R]) (R, bool) {
	var zero R
	inRange := c.RowIndex >= 0 && c.RowIndex < len(rows)
	if t.key == nil {
		if !inRange {
			return zero, false
		}
		return rows[c.RowIndex], true
	}
	if inRange && t.key(rows[c.RowIndex], c.RowIndex) == c.Key {
		return rows[c.RowIndex], true
	}
	for i, row := range rows {
		if t.key(row, i) == c.Key {
			return row, true
		}
	}
	return zero, false
}

func (t *Table[R]) attrs(c click[R], consume bool) (templ.Attributes, error) {
	encoded, err := t.encoder.Encode(c, t.sensitive)
	if err != nil {
		return nil, fmt.Errorf("slottable: encode %s payload: %w", c.Kind, err)
	}
	return WireAttrs(t.prefix+"/", encoded, consume, t.swap, t.target), nil
}

// HXServeHTTP decodes a click request, dispatches it and writes the reply.
func (t *Table[R]) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		t.fail(w, r, "", ErrMethodNotAllowed)
		return
	}
	if t.encoder == nil {
		t.fail(w, r, "", ErrNotRegistered)
		return
	}

	var c click[R]
	if err := t.encoder.Decode(r.FormValue("p"), t.sensitive, &c); err != nil {
		t.fail(w, r, "", wrapEncodingError(err))
		return
	}
	ev, err := t.resolve(r.Context(), c)
	if err != nil {
		t.fail(w, r, c.Kind, err)
		return
	}

	reply, emitted := t.listeners.dispatch(r.Context(), ev)
	if err := reply.Err(); err != nil {
		t.fail(w, r, ev.Kind, err)
		return
	}
	for _, kind := range emitted {
		t.registry.observe(t.name, kind, nil)
	}

	triggers := make([]Trigger, 0, len(emitted)+len(reply.Triggers()))
	for _, kind := range emitted {
		triggers = append(triggers, Trigger{
			Name: string(kind),
			Data: eventDetail(t.name, kind, ev),
		})
	}
	triggers = append(triggers, reply.Triggers()...)
	writeReply(w, r, reply, triggers)
}

func (t *Table[R]) fail(w http.ResponseWriter, r *http.Request, kind EventKind, err error) {
	t.registry.observe(t.name, kind, err)
	t.registry.handleError(w, r, err)
}

// eventDetail is the evt.detail of the HX-Trigger event broadcast for an
// emitted notification.
func eventDetail[R any](table string, kind EventKind, ev Event[R]) map[string]any {
	detail := map[string]any{"table": table}
	switch kind {
	case EventHeaderClick:
		detail["columnIndex"] = ev.ColumnIndex
	case EventRowClick:
		detail["rowIndex"] = ev.RowIndex
	case EventCellClick:
		detail["rowIndex"] = ev.RowIndex
		detail["columnIndex"] = ev.ColumnIndex
	}
	return detail
}

// writeReply applies a successful reply to the response.
func writeReply(w http.ResponseWriter, r *http.Request, reply Reply, triggers []Trigger) {
	for k, v := range reply.Headers() {
		w.Header().Set(k, v)
	}
	if h := BuildTriggerHeader(triggers); h != "" {
		w.Header().Set("HX-Trigger", h)
	}
	if reply.Redirect() != "" {
		w.Header().Set("HX-Redirect", reply.Redirect())
	}

	flashes := RenderFlashesOOB(reply.Flashes())
	content := reply.Content()

	status := reply.StatusCode()
	if status == 0 {
		status = http.StatusOK
		if content == nil && flashes == "" {
			status = http.StatusNoContent
		}
	}

	if content != nil || flashes != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	w.WriteHeader(status)

	if content != nil {
		if err := content.Render(r.Context(), w); err != nil {
			return
		}
	}
	if flashes != "" {
		_, _ = w.Write([]byte(flashes))
	}
}

// componentHash generates a deterministic hash based on table name and source location.
// This ensures each table instance gets a unique prefix without manual coordination.
func componentHash(name string, skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	var input string
	if ok {
		// Use base filename only for portability across environments
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	} else {
		input = name
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4]) // 8 hex chars
}
