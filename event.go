package slottable

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"
)

// EventKind names a table notification.
type EventKind string

const (
	EventRowClick    EventKind = "row-click"
	EventHeaderClick EventKind = "header-click"
	EventCellClick   EventKind = "cell-click"
)

// RowClick is emitted when a populated body row is clicked, including
// clicks that land on one of its cells.
type RowClick[R any] struct {
	RowIndex int
	Row      R
}

// HeaderClick is emitted when a cell of the column header row is clicked.
// ColumnIndex counts visible columns only.
type HeaderClick struct {
	ColumnIndex int
}

// CellClick is emitted when a body cell is clicked.
type CellClick[R any] struct {
	RowIndex    int
	ColumnIndex int
	Row         R
}

// Event is a click as delivered to the listeners. Its msgpack form matches
// the click payload, so an encoded Event can be posted to a table. Row is
// omitted for header clicks.
type Event[R any] struct {
	Kind        EventKind `msgpack:"k"`
	RowIndex    int       `msgpack:"r"`
	ColumnIndex int       `msgpack:"c"`
	Row         R         `msgpack:"d,omitempty"`
}

// RowClickListener handles row-click notifications.
type RowClickListener[R any] func(ctx context.Context, e RowClick[R]) Reply

// HeaderClickListener handles header-click notifications.
type HeaderClickListener func(ctx context.Context, e HeaderClick) Reply

// CellClickListener handles cell-click notifications.
type CellClickListener[R any] func(ctx context.Context, e CellClick[R]) Reply

// listeners holds the registered notification handlers of a table.
type listeners[R any] struct {
	row    RowClickListener[R]
	header HeaderClickListener
	cell   CellClickListener[R]
}

// dispatch delivers ev to the listeners it concerns and reports which
// notifications were emitted. A cell click bubbles to the row: cell-click is
// emitted first, then row-click.
func (l *listeners[R]) dispatch(ctx context.Context, ev Event[R]) (Reply, []EventKind) {
	switch ev.Kind {
	case EventHeaderClick:
		reply := OK()
		if l.header != nil {
			reply = l.header(ctx, HeaderClick{ColumnIndex: ev.ColumnIndex})
		}
		return reply, []EventKind{EventHeaderClick}
	case EventRowClick:
		return l.emitRow(ctx, ev), []EventKind{EventRowClick}
	case EventCellClick:
		reply := OK()
		if l.cell != nil {
			reply = l.cell(ctx, CellClick[R]{
				RowIndex:    ev.RowIndex,
				ColumnIndex: ev.ColumnIndex,
				Row:         ev.Row,
			})
		}
		if reply.Err() != nil {
			return reply, []EventKind{EventCellClick}
		}
		return reply.Merge(l.emitRow(ctx, ev)), []EventKind{EventCellClick, EventRowClick}
	}
	return Fail(ErrUnknownEvent), nil
}

func (l *listeners[R]) emitRow(ctx context.Context, ev Event[R]) Reply {
	if l.row == nil {
		return OK()
	}
	return l.row(ctx, RowClick[R]{RowIndex: ev.RowIndex, Row: ev.Row})
}

// WireAttrs builds the HTMX attributes that post an encoded click payload
// to path.
//
// Cells consume their click so the enclosing row does not post a second
// request; the server emits the row notification itself.
//
//	<td hx-post="/_t/employees-1a2b3c4d/" hx-vals='{"p":"..."}'
//	    hx-trigger="click consume" hx-swap="none">
func WireAttrs(path, encoded string, consume bool, swap SwapMode, target string) templ.Attributes {
	attrs := templ.Attributes{"hx-post": path}
	if encoded != "" {
		data, _ := json.Marshal(map[string]string{"p": encoded})
		attrs["hx-vals"] = string(data)
	}

	trigger := "click"
	if consume {
		trigger = "click consume"
	}
	attrs["hx-trigger"] = trigger

	if swap == "" {
		swap = SwapNone
	}
	attrs["hx-swap"] = string(swap)
	if target != "" {
		attrs["hx-target"] = target
	}
	return attrs
}
