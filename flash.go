package slottable

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// FlashDismiss is the data-auto-dismiss delay, in milliseconds, written on
// every toast.
var FlashDismiss = 3000

// Flash is a toast attached to a click reply. Flashes reach the page as
// out-of-band swaps into #toasts, so they show up under hx-swap="none".
type Flash struct {
	Level   string
	Message string
}

// RenderFlashesOOB renders flashes as a single OOB swap. It returns "" for no
// flashes.
func RenderFlashesOOB(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	out := &htmlWriter{w: &sb}
	out.open("div", attr{"id", "toasts"}, attr{"hx-swap-oob", "beforeend"})
	for _, f := range flashes {
		out.open("div",
			attr{"class", "toast toast-" + f.Level},
			attr{"data-auto-dismiss", strconv.Itoa(FlashDismiss)},
			attr{"role", "status"},
		)
		out.text(f.Message)
		out.close("div")
	}
	out.close("div")
	return sb.String()
}

// ToastContainer is the #toasts element. Put it once in the page layout.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{w: w}
		out.open("div", attr{"id", "toasts"}, attr{"class", "toast-container"}, attr{"aria-live", "polite"})
		out.close("div")
		return out.err
	})
}
