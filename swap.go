package slottable

// SwapMode is the hx-swap strategy applied to the response of a click
// request.
//
// Clicks are notifications, so tables default to SwapNone: the response is
// discarded apart from out-of-band flashes and HX-* headers. Pick another mode
// together with Table.Target when listeners reply with content.
type SwapMode string

const (
	// SwapNone performs no swap. This is the table default.
	SwapNone SwapMode = "none"

	// SwapOuter replaces the target element including its tag (outerHTML).
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the target's contents (innerHTML).
	// Typical for detail panels filled on row-click.
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response to the target's contents.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterBegin prepends the response to the target's contents.
	SwapAfterBegin SwapMode = "afterbegin"
)
