package definition

import (
	"fmt"

	"github.com/pthm/slottable"
)

func parseSticky(s string) (slottable.Sticky, error) {
	switch s {
	case "", "none":
		return slottable.StickyNone, nil
	case "left":
		return slottable.StickyLeft, nil
	case "right":
		return slottable.StickyRight, nil
	}
	return "", fmt.Errorf("unknown sticky %q (want left or right)", s)
}

func parseAlign(s string) (slottable.Align, error) {
	switch s {
	case "":
		return slottable.AlignDefault, nil
	case "left":
		return slottable.AlignLeft, nil
	case "center":
		return slottable.AlignCenter, nil
	case "right":
		return slottable.AlignRight, nil
	}
	return "", fmt.Errorf("unknown align %q (want left, center or right)", s)
}

// classSpec converts a decoded YAML class value to a shape the renderer
// understands.
func classSpec(v any) (any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("list entries must be strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]bool, len(v))
		for k, on := range v {
			b, ok := on.(bool)
			if !ok {
				return nil, fmt.Errorf("class %q must map to a boolean, got %T", k, on)
			}
			out[k] = b
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported class value %T", v)
}
