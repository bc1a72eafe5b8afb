package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"

	"github.com/retailscope/footfall/log"
)

// DateTool resolves relative date phrasing ("last weekend", "next Friday")
// by evaluating a JavaScript expression. Footfall queries lean heavily on
// relative time windows, so the responder gets a calculator instead of
// guessing dates itself.
type DateTool struct {
	Now func() time.Time
}

// NewDateTool creates a DateTool backed by the wall clock.
func NewDateTool() *DateTool {
	return &DateTool{Now: time.Now}
}

func (t *DateTool) Name() string {
	return "date_tool"
}

func (t *DateTool) Description() string {
	return `Evaluates a JavaScript expression to calculate a date. Variable 'now' holds the current timestamp in milliseconds.
Return a Date object or an ISO string. The last expression is the return value.
Examples:
- Tomorrow: "new Date(now + 86400000)"
- Next Friday: "var d = new Date(now); d.setDate(d.getDate() + (12 - d.getDay()) % 7); if(d.getDay() !== 5 || d <= now) d.setDate(d.getDate() + 7); d"`
}

// Invoke runs the expression and returns the resulting date as RFC 3339 text.
func (t *DateTool) Invoke(ctx context.Context, args string) (string, error) {
	log.Debugf(ctx, "Evaluating date expression: %q", args)

	vm := goja.New()
	if err := vm.Set("now", t.Now().UnixMilli()); err != nil {
		return "", fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(args)
	if err != nil {
		return "", fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	if exported == nil {
		return "", fmt.Errorf("result is null or undefined")
	}

	// Goja converts JS Date objects to time.Time on export
	if date, ok := exported.(time.Time); ok {
		return date.UTC().Format(time.RFC3339), nil
	}

	if str, ok := exported.(string); ok {
		if date, err := time.Parse(time.RFC3339, str); err == nil {
			return date.UTC().Format(time.RFC3339), nil
		}
	}

	return "", fmt.Errorf("result is not a valid Date object or ISO string")
}
