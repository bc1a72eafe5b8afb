package agent

import (
	"context"

	"github.com/retailscope/footfall/tools"
)

// Responder defines the interface for the hosted model behind the loop:
// given the conversation so far and the available tools, it produces the
// next Decision. Transport or auth failures come back as errors and are
// surfaced to the caller without retry.
type Responder interface {
	Decide(ctx context.Context, history []Message, available []tools.Descriptor) (Decision, error)
}
