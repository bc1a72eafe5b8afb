package tools

import "context"

// Tool defines the interface for all analyzer tools.
// Tools are pure text-to-text: they take an argument string and return a
// result string. Anything structured goes over the wire as JSON text.
type Tool interface {
	// Name returns the unique name of the tool (e.g. "retail_footprint_api")
	Name() string

	// Description returns a description of what the tool does and its arguments
	Description() string

	// Invoke runs the tool with the given argument text
	Invoke(ctx context.Context, args string) (string, error)
}

// Descriptor is the tool metadata handed to the responder so it can
// advertise the tool and decide when to request it.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
