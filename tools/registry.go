package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/retailscope/footfall/log"
)

// ErrDuplicateTool is returned when registering a tool whose name is taken.
var ErrDuplicateTool = errors.New("duplicate tool name")

// ErrUnknownTool is returned when invoking a tool that was never registered.
var ErrUnknownTool = errors.New("unknown tool")

// Registry manages the set of tools available to the responder.
// All tools are registered at startup; after that the registry is read-only,
// so concurrent analysis runs can share it.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Names must be unique.
func (r *Registry) Register(t Tool) error {
	name := t.Name()
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the tool registered under name, if any.
func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Descriptors returns the metadata of all registered tools in registration
// order, for prompt and tool-schema generation.
func (r *Registry) Descriptors() []Descriptor {
	descs := make([]Descriptor, 0, len(r.tools))
	for _, name := range r.order {
		descs = append(descs, Descriptor{
			Name:        name,
			Description: r.tools[name].Description(),
		})
	}
	return descs
}

// Invoke runs a registered tool by name. A missing tool fails with
// ErrUnknownTool. Failures inside the tool itself are data, not faults:
// errors and panics are converted into a JSON error payload so the
// responder can read them and recover.
func (r *Registry) Invoke(ctx context.Context, name, args string) (string, error) {
	tool, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	out, err := safeInvoke(ctx, tool, args)
	if err != nil {
		log.Warnf(ctx, "Tool %q failed: %v", name, err)
		return errorPayload(err), nil
	}
	return out, nil
}

func safeInvoke(ctx context.Context, tool Tool, args string) (out string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tool panicked: %v", rec)
		}
	}()
	return tool.Invoke(ctx, args)
}

// errorPayload mirrors the mock API contract: tools always answer with a
// string, embedding error indicators instead of raising.
func errorPayload(err error) string {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(payload)
}
