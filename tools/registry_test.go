package tools_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailscope/footfall/tools"
)

// stubTool is a minimal Tool for registry tests.
type stubTool struct {
	name   string
	invoke func(ctx context.Context, args string) (string, error)
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub tool" }
func (s *stubTool) Invoke(ctx context.Context, args string) (string, error) {
	return s.invoke(ctx, args)
}

func echoTool(name string) *stubTool {
	return &stubTool{
		name: name,
		invoke: func(ctx context.Context, args string) (string, error) {
			return "echo: " + args, nil
		},
	}
}

func TestNewRegistry(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NotNil(t, reg)
	assert.Empty(t, reg.Descriptors())
}

func TestRegistry_Register(t *testing.T) {
	reg := tools.NewRegistry()

	err := reg.Register(echoTool("echo"))
	assert.NoError(t, err)

	descs := reg.Descriptors()
	assert.Len(t, descs, 1)
	assert.Equal(t, "echo", descs[0].Name)
	assert.Equal(t, "stub tool", descs[0].Description)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg := tools.NewRegistry()

	assert.NoError(t, reg.Register(echoTool("echo")))

	err := reg.Register(echoTool("echo"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, tools.ErrDuplicateTool)

	// First registration survives
	assert.Len(t, reg.Descriptors(), 1)
}

func TestRegistry_Descriptors_Order(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NoError(t, reg.Register(echoTool("bravo")))
	assert.NoError(t, reg.Register(echoTool("alpha")))
	assert.NoError(t, reg.Register(echoTool("charlie")))

	descs := reg.Descriptors()
	assert.Len(t, descs, 3)
	// Registration order, not lexical order
	assert.Equal(t, "bravo", descs[0].Name)
	assert.Equal(t, "alpha", descs[1].Name)
	assert.Equal(t, "charlie", descs[2].Name)
}

func TestRegistry_Invoke(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NoError(t, reg.Register(echoTool("echo")))

	t.Run("Success", func(t *testing.T) {
		out, err := reg.Invoke(context.Background(), "echo", "hello")
		assert.NoError(t, err)
		assert.Equal(t, "echo: hello", out)
	})

	t.Run("UnknownTool", func(t *testing.T) {
		_, err := reg.Invoke(context.Background(), "missing", "hello")
		assert.Error(t, err)
		assert.ErrorIs(t, err, tools.ErrUnknownTool)
	})
}

func TestRegistry_Invoke_ToolErrorBecomesPayload(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NoError(t, reg.Register(&stubTool{
		name: "broken",
		invoke: func(ctx context.Context, args string) (string, error) {
			return "", errors.New("upstream timeout")
		},
	}))

	out, err := reg.Invoke(context.Background(), "broken", "anything")
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["error"], "upstream timeout")
}

func TestRegistry_Invoke_ToolPanicBecomesPayload(t *testing.T) {
	reg := tools.NewRegistry()
	assert.NoError(t, reg.Register(&stubTool{
		name: "panicky",
		invoke: func(ctx context.Context, args string) (string, error) {
			panic("nil map write")
		},
	}))

	out, err := reg.Invoke(context.Background(), "panicky", "anything")
	assert.NoError(t, err)

	var payload map[string]string
	assert.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, payload["error"], "nil map write")
}
