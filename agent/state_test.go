package agent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retailscope/footfall/agent"
)

func TestConversationState_AppendOrder(t *testing.T) {
	state := agent.NewConversationState()
	assert.Equal(t, 0, state.Len())

	_, ok := state.Last()
	assert.False(t, ok)

	state.Append(agent.Message{Role: agent.RoleUser, Content: "first"})
	state.Append(agent.Message{Role: agent.RoleAssistant, Content: "second"})
	state.Append(agent.Message{Role: agent.RoleUser, Content: "third"})

	msgs := state.Messages()
	assert.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "second", msgs[1].Content)
	assert.Equal(t, "third", msgs[2].Content)

	last, ok := state.Last()
	assert.True(t, ok)
	assert.Equal(t, "third", last.Content)
}

func TestConversationState_MessagesIsSnapshot(t *testing.T) {
	state := agent.NewConversationState()
	state.Append(agent.Message{Role: agent.RoleUser, Content: "original"})

	snap := state.Messages()
	snap[0].Content = "mutated"
	snap = append(snap, agent.Message{Role: agent.RoleAssistant, Content: "extra"})
	_ = snap

	msgs := state.Messages()
	assert.Len(t, msgs, 1)
	assert.Equal(t, "original", msgs[0].Content)
}
