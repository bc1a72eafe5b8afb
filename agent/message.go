package agent

// Role tags who produced a message in the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ToolCall describes a responder's request to invoke a tool.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is one entry in a conversation. Messages are immutable once
// appended to a ConversationState.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content,omitempty"`

	// ToolCall is set on assistant messages that request a tool invocation
	ToolCall *ToolCall `json:"tool_call,omitempty"`

	// ToolCallID correlates a tool-result message to its request
	ToolCallID string `json:"tool_call_id,omitempty"`
}
