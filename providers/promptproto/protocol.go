// Package promptproto drives plain text-generation models through a JSON
// tool-calling protocol: the model is told to emit either a bare
// {"tool": ..., "input": ...} object or final answer text, and responses
// are scanned accordingly. Providers without native tool calling (gemini,
// ollama) plug in here.
package promptproto

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/retailscope/footfall/agent"
	"github.com/retailscope/footfall/providers"
	"github.com/retailscope/footfall/tools"
)

const promptTemplate = `You are a retail analyst specializing in footfall patterns and competitive analysis. You have access to the following tools:

%s

Protocol:
1. To call a tool, output ONLY a JSON object in this format: {"tool": "toolName", "input": "argument text"}
2. Do not add any text before or after the JSON when calling a tool.
3. When you receive a Tool Result, use it to proceed. Only use factual information from tool results.
4. If you have the final answer, output the text directly (no JSON).

Conversation so far:
%s`

// Generator is the minimal text-completion capability the protocol drives.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Responder adapts a plain Generator to the agent.Responder contract.
type Responder struct {
	gen Generator
}

// NewResponder wraps a Generator in the prompt protocol.
func NewResponder(gen Generator) *Responder {
	return &Responder{gen: gen}
}

var _ agent.Responder = (*Responder)(nil)

// Decide renders the conversation into a single prompt, generates one
// completion, and parses it into a Decision.
func (r *Responder) Decide(ctx context.Context, history []agent.Message, available []tools.Descriptor) (agent.Decision, error) {
	prompt := RenderPrompt(history, available)

	resp, err := r.gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}

	return ParseDecision(resp), nil
}

// RenderPrompt builds the full prompt: protocol header with tool
// definitions, then the conversation rendered as role-tagged lines.
func RenderPrompt(history []agent.Message, available []tools.Descriptor) string {
	var toolDefs strings.Builder
	for _, d := range available {
		fmt.Fprintf(&toolDefs, "Tool: %s\nDescription: %s\n\n", d.Name, d.Description)
	}

	// Map call ids back to tool names so results can be labelled
	callNames := make(map[string]string)

	var convo strings.Builder
	for _, msg := range history {
		switch msg.Role {
		case agent.RoleUser:
			fmt.Fprintf(&convo, "User Query: %s\n", msg.Content)
		case agent.RoleAssistant:
			if msg.ToolCall != nil {
				callNames[msg.ToolCall.ID] = msg.ToolCall.Name
				call, _ := json.Marshal(map[string]string{
					"tool":  msg.ToolCall.Name,
					"input": msg.ToolCall.Arguments,
				})
				fmt.Fprintf(&convo, "Model Response: %s\n", call)
			} else {
				fmt.Fprintf(&convo, "Model Response: %s\n", msg.Content)
			}
		case agent.RoleTool:
			name := callNames[msg.ToolCallID]
			if name == "" {
				name = "unknown"
			}
			fmt.Fprintf(&convo, "Tool '%s' Output: %s\n", name, msg.Content)
		}
	}

	return fmt.Sprintf(promptTemplate, toolDefs.String(), convo.String())
}

// ParseDecision classifies a model response: a parseable tool-call object
// becomes a ToolRequest, anything else is the final answer. The scan runs
// from the first '{' to the last '}' to survive markdown fences and
// preamble text around the JSON.
func ParseDecision(resp string) agent.Decision {
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")

	if start != -1 && end != -1 && end > start {
		var call struct {
			Tool  string          `json:"tool"`
			Input json.RawMessage `json:"input"`
		}
		if err := json.Unmarshal([]byte(resp[start:end+1]), &call); err == nil && call.Tool != "" {
			return agent.ToolRequest{
				Tool:      call.Tool,
				Arguments: inputText(call.Input),
			}
		}
	}

	return agent.FinalAnswer{Text: strings.TrimSpace(resp)}
}

// inputText normalizes the protocol's input field: plain strings pass
// through, anything structured stays as raw JSON text.
func inputText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
