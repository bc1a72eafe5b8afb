// Package openai implements the responder over OpenAI chat completions,
// using the API's native tool calling instead of a prompt protocol.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/retailscope/footfall/agent"
	"github.com/retailscope/footfall/providers"
	"github.com/retailscope/footfall/tools"
)

// DefaultModel is used when the config leaves the model name empty.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are a retail analyst specializing in footfall patterns and competitive analysis.
When using the available tools:
1. Extract key insights about peak hours, customer traffic, and competitor data
2. Present the information in a clear, structured format
3. Only use factual information from the tool results
4. If specific data is not available, acknowledge the limitation
5. Focus on actionable insights for business owners and marketers`

// Client is the OpenAI-backed responder.
type Client struct {
	Model       string
	Temperature float64

	api sdk.Client
}

var _ agent.Responder = (*Client)(nil)

// NewClient creates the responder. An empty API key fails with
// ErrMissingCredential before any network call is made. Extra request
// options (e.g. a custom base URL for OpenAI-compatible endpoints) are
// passed through to the SDK.
func NewClient(apiKey, model string, temperature float64, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, providers.ErrMissingCredential
	}
	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		Model:       model,
		Temperature: temperature,
		api:         sdk.NewClient(opts...),
	}, nil
}

// Decide requests one chat completion over the conversation. An assistant
// message carrying tool calls becomes a ToolRequest (only the first call is
// taken; the loop is strictly sequential), plain content becomes the final
// answer.
func (c *Client) Decide(ctx context.Context, history []agent.Message, available []tools.Descriptor) (agent.Decision, error) {
	params := sdk.ChatCompletionNewParams{
		Model:       sdk.ChatModel(c.Model),
		Temperature: sdk.Float(c.Temperature),
		Messages:    buildMessages(history),
		Tools:       buildTools(available),
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrModelUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: completion had no choices", providers.ErrModelUnavailable)
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		call := msg.ToolCalls[0]
		return agent.ToolRequest{
			CallID:    call.ID,
			Tool:      call.Function.Name,
			Arguments: unwrapArguments(call.Function.Arguments),
		}, nil
	}

	return agent.FinalAnswer{Text: msg.Content}, nil
}

// buildMessages renders the conversation into chat-completion params,
// prefixed with the analyst system prompt.
func buildMessages(history []agent.Message) []sdk.ChatCompletionMessageParamUnion {
	msgs := make([]sdk.ChatCompletionMessageParamUnion, 0, len(history)+1)
	msgs = append(msgs, sdk.SystemMessage(systemPrompt))

	for _, m := range history {
		switch m.Role {
		case agent.RoleUser:
			msgs = append(msgs, sdk.UserMessage(m.Content))

		case agent.RoleAssistant:
			if m.ToolCall != nil {
				msgs = append(msgs, sdk.ChatCompletionMessageParamUnion{
					OfAssistant: &sdk.ChatCompletionAssistantMessageParam{
						ToolCalls: []sdk.ChatCompletionMessageToolCallParam{{
							ID: m.ToolCall.ID,
							Function: sdk.ChatCompletionMessageToolCallFunctionParam{
								Name:      m.ToolCall.Name,
								Arguments: wrapArguments(m.ToolCall.Arguments),
							},
						}},
					},
				})
			} else {
				msgs = append(msgs, sdk.AssistantMessage(m.Content))
			}

		case agent.RoleTool:
			msgs = append(msgs, sdk.ToolMessage(m.Content, m.ToolCallID))
		}
	}

	return msgs
}

// buildTools declares each registered tool with a single-string argument
// schema, matching the text-in/text-out tool contract.
func buildTools(available []tools.Descriptor) []sdk.ChatCompletionToolParam {
	out := make([]sdk.ChatCompletionToolParam, 0, len(available))
	for _, d := range available {
		out = append(out, sdk.ChatCompletionToolParam{
			Function: sdk.FunctionDefinitionParam{
				Name:        d.Name,
				Description: sdk.String(d.Description),
				Parameters: sdk.FunctionParameters{
					"type": "object",
					"properties": map[string]any{
						"query": map[string]any{
							"type":        "string",
							"description": "Argument text for the tool",
						},
					},
					"required": []string{"query"},
				},
			},
		})
	}
	return out
}

// unwrapArguments extracts the query string from the model's JSON
// arguments; unrecognized shapes pass through untouched.
func unwrapArguments(raw string) string {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(raw), &args); err == nil && args.Query != "" {
		return args.Query
	}
	return raw
}

// wrapArguments is the inverse, rebuilding the wire shape when replaying
// history back to the API.
func wrapArguments(text string) string {
	out, _ := json.Marshal(map[string]string{"query": text})
	return string(out)
}
