package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/retailscope/footfall/log"
	"github.com/retailscope/footfall/runctx"
	"github.com/retailscope/footfall/tools"
)

// ErrMaxStepsExceeded is returned when a run burns through its step budget
// without the responder producing a final answer.
var ErrMaxStepsExceeded = errors.New("max steps exceeded")

// DefaultMaxSteps bounds the decide/invoke cycle. The responder normally
// finishes a footfall query in two or three steps.
const DefaultMaxSteps = 10

// runState tracks where the loop is in its decide/invoke cycle.
type runState int

const (
	awaitingDecision runState = iota
	executingTool
	done
)

// RunResult is the outcome of one analysis run: the final conversation
// snapshot plus run bookkeeping.
type RunResult struct {
	RunID       string        `json:"run_id"`
	Query       string        `json:"query"`
	FinalAnswer string        `json:"final_answer"`
	Messages    []Message     `json:"messages"`
	Steps       int           `json:"steps"`
	ToolCalls   int           `json:"tool_calls"`
	Duration    time.Duration `json:"duration"`
}

// Analyzer drives the analysis loop: it repeatedly asks the responder for
// the next step, executes requested tool calls against the registry, and
// stops when the responder emits a final answer. Each Analyze call owns its
// own ConversationState, so one Analyzer may serve concurrent runs.
type Analyzer struct {
	responder Responder
	registry  *tools.Registry

	// MaxSteps bounds the number of responder decisions per run
	MaxSteps int

	// DecisionTimeout, when positive, caps each responder call
	DecisionTimeout time.Duration
}

// NewAnalyzer creates an Analyzer over the given responder and tools.
func NewAnalyzer(responder Responder, registry *tools.Registry) *Analyzer {
	return &Analyzer{
		responder: responder,
		registry:  registry,
		MaxSteps:  DefaultMaxSteps,
	}
}

// Analyze runs one query to completion and returns the result. Fatal
// failures (responder unavailable, step budget exhausted, cancelled
// context) abort the run; tool-level failures are folded back into the
// conversation and the loop continues.
func (a *Analyzer) Analyze(ctx context.Context, query string) (*RunResult, error) {
	runID := runctx.RunIDFromContext(ctx)
	if runID == "" {
		runID = runctx.NewRunID()
		ctx = runctx.WithRunID(ctx, runID)
	}

	start := time.Now()
	state := NewConversationState()
	state.Append(Message{Role: RoleUser, Content: query})
	log.Infof(ctx, "Starting analysis run for query: %q", query)

	var pending ToolRequest
	current := awaitingDecision
	steps := 0
	toolCalls := 0

	for current != done {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		switch current {
		case awaitingDecision:
			if steps >= a.maxSteps() {
				return nil, fmt.Errorf("%w after %d decisions", ErrMaxStepsExceeded, steps)
			}
			steps++

			decision, err := a.decide(ctx, state)
			if err != nil {
				return nil, fmt.Errorf("responder decision failed: %w", err)
			}

			switch d := decision.(type) {
			case FinalAnswer:
				state.Append(Message{Role: RoleAssistant, Content: d.Text})
				current = done

			case ToolRequest:
				if d.CallID == "" {
					d.CallID = uuid.New().String()
				}
				log.Debugf(ctx, "Step %d: responder requested tool %q", steps, d.Tool)
				state.Append(Message{
					Role: RoleAssistant,
					ToolCall: &ToolCall{
						ID:        d.CallID,
						Name:      d.Tool,
						Arguments: d.Arguments,
					},
				})
				pending = d
				current = executingTool

			default:
				return nil, fmt.Errorf("responder returned unexpected decision type %T", decision)
			}

		case executingTool:
			toolCalls++
			output, err := a.registry.Invoke(ctx, pending.Tool, pending.Arguments)
			if err != nil {
				// Unknown tool: report it back into the conversation so the
				// responder can recover, rather than aborting the run.
				log.Warnf(ctx, "Tool invocation rejected: %v", err)
				output = toolErrorPayload(err)
			}
			state.Append(Message{
				Role:       RoleTool,
				Content:    output,
				ToolCallID: pending.CallID,
			})
			pending = ToolRequest{}
			current = awaitingDecision
		}
	}

	result := &RunResult{
		RunID:     runID,
		Query:     query,
		Messages:  state.Messages(),
		Steps:     steps,
		ToolCalls: toolCalls,
		Duration:  time.Since(start),
	}
	if last, ok := state.Last(); ok {
		result.FinalAnswer = last.Content
	}
	log.Infof(ctx, "Run complete: %d steps, %d tool calls, %s", steps, toolCalls, result.Duration.Round(time.Millisecond))
	return result, nil
}

func (a *Analyzer) decide(ctx context.Context, state *ConversationState) (Decision, error) {
	if a.DecisionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.DecisionTimeout)
		defer cancel()
	}
	return a.responder.Decide(ctx, state.Messages(), a.registry.Descriptors())
}

func (a *Analyzer) maxSteps() int {
	if a.MaxSteps > 0 {
		return a.MaxSteps
	}
	return DefaultMaxSteps
}

func toolErrorPayload(err error) string {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	return string(payload)
}
