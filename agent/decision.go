package agent

// Decision is the responder's per-step output: either a final answer or a
// request to invoke one tool. Exactly one variant is returned per decision.
type Decision interface {
	decision()
}

// FinalAnswer ends the run with the assistant's answer text.
type FinalAnswer struct {
	Text string
}

func (FinalAnswer) decision() {}

// ToolRequest asks the loop to invoke a registered tool with the given
// argument text. CallID correlates the eventual tool result back to this
// request; if the responder leaves it empty, the loop assigns one.
type ToolRequest struct {
	CallID    string
	Tool      string
	Arguments string
}

func (ToolRequest) decision() {}
