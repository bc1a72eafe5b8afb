package agent

// ConversationState is the append-only, chronologically ordered message
// sequence of one analysis run. A run owns its state exclusively; it is not
// safe for concurrent use and is discarded when the run ends.
type ConversationState struct {
	messages []Message
}

// NewConversationState creates an empty conversation.
func NewConversationState() *ConversationState {
	return &ConversationState{}
}

// Append adds a message to the end of the conversation.
func (s *ConversationState) Append(msg Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of the message sequence in insertion order.
func (s *ConversationState) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *ConversationState) Len() int {
	return len(s.messages)
}

// Last returns the most recent message, if any.
func (s *ConversationState) Last() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
