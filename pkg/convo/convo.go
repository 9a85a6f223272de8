// Package convo provides the conversation types sent to a completion
// endpoint: a role, a text message, and an ordered message container.
package convo

// Role represents the sender of a message in a conversation.
type Role string

const (
	System    Role = "system"
	User      Role = "user"
	Assistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case System, User, Assistant:
		return true
	}
	return false
}

// String returns the underlying string value of the role.
func (r Role) String() string {
	return string(r)
}

// Message is a single text message in a conversation.
// It is a value type that copies cheaply.
type Message struct {
	Role Role
	Text string
}

// New creates a message with the given role and text.
func New(r Role, text string) Message {
	return Message{Role: r, Text: text}
}

// Conversation is a mutable ordered message container. The zero value is
// ready to use. Conversation is not safe for concurrent use; callers must
// synchronize externally.
type Conversation struct {
	messages []Message
}

// NewConversation creates a Conversation pre-populated with the given messages.
func NewConversation(msgs ...Message) *Conversation {
	return &Conversation{messages: msgs}
}

// Append adds one or more messages to the conversation.
func (c *Conversation) Append(msgs ...Message) {
	c.messages = append(c.messages, msgs...)
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// At returns the message at the given index.
// It panics if the index is out of range.
func (c *Conversation) At(index int) Message {
	return c.messages[index]
}

// Messages returns a copy of all messages in the conversation.
func (c *Conversation) Messages() []Message {
	cp := make([]Message, len(c.messages))
	copy(cp, c.messages)
	return cp
}

// SystemPrompt returns the text of the first system message, or an empty
// string if there is none.
func (c *Conversation) SystemPrompt() string {
	for _, m := range c.messages {
		if m.Role == System {
			return m.Text
		}
	}
	return ""
}
