package convo_test

import (
	"testing"

	"jqlgen/pkg/convo"

	"github.com/stretchr/testify/assert"
)

func TestNewConversation(t *testing.T) {
	c := convo.NewConversation(
		convo.New(convo.System, "be helpful"),
		convo.New(convo.User, "hello"),
	)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, convo.System, c.At(0).Role)
	assert.Equal(t, "hello", c.At(1).Text)
}

func TestConversation_ZeroValue(t *testing.T) {
	var c convo.Conversation

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Messages())
	assert.Empty(t, c.SystemPrompt())
}

func TestConversation_Append(t *testing.T) {
	c := convo.NewConversation()
	c.Append(convo.New(convo.User, "one"))
	c.Append(
		convo.New(convo.Assistant, "two"),
		convo.New(convo.User, "three"),
	)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "three", c.At(2).Text)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	c := convo.NewConversation(convo.New(convo.User, "original"))

	msgs := c.Messages()
	msgs[0].Text = "mutated"

	assert.Equal(t, "original", c.At(0).Text)
}

func TestConversation_SystemPrompt(t *testing.T) {
	c := convo.NewConversation(
		convo.New(convo.User, "first"),
		convo.New(convo.System, "rules here"),
	)

	assert.Equal(t, "rules here", c.SystemPrompt())
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, convo.System.Valid())
	assert.True(t, convo.User.Valid())
	assert.True(t, convo.Assistant.Valid())
	assert.False(t, convo.Role("tool").Valid())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "user", convo.User.String())
}
