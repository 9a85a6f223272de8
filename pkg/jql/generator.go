// Package jql turns natural-language search intents into Jira JQL queries by
// prompting a chat-completion endpoint with a fixed rule set and parsing the
// reply into a query plus an optional explanation.
package jql

import (
	"context"
	"fmt"

	"jqlgen/pkg/completion"
	"jqlgen/pkg/convo"
)

// Generator produces JQL queries through a completion client. Each call
// builds a fresh two-message conversation (system rules + user request),
// issues exactly one completion, and parses the reply. Completion failures
// propagate as typed errors; they are never folded into the Result.
type Generator struct {
	completer completion.Completer
}

// NewGenerator creates a Generator backed by the given completer.
func NewGenerator(c completion.Completer) *Generator {
	return &Generator{completer: c}
}

// Generate asks the model for a JQL query matching the natural-language
// intent.
func (g *Generator) Generate(ctx context.Context, intent string) (Result, error) {
	return g.complete(ctx, GenerateMessage(intent))
}

// Refine asks the model to correct a query given the Jira error message the
// original intent produced.
func (g *Generator) Refine(ctx context.Context, intent, jiraErr string) (Result, error) {
	return g.complete(ctx, RefineMessage(intent, jiraErr))
}

func (g *Generator) complete(ctx context.Context, userMsg string) (Result, error) {
	c := convo.NewConversation(
		convo.New(convo.System, SystemPrompt),
		convo.New(convo.User, userMsg),
	)

	reply, err := g.completer.Complete(ctx, c)
	if err != nil {
		return Result{}, fmt.Errorf("jql: %w", err)
	}

	return ParseReply(reply), nil
}
