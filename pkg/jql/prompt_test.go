package jql_test

import (
	"testing"

	"jqlgen/pkg/jql"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt_CarriesAllRules(t *testing.T) {
	rules := []string{
		`issuetype = "Program Epic"`,
		`issuetype = "Feature"`,
		`issuetype = "Story"`,
		`issuetype = "Enabler"`,
		"tilde operator (~)",
		"parent in (issue in ...)",
		"issue in (...)",
		"parentheses",
		"backticks",
		"without any explanations",
	}

	for _, rule := range rules {
		assert.Contains(t, jql.SystemPrompt, rule)
	}
}

func TestGenerateMessage_ContainsIntentVerbatim(t *testing.T) {
	msg := jql.GenerateMessage(`epics owned by "Platform" team`)

	assert.Contains(t, msg, `epics owned by "Platform" team`)
	assert.Contains(t, msg, "Create a JQL query")
}

func TestGenerateMessage_EmptyIntent(t *testing.T) {
	msg := jql.GenerateMessage("")

	assert.Equal(t, "Create a JQL query for the following request: ", msg)
}

func TestRefineMessage_ContainsBothInputsVerbatim(t *testing.T) {
	msg := jql.RefineMessage("open stories in ABC", `Field 'storypoints' does not exist`)

	assert.Contains(t, msg, "open stories in ABC")
	assert.Contains(t, msg, `Field 'storypoints' does not exist`)
	assert.Contains(t, msg, "fix the JQL query")
}
