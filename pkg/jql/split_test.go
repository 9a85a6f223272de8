package jql_test

import (
	"testing"

	"jqlgen/pkg/jql"

	"github.com/stretchr/testify/assert"
)

func TestParseReply_QueryAndExplanation(t *testing.T) {
	r := jql.ParseReply("project = ABC AND issuetype = \"Story\"\n\nThis finds all stories in ABC.")

	assert.True(t, r.Parsed)
	assert.Equal(t, `project = ABC AND issuetype = "Story"`, r.Query)
	assert.Equal(t, "This finds all stories in ABC.", r.Explanation)
}

func TestParseReply_NoBlankLine(t *testing.T) {
	r := jql.ParseReply("  issuetype = \"Feature\"  ")

	assert.False(t, r.Parsed)
	assert.Equal(t, `issuetype = "Feature"`, r.Query)
	assert.Empty(t, r.Explanation)
}

func TestParseReply_StripsBackticks(t *testing.T) {
	r := jql.ParseReply("`status = Open`\n\nOpen issues.")

	assert.Equal(t, "status = Open", r.Query)
	assert.Equal(t, "Open issues.", r.Explanation)
}

func TestParseReply_StripsCodeFences(t *testing.T) {
	r := jql.ParseReply("```\nstatus = Open AND assignee = currentUser()\n```")

	assert.Equal(t, "status = Open AND assignee = currentUser()", r.Query)
}

func TestParseReply_SplitsOnFirstBlankLineOnly(t *testing.T) {
	r := jql.ParseReply("Q\n\nfirst paragraph\n\nsecond paragraph")

	assert.Equal(t, "Q", r.Query)
	assert.Equal(t, "first paragraph\n\nsecond paragraph", r.Explanation)
}

func TestParseReply_Empty(t *testing.T) {
	r := jql.ParseReply("")

	assert.False(t, r.Parsed)
	assert.Empty(t, r.Query)
	assert.Empty(t, r.Explanation)
}

func TestParseReply_BackticksOnlyStrippedFromQuery(t *testing.T) {
	r := jql.ParseReply("`Q`\n\nUse `currentUser()` here.")

	assert.Equal(t, "Q", r.Query)
	assert.Equal(t, "Use `currentUser()` here.", r.Explanation)
}
