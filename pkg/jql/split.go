package jql

import "strings"

// Result is the parsed form of a model reply: the query itself and an
// optional explanation.
type Result struct {
	Query       string
	Explanation string
	// Parsed reports whether the reply followed the expected
	// "query, blank line, explanation" shape. When false the whole reply
	// was taken as the query and Explanation is empty.
	Parsed bool
}

// ParseReply splits a raw model reply into a query and an explanation. The
// split happens at the first blank line; the query side is trimmed and has
// all backtick and code-fence markers stripped. This is a best-effort parse
// of a conventional shape, not a validation: a reply without a blank line
// degrades to the whole text as the query with Parsed set to false.
func ParseReply(raw string) Result {
	query, explanation, found := strings.Cut(raw, "\n\n")

	query = strings.ReplaceAll(query, "```", "")
	query = strings.ReplaceAll(query, "`", "")
	query = strings.TrimSpace(query)

	return Result{
		Query:       query,
		Explanation: explanation,
		Parsed:      found,
	}
}
