package jql

import "fmt"

// SystemPrompt is the fixed instruction block sent with every request. It
// encodes the JQL formatting rules the generated query must satisfy for the
// downstream Jira instance.
const SystemPrompt = `You are a helpful assistant that generates JQL queries for Jira based on natural language descriptions.
Follow these strict rules when creating JQL queries:
1. For Epics, ALWAYS use 'issuetype = "Program Epic"' (never use just 'Epic')
2. For Features, always use 'issuetype = "Feature"'
3. For Stories, use 'issuetype = "Story"'
4. For Enablers, use 'issuetype = "Enabler"'
5. When checking for text matches, use the tilde operator (~)
6. When dealing with parent/child relationships:
   - Use 'parent in (issue in ...)' for parent relationships
   - Use 'issue in (...)' for direct relationships
7. Always use proper parentheses for complex conditions with AND/OR
8. Remove any backticks or formatting from the output

Respond only with the JQL query, without any explanations or additional text.`

// GenerateMessage builds the user message for the generate action. The
// intent is embedded verbatim; no validation is performed, so an empty
// intent is sent as-is.
func GenerateMessage(intent string) string {
	return fmt.Sprintf("Create a JQL query for the following request: %s", intent)
}

// RefineMessage builds the user message for the refine action, combining the
// original intent with the Jira error message it produced.
func RefineMessage(intent, jiraErr string) string {
	return fmt.Sprintf("Original query: %s\nJira error: %s\nPlease fix the JQL query based on this error.", intent, jiraErr)
}
