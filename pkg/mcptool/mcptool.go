// Package mcptool serves the JQL generator as MCP tools so editors and
// agents can call generate_jql and refine_jql over the MCP protocol.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jqlgen/pkg/jql"
)

// Server serves JQL generation tools over MCP using the official MCP Go SDK.
type Server struct {
	server *mcp.Server
	gen    *jql.Generator
}

// New creates a Server exposing generate_jql and refine_jql backed by gen.
func New(name, version string, gen *jql.Generator) *Server {
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
		gen: gen,
	}

	s.server.AddTool(&mcp.Tool{
		Name:        "generate_jql",
		Description: "Generate a Jira JQL query from a natural language description.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"intent": {"type": "string", "description": "Plain English description of the search"}
			},
			"required": ["intent"]
		}`),
	}, s.handleGenerate)

	s.server.AddTool(&mcp.Tool{
		Name:        "refine_jql",
		Description: "Fix a JQL query given the Jira error message it produced.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"intent": {"type": "string", "description": "The original search description"},
				"error": {"type": "string", "description": "The error message Jira returned"}
			},
			"required": ["intent", "error"]
		}`),
	}, s.handleRefine)

	return s
}

// Serve starts serving MCP requests. It reads requests from in and writes
// responses to out. It blocks until ctx is cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

// run starts the server with the given transport. Exported via Serve for
// production use; called directly by tests with InMemoryTransport.
func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

type generateArgs struct {
	Intent string `json:"intent"`
}

type refineArgs struct {
	Intent string `json:"intent"`
	Error  string `json:"error"`
}

func (s *Server) handleGenerate(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args generateArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return toolError(err), nil
	}

	res, err := s.gen.Generate(ctx, args.Intent)
	if err != nil {
		return toolError(err), nil
	}

	return toolResult(res), nil
}

func (s *Server) handleRefine(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args refineArgs
	if err := unmarshalArgs(req, &args); err != nil {
		return toolError(err), nil
	}

	res, err := s.gen.Refine(ctx, args.Intent, args.Error)
	if err != nil {
		return toolError(err), nil
	}

	return toolResult(res), nil
}

func unmarshalArgs(req *mcp.CallToolRequest, dest any) error {
	raw := req.Params.Arguments
	if raw == nil {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("mcptool: bad arguments: %w", err)
	}
	return nil
}

// toolResult renders a parsed query as tool output: the query line, then the
// explanation as a second paragraph when present.
func toolResult(res jql.Result) *mcp.CallToolResult {
	text := res.Query
	if res.Explanation != "" {
		text += "\n\n" + res.Explanation
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// toolError reports a failure as a tool error, not a protocol failure, so
// the calling agent sees the message and the session stays alive.
func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
