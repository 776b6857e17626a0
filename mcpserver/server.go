// Package mcpserver exposes the identifier codec as Model Context Protocol
// tools over stdio.
package mcpserver

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/teranos/rnokpp/display"
	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
	"github.com/teranos/rnokpp/rnokpp"
	"github.com/teranos/rnokpp/version"
)

// Tool names
const (
	ToolAnalyze  = "rnokpp_analyze"
	ToolGenerate = "rnokpp_generate"
	ToolCreate   = "rnokpp_create"
)

// Server wraps an rnokpp Generator and exposes it via Model Context Protocol
type Server struct {
	gen    *rnokpp.Generator
	server *server.MCPServer
	log    *zap.SugaredLogger
}

// New creates an MCP server whose generate tool draws from gen.
func New(gen *rnokpp.Generator) *Server {
	s := &Server{
		gen: gen,
		log: logger.ComponentLogger("mcp"),
	}

	s.server = server.NewMCPServer(
		"rnokpp",
		version.Get().Version,
		server.WithToolCapabilities(true),
	)

	s.registerTools()
	return s
}

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *server.MCPServer {
	return s.server
}

// Serve speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.server)
	stdio.SetErrorLogger(zap.NewStdLog(s.log.Desugar()))

	s.log.Infow("Serving MCP over stdio")
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "mcp stdio server")
	}
	return nil
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	analyzeTool := mcp.NewTool(ToolAnalyze,
		mcp.WithDescription("Check an RNOKPP (Ukrainian taxpayer number) and decode sex and date of birth"),
		mcp.WithString("ssn",
			mcp.Required(),
			mcp.Description("The 10-digit identifier"),
		),
	)
	s.server.AddTool(analyzeTool, s.handleAnalyze)

	generateTool := mcp.NewTool(ToolGenerate,
		mcp.WithDescription("Generate a synthetic RNOKPP with a valid check digit"),
		mcp.WithString("dob",
			mcp.Description("Date of birth, e.g. 2000-01-01 or 01.01.2000 (default: random)"),
		),
		mcp.WithString("sex",
			mcp.Description("M, male, F, female, ч or ж (default: random)"),
		),
	)
	s.server.AddTool(generateTool, s.handleGenerate)

	createTool := mcp.NewTool(ToolCreate,
		mcp.WithDescription("Wrap an RNOKPP as a value object with its decoded fields"),
		mcp.WithString("ssn",
			mcp.Required(),
			mcp.Description("The 10-digit identifier"),
		),
	)
	s.server.AddTool(createTool, s.handleCreate)
}

// handleAnalyze handles rnokpp_analyze tool calls
func (s *Server) handleAnalyze(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ssn, err := request.RequireString("ssn")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	a, err := rnokpp.Analyze(ssn)
	if err != nil {
		return s.toolError(ToolAnalyze, err), nil
	}

	s.toolLogger(ToolAnalyze).Debugw("Tool called", logger.FieldSSN, a.ID.Masked(), logger.FieldValid, a.IsValid)
	return jsonResult(a)
}

// handleGenerate handles rnokpp_generate tool calls
func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params, err := rnokpp.ParseParams(request.GetString("dob", ""), request.GetString("sex", ""))
	if err != nil {
		return s.toolError(ToolGenerate, err), nil
	}

	id, err := s.gen.Generate(params)
	if err != nil {
		return s.toolError(ToolGenerate, err), nil
	}

	a, err := id.Analyze()
	if err != nil {
		return s.toolError(ToolGenerate, err), nil
	}

	s.toolLogger(ToolGenerate).Debugw("Tool called", logger.FieldSSN, id.Masked())
	return jsonResult(a)
}

// handleCreate handles rnokpp_create tool calls
func (s *Server) handleCreate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ssn, err := request.RequireString("ssn")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := rnokpp.New(ssn)
	if err != nil {
		return s.toolError(ToolCreate, err), nil
	}

	s.toolLogger(ToolCreate).Debugw("Tool called", logger.FieldSSN, logger.MaskSSN(r.SSN()))
	return jsonResult(r)
}

// toolError reports a failed call to the client. Hints are included so
// the caller can correct its arguments.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.toolLogger(tool).Infow("Tool call rejected", logger.FieldError, err.Error())
	return mcp.NewToolResultError(errors.UserMessage(err))
}

func (s *Server) toolLogger(tool string) *zap.SugaredLogger {
	return logger.ChildLogger(s.log, logger.FieldTool, tool)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := display.MarshalCompactJSON(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal tool result")
	}
	return mcp.NewToolResultText(string(data)), nil
}
