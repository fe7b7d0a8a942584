// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the Munro query tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/munro/internal/dataset"
	"github.com/starford/munro/internal/munroservice"
)

// Server wraps the MCP server with the Munro query tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *munroservice.Service
	store *dataset.Store
}

// New creates a new MCP server with all tools registered.
func New(svc *munroservice.Service, store *dataset.Store) *Server {
	s := &Server{svc: svc, store: store}

	s.mcp = server.NewMCPServer(
		"Munro",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_munros",
		mcp.WithDescription("List classified Munros with optional category, height-range, "+
			"ordering and limit criteria. Heights are in metres; the maximum bound is exclusive."),
		mcp.WithString("hillCategory", mcp.Description("Category marker: MUN or TOP")),
		mcp.WithNumber("minHeight", mcp.Description("Minimum height in metres (inclusive)")),
		mcp.WithNumber("maxHeight", mcp.Description("Maximum height in metres (exclusive)")),
		mcp.WithString("orderHeightBy", mcp.Description("Order by height: asc or desc")),
		mcp.WithString("orderNameBy", mcp.Description("Order by name: asc or desc")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (positive integer)")),
	), s.listMunros)

	s.mcp.AddTool(mcp.NewTool("get_munro",
		mcp.WithDescription("Get a single Munro by its running number. Hills that lost their "+
			"post-1997 classification are reported as not found."),
		mcp.WithNumber("runningNo", mcp.Required(), mcp.Description("Running number of the hill")),
	), s.getMunro)

	s.mcp.AddTool(mcp.NewTool("dataset_info",
		mcp.WithDescription("Describe the loaded dataset: source file, checksum, load time and row count."),
	), s.datasetInfo)

	// Resource: dataset column and category reference.
	s.mcp.AddResource(
		mcp.NewResource("munro://dataset-reference", "Munro Dataset Reference",
			mcp.WithResourceDescription("Column and category reference for the munrotab dataset."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDatasetReference,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listMunros(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var c munroservice.Criteria
	if v, ok := args["hillCategory"].(string); ok && v != "" {
		c.Category = &v
	}
	if v, ok := args["orderHeightBy"].(string); ok && v != "" {
		c.OrderHeightBy = &v
	}
	if v, ok := args["orderNameBy"].(string); ok && v != "" {
		c.OrderNameBy = &v
	}
	if v, ok := args["minHeight"].(float64); ok {
		c.MinHeight = &v
	}
	if v, ok := args["maxHeight"].(float64); ok {
		c.MaxHeight = &v
	}
	if v, ok := args["limit"].(float64); ok {
		n := int(v)
		c.Limit = &n
	}

	munros, err := s.svc.Query(ctx, c)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(munros, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getMunro(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runningNo, err := req.RequireInt("runningNo")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.svc.FindByRunningNumber(ctx, runningNo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("no munro with runningNo: %d", runningNo)), nil
	}
	out, _ := json.MarshalIndent(m, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) datasetInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info := map[string]any{
		"source":   s.store.SourcePath(),
		"checksum": s.store.Checksum(),
		"loadedAt": s.store.LoadedAt(),
		"munros":   s.store.Len(),
	}
	out, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readDatasetReference(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "munro://dataset-reference",
			MIMEType: "text/markdown",
			Text:     DatasetReference,
		},
	}, nil
}
