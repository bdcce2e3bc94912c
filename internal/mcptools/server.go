package mcptools

import (
	"context"
	"log/slog"

	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewNotesMCPServer creates an in-memory MCP server exposing note tools.
// Returns the server and a client transport for connecting to it.
func NewNotesMCPServer(store storage.Storage) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, nil)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered note tools.
func CreateMCPServer(store storage.Storage, logger *slog.Logger) *mcp.Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notectl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Search notes by title, optionally narrowed to a tag",
	}, SearchHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag with the number of notes carrying it",
	}, ListTagsHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note with a unique title, optional content and tags",
	}, CreateNoteHandler(store, logger))

	return server
}
