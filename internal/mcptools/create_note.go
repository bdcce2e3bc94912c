package mcptools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateNoteHandler returns the handler function for the create_note MCP tool.
func CreateNoteHandler(store storage.Storage, logger *slog.Logger) func(ctx context.Context, req *mcp.CallToolRequest, input CreateNoteInput) (*mcp.CallToolResult, CreateNoteOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateNoteInput) (*mcp.CallToolResult, CreateNoteOutput, error) {
		title := strings.TrimSpace(input.Title)
		if err := note.ValidateTitle(title); err != nil {
			return nil, CreateNoteOutput{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}

		n, err := store.Create(title)
		if err != nil {
			return nil, CreateNoteOutput{}, err
		}
		if input.Content != "" {
			if err := store.UpdateContent(n.ID, input.Content); err != nil {
				return nil, CreateNoteOutput{}, err
			}
		}
		// Tags go through the same parsing as the tag editor.
		if tags := note.ParseTags(strings.Join(input.Tags, ",")); len(tags) > 0 {
			if err := store.UpdateTags(n.ID, tags); err != nil {
				return nil, CreateNoteOutput{}, err
			}
		}

		n, err = store.Get(n.ID)
		if err != nil {
			return nil, CreateNoteOutput{}, err
		}
		logger.Info("note created over mcp", "id", n.ID, "title", n.Title)
		return nil, CreateNoteOutput{Note: toResult(n)}, nil
	}
}
