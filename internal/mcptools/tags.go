package mcptools

import (
	"context"

	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListTagsHandler returns the handler function for the list_tags MCP tool.
func ListTagsHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListTagsInput) (*mcp.CallToolResult, ListTagsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListTagsInput) (*mcp.CallToolResult, ListTagsOutput, error) {
		notes, err := store.List()
		if err != nil {
			return nil, ListTagsOutput{}, err
		}
		if !input.IncludeArchived {
			active := notes[:0:0]
			for _, n := range notes {
				if !n.Archived {
					active = append(active, n)
				}
			}
			notes = active
		}

		tags := []TagResult{}
		for _, c := range view.CountTags(notes) {
			tags = append(tags, TagResult{Tag: c.Tag, Count: c.Count})
		}
		return nil, ListTagsOutput{Tags: tags}, nil
	}
}
