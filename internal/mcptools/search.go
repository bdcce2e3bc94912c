package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/notectl/internal/note"
	"github.com/chris-regnier/notectl/internal/storage"
	"github.com/chris-regnier/notectl/internal/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultLimit = 20

// SearchHandler returns the handler function for the search_notes MCP tool.
// It derives results the same way the TUI list does.
func SearchHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = defaultLimit
		}

		notes, err := store.List()
		if err != nil {
			return nil, SearchOutput{}, err
		}

		state := view.New()
		switch {
		case input.Tag != "":
			state.SetFilter(view.Tag{Name: input.Tag})
		case input.IncludeArchived:
			state.SetFilter(view.All{})
		}
		switch input.SortBy {
		case "", "title":
		case "tags":
			state.ToggleSort()
		default:
			return nil, SearchOutput{}, fmt.Errorf("%w: unknown sort %q", storage.ErrValidation, input.SortBy)
		}
		state.SetQuery(input.Query)
		state.ReplaceAll(notes)

		results := []NoteResult{}
		for _, n := range state.Displayed() {
			if len(results) >= limit {
				break
			}
			results = append(results, toResult(n))
		}
		return nil, SearchOutput{Notes: results}, nil
	}
}

func toResult(n note.Note) NoteResult {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResult{
		ID:       n.ID,
		Title:    n.Title,
		Tags:     tags,
		Archived: n.Archived,
		Preview:  n.Preview(100),
	}
}
