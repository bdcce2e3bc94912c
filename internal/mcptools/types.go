package mcptools

// SearchInput is the input schema for the search_notes MCP tool.
type SearchInput struct {
	Query           string `json:"query,omitempty" jsonschema:"Case-insensitive text to match against note titles"`
	Tag             string `json:"tag,omitempty" jsonschema:"Only return notes carrying this tag"`
	IncludeArchived bool   `json:"include_archived,omitempty" jsonschema:"Include archived notes"`
	SortBy          string `json:"sort_by,omitempty" jsonschema:"Sort order: title (default) or tags"`
	Limit           int    `json:"limit,omitempty" jsonschema:"Maximum number of results to return"`
}

// SearchOutput is the output schema for the search_notes MCP tool.
type SearchOutput struct {
	Notes []NoteResult `json:"notes"`
}

// NoteResult is the common output format for note-related MCP tools.
type NoteResult struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Archived bool     `json:"archived"`
	Preview  string   `json:"preview"`
}

// ListTagsInput is the input schema for the list_tags MCP tool.
type ListTagsInput struct {
	IncludeArchived bool `json:"include_archived,omitempty" jsonschema:"Count tags on archived notes too"`
}

// ListTagsOutput is the output schema for the list_tags MCP tool.
type ListTagsOutput struct {
	Tags []TagResult `json:"tags"`
}

// TagResult is a tag with its note count.
type TagResult struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CreateNoteInput is the input schema for the create_note MCP tool.
type CreateNoteInput struct {
	Title   string   `json:"title" jsonschema:"Unique note title"`
	Content string   `json:"content,omitempty" jsonschema:"Note content"`
	Tags    []string `json:"tags,omitempty" jsonschema:"Tags to attach"`
}

// CreateNoteOutput is the output schema for the create_note MCP tool.
type CreateNoteOutput struct {
	Note NoteResult `json:"note"`
}
