package view

import "github.com/chris-regnier/notectl/internal/note"

// TagCount is a tag with the number of notes carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CountTags tallies tags across notes, in the order tags are first seen.
func CountTags(notes []note.Note) []TagCount {
	index := make(map[string]int)
	var counts []TagCount
	for _, n := range notes {
		for _, t := range n.Tags {
			i, ok := index[t]
			if !ok {
				i = len(counts)
				index[t] = i
				counts = append(counts, TagCount{Tag: t})
			}
			counts[i].Count++
		}
	}
	return counts
}
