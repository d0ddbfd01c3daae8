package story

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID identifies a story. The search API sends objectID as a string, the
// bundled seed data uses integers; both decode to the same form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding objectID: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding objectID: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type Story struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
	ObjectID    ID     `json:"objectID"`
}

// Filter returns the stories whose title contains term, ignoring case.
// An empty term keeps everything; an untitled story never matches a
// non-empty term.
func Filter(stories []Story, term string) []Story {
	if term == "" {
		return stories
	}
	needle := strings.ToLower(term)
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if s.Title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Seed returns the bundled demo stories.
func Seed() []Story {
	return []Story{
		{
			Title:       "React",
			URL:         "https://reactjs.org/",
			Author:      "Jordan Walke",
			NumComments: 3,
			Points:      4,
			ObjectID:    "0",
		},
		{
			Title:       "Redux",
			URL:         "https://redux.js.org/",
			Author:      "Dan Abramov, Andrew Clark",
			NumComments: 2,
			Points:      5,
			ObjectID:    "1",
		},
		{
			Title:       "Redux",
			URL:         "https://redux.js.org/",
			Author:      "Dan Abramov, Andrew Clark",
			NumComments: 1,
			Points:      5,
			ObjectID:    "2",
		},
	}
}
