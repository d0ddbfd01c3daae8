package story

import (
	"encoding/json"
	"testing"
)

func titles(stories []Story) []string {
	out := make([]string, len(stories))
	for i, s := range stories {
		out[i] = s.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	stories := []Story{
		{Title: "React", ObjectID: "0"},
		{Title: "Redux", ObjectID: "1"},
		{Title: "Vue", ObjectID: "2"},
	}

	tests := []struct {
		term string
		want []ID
	}{
		{"Re", []ID{"0", "1"}},
		{"re", []ID{"0", "1"}},
		{"RE", []ID{"0", "1"}},
		{"dux", []ID{"1"}},
		{"vue", []ID{"2"}},
		{"angular", nil},
		{"", []ID{"0", "1", "2"}},
	}
	for _, tt := range tests {
		got := Filter(stories, tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q) = %v, want ids %v", tt.term, titles(got), tt.want)
			continue
		}
		for i := range got {
			if got[i].ObjectID != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = %s, want %s", tt.term, i, got[i].ObjectID, tt.want[i])
			}
		}
	}
}

func TestFilterUntitled(t *testing.T) {
	stories := []Story{{ObjectID: "a"}, {Title: "Go 1.24", ObjectID: "b"}}

	if got := Filter(stories, "go"); len(got) != 1 || got[0].ObjectID != "b" {
		t.Errorf("expected only titled story to match, got %v", got)
	}
	if got := Filter(stories, ""); len(got) != 2 {
		t.Errorf("expected empty term to keep untitled stories, got %d", len(got))
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	stories := Seed()
	Filter(stories, "redux")
	if len(stories) != 3 || stories[0].Title != "React" {
		t.Errorf("input modified: %v", titles(stories))
	}
}

func TestObjectIDDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  ID
	}{
		{`{"objectID": "39412345"}`, "39412345"},
		{`{"objectID": 7}`, "7"},
		{`{"objectID": 0}`, "0"},
		{`{"objectID": null}`, ""},
		{`{}`, ""},
	}
	for _, tt := range tests {
		var s Story
		if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.input, err)
			continue
		}
		if s.ObjectID != tt.want {
			t.Errorf("Unmarshal(%s).ObjectID = %q, want %q", tt.input, s.ObjectID, tt.want)
		}
	}
}

func TestObjectIDDecodingRejectsObjects(t *testing.T) {
	var s Story
	if err := json.Unmarshal([]byte(`{"objectID": {"x": 1}}`), &s); err == nil {
		t.Error("expected error for object-valued objectID")
	}
}

func TestStoryDecodingNulls(t *testing.T) {
	input := `{"title": null, "url": null, "author": "pg", "num_comments": null, "points": 12, "objectID": "1"}`
	var s Story
	if err := json.Unmarshal([]byte(input), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Title != "" || s.URL != "" || s.NumComments != 0 {
		t.Errorf("expected zero values for null fields, got %+v", s)
	}
	if s.Author != "pg" || s.Points != 12 {
		t.Errorf("unexpected story: %+v", s)
	}
}

func TestSeedUniqueIDs(t *testing.T) {
	seen := make(map[ID]bool)
	for _, s := range Seed() {
		if seen[s.ObjectID] {
			t.Errorf("duplicate objectID %s", s.ObjectID)
		}
		seen[s.ObjectID] = true
	}
}
