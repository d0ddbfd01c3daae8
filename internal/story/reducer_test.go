package story

import (
	"errors"
	"testing"
)

func ids(stories []Story) []ID {
	out := make([]ID, len(stories))
	for i, s := range stories {
		out[i] = s.ObjectID
	}
	return out
}

func equalIDs(a, b []ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestReplaceAllIgnoresPriorState(t *testing.T) {
	payload := []Story{{Title: "A", ObjectID: "a"}, {Title: "B", ObjectID: "b"}}

	priors := []State{
		{},
		{Stories: Seed()},
		{Stories: Seed(), IsLoading: true},
		{Stories: Seed()[:1], IsError: true},
	}
	for i, prior := range priors {
		got := Reduce(prior, Action{Kind: FetchSuccess, Stories: payload})
		if !equalIDs(ids(got.Stories), []ID{"a", "b"}) {
			t.Errorf("prior %d: stories = %v, want [a b]", i, ids(got.Stories))
		}
		if got.IsLoading || got.IsError {
			t.Errorf("prior %d: expected flags cleared, got loading=%v error=%v", i, got.IsLoading, got.IsError)
		}
	}
}

func TestReplaceAllCopiesPayload(t *testing.T) {
	payload := Seed()
	got := Reduce(State{}, Action{Kind: FetchSuccess, Stories: payload})
	payload[0].Title = "changed"
	if got.Stories[0].Title != "React" {
		t.Errorf("state aliases payload: %q", got.Stories[0].Title)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name   string
		target ID
		want   []ID
	}{
		{"first", "0", []ID{"1", "2"}},
		{"middle", "1", []ID{"0", "2"}},
		{"last", "2", []ID{"0", "1"}},
		{"missing", "42", []ID{"0", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior := State{Stories: Seed()}
			got := Reduce(prior, Action{Kind: Remove, Story: Story{ObjectID: tt.target}})
			if !equalIDs(ids(got.Stories), tt.want) {
				t.Errorf("stories = %v, want %v", ids(got.Stories), tt.want)
			}
			if len(prior.Stories) != 3 {
				t.Errorf("prior state mutated: %v", ids(prior.Stories))
			}
		})
	}
}

func TestRemoveAllSharingID(t *testing.T) {
	stories := []Story{{ObjectID: "x"}, {ObjectID: "y"}, {ObjectID: "x"}}
	got := Without(stories, Story{ObjectID: "x"})
	if !equalIDs(ids(got), []ID{"y"}) {
		t.Errorf("Without = %v, want [y]", ids(got))
	}
}

func TestRemoveKeepsFlags(t *testing.T) {
	got := Reduce(State{Stories: Seed(), IsError: true}, Action{Kind: Remove, Story: Seed()[0]})
	if !got.IsError || got.IsLoading {
		t.Errorf("flags changed by remove: %+v", got)
	}
}

func TestFetchLifecycle(t *testing.T) {
	s := Reduce(State{IsError: true}, Action{Kind: FetchInit})
	if !s.IsLoading || s.IsError {
		t.Fatalf("after init: loading=%v error=%v", s.IsLoading, s.IsError)
	}

	failed := Reduce(s, Action{Kind: FetchFailure})
	if failed.IsLoading {
		t.Error("expected loading cleared on failure")
	}
	if !failed.IsError {
		t.Error("expected error set on failure")
	}

	ok := Reduce(s, Action{Kind: FetchSuccess, Stories: Seed()[:2]})
	if ok.IsLoading || ok.IsError {
		t.Errorf("after success: loading=%v error=%v", ok.IsLoading, ok.IsError)
	}
	if !equalIDs(ids(ok.Stories), []ID{"0", "1"}) {
		t.Errorf("stories = %v, want [0 1]", ids(ok.Stories))
	}
}

func TestUnknownActionPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown action")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownAction) {
			t.Errorf("panic value = %v, want ErrUnknownAction", r)
		}
	}()
	Reduce(State{}, Action{Kind: ActionKind(99)})
}

func TestZeroActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero-value action")
		}
	}()
	Reduce(State{}, Action{})
}
