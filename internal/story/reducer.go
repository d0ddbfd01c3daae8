package story

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is the panic value (wrapped) raised by Reduce for an
// action kind it does not handle.
var ErrUnknownAction = errors.New("story: unknown action")

type ActionKind int

const (
	FetchInit ActionKind = iota + 1
	FetchSuccess
	FetchFailure
	Remove
)

func (k ActionKind) String() string {
	switch k {
	case FetchInit:
		return "fetch-init"
	case FetchSuccess:
		return "fetch-success"
	case FetchFailure:
		return "fetch-failure"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is a command for Reduce. Stories is the payload of FetchSuccess,
// Story the payload of Remove.
type Action struct {
	Kind    ActionKind
	Stories []Story
	Story   Story
}

type State struct {
	Stories   []Story
	IsLoading bool
	IsError   bool
}

// Reduce applies a to s and returns the new state. It never mutates s.
// An unrecognized action kind is a programming error and panics.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case FetchInit:
		s.IsLoading = true
		s.IsError = false
		return s
	case FetchSuccess:
		s.Stories = ReplaceAll(a.Stories)
		s.IsLoading = false
		s.IsError = false
		return s
	case FetchFailure:
		s.IsLoading = false
		s.IsError = true
		return s
	case Remove:
		s.Stories = Without(s.Stories, a.Story)
		return s
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind))
	}
}

// ReplaceAll returns a copy of payload as the new collection.
func ReplaceAll(payload []Story) []Story {
	out := make([]Story, len(payload))
	copy(out, payload)
	return out
}

// Without returns stories minus every element sharing target's objectID.
func Without(stories []Story, target Story) []Story {
	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if s.ObjectID == target.ObjectID {
			continue
		}
		out = append(out, s)
	}
	return out
}
