package tui

import (
	"github.com/xanthek/hackerstories/internal/story"
)

// storiesFetchedMsg carries the outcome of the one startup fetch.
type storiesFetchedMsg struct {
	stories []story.Story
	err     error
}

type openErrMsg struct {
	err error
}
