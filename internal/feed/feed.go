package feed

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xanthek/hackerstories/internal/config"
	"github.com/xanthek/hackerstories/internal/story"
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]story.Story, error)
}

// New returns the Fetcher for source. client may be nil.
func New(source config.Source, client *http.Client) (Fetcher, error) {
	if client == nil {
		client = http.DefaultClient
	}
	switch source.Type {
	case "algolia", "":
		return NewAlgoliaFetcher(source.URL, source.Query, client), nil
	case "rss":
		return NewRSSFetcher(source.URL, client), nil
	case "demo":
		return StaticFetcher(story.Seed()), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", source.Type)
	}
}

// ResultAction maps the outcome of a fetch to the action that records it.
func ResultAction(stories []story.Story, err error) story.Action {
	if err != nil {
		return story.Action{Kind: story.FetchFailure}
	}
	return story.Action{Kind: story.FetchSuccess, Stories: stories}
}

// StaticFetcher serves a fixed list without touching the network.
type StaticFetcher []story.Story

func (f StaticFetcher) Fetch(ctx context.Context) ([]story.Story, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return story.ReplaceAll(f), nil
}
