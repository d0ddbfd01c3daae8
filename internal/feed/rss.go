package feed

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/mmcdole/gofeed"
	"github.com/xanthek/hackerstories/internal/story"
)

var (
	pointsPattern   = regexp.MustCompile(`Points:\s*(\d+)`)
	commentsPattern = regexp.MustCompile(`# Comments:\s*(\d+)`)
)

// RSSFetcher reads stories from an RSS or Atom feed such as hnrss.org.
type RSSFetcher struct {
	url    string
	parser *gofeed.Parser
}

func NewRSSFetcher(feedURL string, client *http.Client) *RSSFetcher {
	p := gofeed.NewParser()
	p.Client = client
	return &RSSFetcher{url: feedURL, parser: p}
}

func (f *RSSFetcher) Fetch(ctx context.Context) ([]story.Story, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.url, err)
	}

	stories := make([]story.Story, 0, len(feed.Items))
	seen := make(map[story.ID]bool, len(feed.Items))
	for _, item := range feed.Items {
		s := itemStory(item)
		if seen[s.ObjectID] {
			continue
		}
		seen[s.ObjectID] = true
		stories = append(stories, s)
	}
	return stories, nil
}

func itemStory(item *gofeed.Item) story.Story {
	id := item.GUID
	if id == "" {
		id = itemID(item.Link)
	}

	var author string
	switch {
	case item.Author != nil && item.Author.Name != "":
		author = item.Author.Name
	case len(item.Authors) > 0 && item.Authors[0] != nil:
		author = item.Authors[0].Name
	}

	return story.Story{
		Title:       item.Title,
		URL:         item.Link,
		Author:      author,
		NumComments: firstInt(commentsPattern, item.Description),
		Points:      firstInt(pointsPattern, item.Description),
		ObjectID:    story.ID(id),
	}
}

func itemID(link string) string {
	h := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", h[:16])
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
