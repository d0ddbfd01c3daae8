package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xanthek/hackerstories/internal/feed"
	"github.com/xanthek/hackerstories/internal/kv"
	"github.com/xanthek/hackerstories/internal/story"
)

var flagListSearch string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch stories once and print them",
	Long: `Fetch stories once and print the ones whose title matches the search term.

Uses the remembered search term unless --search is given. The remembered term is not changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, closeLog := newLogger()
		defer closeLog()

		fetcher, err := newFetcher(cfg)
		if err != nil {
			return err
		}

		term := flagListSearch
		if !cmd.Flags().Changed("search") {
			store := openStore(cfg, logger)
			term = kv.Load(store, cfg.Key(), cfg.DefaultSearch, logger).Get()
			store.Close()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TimeoutDuration())
		defer cancel()

		state, err := loadStories(ctx, fetcher)
		if state.IsError {
			logger.Warn("fetching stories", "error", err)
			return fmt.Errorf("fetching stories: %w", err)
		}

		printStories(os.Stdout, story.Filter(state.Stories, term))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagListSearch, "search", "", "filter by this title substring")
}

// loadStories runs the startup fetch through the reducer outside the TUI.
func loadStories(ctx context.Context, f feed.Fetcher) (story.State, error) {
	state := story.Reduce(story.State{}, story.Action{Kind: story.FetchInit})
	stories, err := f.Fetch(ctx)
	return story.Reduce(state, feed.ResultAction(stories, err)), err
}

func printStories(w io.Writer, stories []story.Story) {
	if len(stories) == 0 {
		fmt.Fprintln(w, "No stories found.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tCOMMENTS\tPOINTS\tURL")
	for _, s := range stories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", s.ObjectID, s.Title, s.Author, s.NumComments, s.Points, s.URL)
	}
	tw.Flush()
}
