package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/xanthek/hackerstories/internal/config"
	"github.com/xanthek/hackerstories/internal/feed"
	"github.com/xanthek/hackerstories/internal/kv"
	"github.com/xanthek/hackerstories/internal/tui"
)

func warn(err error) {
	fmt.Fprintf(os.Stderr, "  [warn] %v\n", err)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDemo {
		cfg.Source = config.Source{Name: "Demo", Type: "demo"}
	}
	return cfg, nil
}

// openStore opens the configured state store. A store that cannot be
// opened degrades to memory so the app still runs, minus persistence.
func openStore(cfg *config.Config, logger *slog.Logger) kv.Store {
	backend := cfg.StoreBackend()
	store, err := kv.New(backend, cfg.StoreDir())
	if err != nil {
		warn(fmt.Errorf("opening %s store, search term will not be saved: %w", backend, err))
		logger.Warn("opening store", "backend", backend, "error", err)
		return kv.NewMemoryStore()
	}
	return store
}

func newFetcher(cfg *config.Config) (feed.Fetcher, error) {
	f, err := feed.New(cfg.Source, &http.Client{})
	if err != nil {
		return nil, fmt.Errorf("configuring source: %w", err)
	}
	return f, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(cfg, logger)
	defer store.Close()

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	term := kv.Load(store, cfg.Key(), cfg.DefaultSearch, logger)
	if cmd.Flags().Changed("search") {
		term.Set(flagSearch)
	}

	logger.Info("starting", "version", version, "source", cfg.Source.Name, "store", cfg.StoreBackend())

	return tui.Run(tui.RunOpts{
		Cfg:     cfg,
		Fetcher: fetcher,
		Term:    term,
		Logger:  logger,
	})
}
