package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xanthek/hackerstories/internal/config"
	"github.com/xanthek/hackerstories/internal/kv"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Show the remembered search term",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg *config.Config, store kv.Store) error {
			v, ok, err := store.Get(cfg.Key())
			if err != nil {
				return fmt.Errorf("reading search term: %w", err)
			}
			if !ok || v == "" {
				fmt.Println("No search term saved.")
				return nil
			}
			fmt.Println(v)
			return nil
		})
	},
}

var searchSetCmd = &cobra.Command{
	Use:   "set <term>",
	Short: "Remember a search term for the next run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg *config.Config, store kv.Store) error {
			if err := store.Set(cfg.Key(), args[0]); err != nil {
				return fmt.Errorf("saving search term: %w", err)
			}
			fmt.Printf("Saved search term %q.\n", args[0])
			return nil
		})
	},
}

var searchClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the remembered search term",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg *config.Config, store kv.Store) error {
			existed, err := store.Delete(cfg.Key())
			if err != nil {
				return fmt.Errorf("clearing search term: %w", err)
			}
			if existed {
				fmt.Println("Search term cleared.")
			} else {
				fmt.Println("Nothing to clear.")
			}
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show where state is kept and what it holds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(cfg *config.Config, store kv.Store) error {
			keys, err := store.Keys()
			if err != nil {
				return fmt.Errorf("reading keys: %w", err)
			}

			fmt.Printf("Config: %s\n", configPath())
			fmt.Printf("Store: %s (%s)\n", cfg.StoreBackend(), kv.Location(cfg.StoreBackend(), cfg.StoreDir()))
			fmt.Printf("Source: %s (%s)\n", cfg.Source.Name, cfg.Source.Type)
			fmt.Printf("Keys: %d\n", len(keys))
			for _, k := range keys {
				v, _, err := store.Get(k)
				if err != nil {
					return fmt.Errorf("reading %q: %w", k, err)
				}
				fmt.Printf("  %s = %q\n", k, v)
			}
			return nil
		})
	},
}

func init() {
	searchCmd.AddCommand(searchSetCmd)
	searchCmd.AddCommand(searchClearCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultConfigPath()
}

// withStore opens the configured store for a one-shot command. Unlike the
// TUI it does not fall back to memory: editing a store that vanishes on
// exit would be pointless.
func withStore(fn func(*config.Config, kv.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := kv.New(cfg.StoreBackend(), cfg.StoreDir())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}
