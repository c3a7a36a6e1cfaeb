package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"slipstats/internal/decodecache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the decode cache",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

// withCache opens the store for the duration of fn. Unlike scans, cache
// maintenance fails outright when another process holds the lock.
func withCache(ctx *commandContext, cmd *cobra.Command, fn func(*decodecache.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := decodecache.Open(cmd.Context(), cfg.CacheDBPath())
	if err != nil {
		if errors.Is(err, decodecache.ErrLocked) {
			return fmt.Errorf("%w; retry once the other run finishes", err)
		}
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show decode cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(store *decodecache.Store) error {
				st, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, st)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Cache:   %s\n", st.Path)
				fmt.Fprintf(out, "Entries: %d\n", st.Entries)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit cache statistics as JSON")
	return cmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop cached entries whose replay files no longer exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(store *decodecache.Store) error {
				removed, err := store.Prune(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d cache entries\n", removed)
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(store *decodecache.Store) error {
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Decode cache cleared")
				return nil
			})
		},
	}
}
