package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"slipstats/internal/config"
	"slipstats/internal/corpus"
	"slipstats/internal/decodecache"
	"slipstats/internal/identity"
	"slipstats/internal/logging"
	"slipstats/internal/replay"
	"slipstats/internal/services/slptool"
	"slipstats/internal/stats"
)

type rootFlags struct {
	config   string
	workers  int
	noCache  bool
	logLevel string
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.flags != nil {
			path = strings.TrimSpace(c.flags.config)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.flags != nil {
			if c.flags.workers > 0 {
				cfg.Scan.Workers = c.flags.workers
			}
			if c.flags.noCache {
				cfg.Scan.CacheEnabled = false
			}
			if lvl := strings.TrimSpace(c.flags.logLevel); lvl != "" {
				cfg.Logging.Level = strings.ToLower(lvl)
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

func (c *commandContext) decoder(cfg *config.Config) replay.Decoder {
	timeout := time.Duration(cfg.Decoder.TimeoutSeconds) * time.Second
	return slptool.New(cfg.DecoderBinary(), timeout)
}

// openCache returns nil when caching is disabled or unavailable; the caller
// then decodes everything directly.
func (c *commandContext) openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) *decodecache.Store {
	if !cfg.Scan.CacheEnabled {
		return nil
	}
	store, err := decodecache.Open(ctx, cfg.CacheDBPath())
	if err != nil {
		hint := "check permissions on the cache directory or run with --no-cache"
		if errors.Is(err, decodecache.ErrLocked) {
			hint = "wait for the other slipstats run to finish"
		}
		logging.WarnWithContext(logger, "decode cache unavailable", "decode_cache_open_failed",
			logging.String(logging.FieldPath, cfg.CacheDBPath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hint),
			logging.String(logging.FieldImpact, "every replay is decoded from scratch"))
		return nil
	}
	return store
}

// scan resolves the corpus root from args or config and decodes it. A
// cancelled scan returns the partial corpus alongside the context error.
func (c *commandContext) scan(cmd *cobra.Command, args []string) (*corpus.Corpus, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	root := cfg.Paths.ReplayDir
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		if root, err = config.ExpandPath(strings.TrimSpace(args[0])); err != nil {
			return nil, fmt.Errorf("resolve replay directory: %w", err)
		}
	}

	baseLogger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.WithScanID(baseLogger, logging.NewScanID())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	decoder := c.decoder(cfg)
	if store := c.openCache(ctx, cfg, logger); store != nil {
		defer store.Close()
		decoder = decodecache.Wrap(store, decoder, logger)
	}

	scanner := corpus.NewScanner(decoder, logger, corpus.Options{
		Extension: cfg.Decoder.Extension,
		Workers:   cfg.Scan.Workers,
	})
	return scanner.Scan(ctx, root)
}

func (c *commandContext) aggregator() stats.Aggregator {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return stats.Aggregator{}
	}
	return stats.Aggregator{Workers: cfg.Scan.Workers}
}

type queryFlags struct {
	code     string
	nickname string
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.code, "code", "", "Connect code to match (e.g. ABC#123)")
	cmd.Flags().StringVar(&q.nickname, "nickname", "", "Netplay display name to match")
	cmd.MarkFlagsMutuallyExclusive("code", "nickname")
}

// resolve prefers explicit flags, then the configured identity (code first).
func (q *queryFlags) resolve(cfg *config.Config) (identity.Query, error) {
	switch {
	case strings.TrimSpace(q.code) != "":
		return identity.Code(q.code), nil
	case strings.TrimSpace(q.nickname) != "":
		return identity.Nickname(q.nickname), nil
	case cfg != nil && cfg.Identity.Code != "":
		return identity.Code(cfg.Identity.Code), nil
	case cfg != nil && cfg.Identity.Nickname != "":
		return identity.Nickname(cfg.Identity.Nickname), nil
	default:
		return identity.Query{}, errors.New("no identity given: pass --code or --nickname, or set [identity] in the config")
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// partialNotice is printed when a scan was interrupted but results are still shown.
func partialNotice(cmd *cobra.Command, err error) {
	if err != nil && errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "scan interrupted; results cover the replays decoded so far")
	}
}
