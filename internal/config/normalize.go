package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDecoder()
	c.normalizeIdentity()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("SLIPSTATS_REPLAY_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.ReplayDir = strings.TrimSpace(value)
	}
	var err error
	if c.Paths.ReplayDir, err = expandPath(strings.TrimSpace(c.Paths.ReplayDir)); err != nil {
		return fmt.Errorf("paths.replay_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir()
	}
	if c.Paths.CacheDir, err = expandPath(strings.TrimSpace(c.Paths.CacheDir)); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDecoder() {
	c.Decoder.Binary = strings.TrimSpace(c.Decoder.Binary)
	if c.Decoder.Binary == "" {
		c.Decoder.Binary = defaultDecoderBinary
	}
	ext := strings.ToLower(strings.TrimSpace(c.Decoder.Extension))
	if ext == "" {
		ext = defaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Decoder.Extension = ext
}

func (c *Config) normalizeIdentity() {
	if c.Identity.Code == "" {
		if value, ok := os.LookupEnv("SLIPSTATS_CODE"); ok {
			c.Identity.Code = value
		}
	}
	if c.Identity.Nickname == "" {
		if value, ok := os.LookupEnv("SLIPSTATS_NICKNAME"); ok {
			c.Identity.Nickname = value
		}
	}
	c.Identity.Code = strings.TrimSpace(c.Identity.Code)
	c.Identity.Nickname = strings.TrimSpace(c.Identity.Nickname)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
