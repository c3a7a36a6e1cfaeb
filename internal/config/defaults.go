package config

const (
	defaultConfigPath    = "~/.config/slipstats/config.toml"
	projectConfigName    = "slipstats.toml"
	defaultReplayDir     = "~/Slippi"
	defaultDecoderBinary = "slp"
	defaultDecodeTimeout = 30
	defaultExtension     = ".slp"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReplayDir: defaultReplayDir,
			CacheDir:  defaultCacheDir(),
		},
		Decoder: Decoder{
			Binary:         defaultDecoderBinary,
			TimeoutSeconds: defaultDecodeTimeout,
			Extension:      defaultExtension,
		},
		Scan: Scan{
			CacheEnabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
