package config

const (
	// DefaultLogLevel keeps tolerated scan anomalies visible without -v.
	DefaultLogLevel = "warn"
	// DefaultLogFormat is the human-oriented console format.
	DefaultLogFormat = "console"

	defaultStateDir       = "~/.local/state/paradox-patch"
	defaultLibraryURL     = "https://github.com/inflation/goldberg_emulator/releases/download/8b9ce58/libsteam_api.dylib"
	defaultLibraryMirror  = "https://ghproxy.com/" + defaultLibraryURL
	defaultTimeoutSeconds = 120
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Patch: Patch{
			URL:            defaultLibraryURL,
			ProxyURL:       defaultLibraryMirror,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
	}
}
