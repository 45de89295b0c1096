package config

// AlignSettings holds timestamp validation parameters.
type AlignSettings struct {
	// PauseGapSec is the silence length between two words beyond which the
	// gap is considered a deliberate pause rather than an alignment artifact.
	PauseGapSec float64
}

// Config holds the full application configuration.
type Config struct {
	AlignSettings

	ProbeAudio bool
}

// Default returns a Config with hardcoded defaults matching the Python version.
func Default() *Config {
	return &Config{
		AlignSettings: AlignSettings{
			PauseGapSec: 0.5,
		},
		ProbeAudio: true,
	}
}
