package speech

import (
	"fmt"
	"strings"
	"time"
)

// Config contains all conversion and playback options.
type Config struct {
	// Pipeline settings
	AudioDir string `yaml:"audio_dir" env:"PETS_AUDIO_DIR"`
	DictPath string `yaml:"dict_path" env:"PETS_DICT_PATH"`

	// Playback settings
	WordGap    time.Duration `yaml:"word_gap" env:"PETS_WORD_GAP" envDefault:"500ms"`
	SampleRate int           `yaml:"sample_rate" env:"PETS_SAMPLE_RATE" envDefault:"22050"`
	Channels   int           `yaml:"channels" env:"PETS_CHANNELS" envDefault:"1"`

	// Logging settings
	LogLevel string `yaml:"log_level" env:"PETS_LOG_LEVEL" envDefault:"info"`
	LogFile  string `yaml:"log_file" env:"PETS_LOG_FILE"`
}

// DefaultConfig returns a Config with sensible defaults. The audio directory
// has no default; the user always picks it.
func DefaultConfig() Config {
	return Config{
		WordGap:    DefaultWordGap,
		SampleRate: 22050,
		Channels:   1,
		LogLevel:   "info",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.WordGap < 0 || c.WordGap > 5*time.Second {
		return fmt.Errorf("word_gap must be between 0s and 5s, got %v", c.WordGap)
	}

	validSampleRates := []int{8000, 16000, 22050, 24000, 44100, 48000}
	sampleRateValid := false
	for _, sr := range validSampleRates {
		if c.SampleRate == sr {
			sampleRateValid = true
			break
		}
	}
	if !sampleRateValid {
		return fmt.Errorf("invalid sample rate %d: must be one of %v", c.SampleRate, validSampleRates)
	}

	if c.Channels < 1 || c.Channels > 2 {
		return fmt.Errorf("channels must be 1 or 2, got %d", c.Channels)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	levelValid := false
	for _, l := range validLevels {
		if strings.EqualFold(c.LogLevel, l) {
			levelValid = true
			c.LogLevel = strings.ToLower(c.LogLevel)
			break
		}
	}
	if !levelValid {
		return fmt.Errorf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels)
	}

	return nil
}
