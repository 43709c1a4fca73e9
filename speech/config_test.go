package speech

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.WordGap != DefaultWordGap {
		t.Errorf("word gap = %v, want %v", cfg.WordGap, DefaultWordGap)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "negative word gap",
			mutate:  func(c *Config) { c.WordGap = -time.Second },
			wantErr: true,
		},
		{
			name:    "excessive word gap",
			mutate:  func(c *Config) { c.WordGap = time.Minute },
			wantErr: true,
		},
		{
			name:    "bogus sample rate",
			mutate:  func(c *Config) { c.SampleRate = 12345 },
			wantErr: true,
		},
		{
			name:   "stereo is allowed",
			mutate: func(c *Config) { c.Channels = 2 },
		},
		{
			name:    "too many channels",
			mutate:  func(c *Config) { c.Channels = 6 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:   "log level is case-insensitive",
			mutate: func(c *Config) { c.LogLevel = "DEBUG" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateNormalizesLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "WARN"
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want lowercased", cfg.LogLevel)
	}
}
