// Package main provides the entry point for the pets CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/Harsh-119/Personalized-Text-To-Speech/speech"
	"github.com/Harsh-119/Personalized-Text-To-Speech/speech/audio"
	"github.com/Harsh-119/Personalized-Text-To-Speech/speech/dict"
	"github.com/Harsh-119/Personalized-Text-To-Speech/ui"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile   string
	audioDir     string
	dictPath     string
	tui          bool
	wordGap      time.Duration
	phonemesOnly bool

	rootCmd = &cobra.Command{
		Use:   "pets [TEXT]",
		Short: "Speak text through your own recorded phoneme clips",
		Long: paragraph(
			fmt.Sprintf("\nSpeak text through %s. Words are resolved to phonemes and played back one clip at a time.", keyword("your own recorded phoneme clips")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		TraverseChildren: true,
		Args:             cobra.ArbitraryArgs,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: execute,
	}
)

// loadConfig merges environment variables over the config file values.
func loadConfig() (speech.Config, error) {
	cfg, err := env.ParseAs[speech.Config]()
	if err != nil {
		return cfg, fmt.Errorf("error parsing config: %w", err)
	}

	// Config file values fill anything the environment left unset.
	if cfg.AudioDir == "" {
		cfg.AudioDir = viper.GetString("audio_dir")
	}
	if cfg.DictPath == "" {
		cfg.DictPath = viper.GetString("dict_path")
	}
	if v := viper.GetDuration("word_gap"); v > 0 && !envIsSet("PETS_WORD_GAP") {
		cfg.WordGap = v
	}
	if v := viper.GetInt("sample_rate"); v != 0 && !envIsSet("PETS_SAMPLE_RATE") {
		cfg.SampleRate = v
	}
	if v := viper.GetInt("channels"); v != 0 && !envIsSet("PETS_CHANNELS") {
		cfg.Channels = v
	}
	if v := viper.GetString("log_level"); v != "" && !envIsSet("PETS_LOG_LEVEL") {
		cfg.LogLevel = v
	}

	// Flags win over both.
	if audioDir != "" {
		cfg.AudioDir = audioDir
	}
	if dictPath != "" {
		cfg.DictPath = dictPath
	}
	if wordGap > 0 {
		cfg.WordGap = wordGap
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envIsSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// loadDictionary returns the configured pronunciation dictionary, falling
// back to the embedded seed dictionary when no path is set.
func loadDictionary(cfg speech.Config) (*dict.Dictionary, error) {
	if cfg.DictPath == "" {
		d := dict.Builtin()
		log.Debug("using embedded dictionary", "entries", d.Len())
		return d, nil
	}
	d, err := dict.LoadFile(cfg.DictPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load dictionary: %w", err)
	}
	log.Debug("loaded dictionary", "path", cfg.DictPath, "entries", d.Len())
	return d, nil
}

func stdinIsPipe() (bool, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to stat stdin: %w", err)
	}
	if stat.Mode()&os.ModeCharDevice == 0 || stat.Size() > 0 {
		return true, nil
	}
	return false, nil
}

func execute(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	d, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	converter := speech.NewConverter(d)

	// if stdin is a pipe then use stdin for input. note that you can also
	// explicitly use a - to read from stdin.
	text := strings.Join(args, " ")
	if yes, err := stdinIsPipe(); err != nil {
		return err
	} else if yes || text == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("unable to read from stdin: %w", err)
		}
		text = string(b)
	}

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	// No text and an interactive terminal means the form.
	if tui || (text == "" && isTerminal) {
		return runTUI(cfg, converter)
	}
	return runCLI(cfg, converter, text, os.Stdout)
}

func runCLI(cfg speech.Config, converter *speech.Converter, text string, w io.Writer) error {
	result, err := converter.Convert(text)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, result.Report()); err != nil {
		return fmt.Errorf("unable to write to writer: %w", err)
	}

	if phonemesOnly {
		return nil
	}
	if cfg.AudioDir == "" {
		log.Info("no audio directory configured, skipping playback")
		return nil
	}

	player, err := audio.NewPlayer(cfg.SampleRate, cfg.Channels)
	if err != nil {
		return fmt.Errorf("unable to open audio device: %w", err)
	}
	sequencer := speech.NewSequencer(player, cfg.WordGap)

	diags, err := sequencer.Speak(context.Background(), result.Sounds, cfg.AudioDir)
	for _, diag := range diags {
		fmt.Fprintln(os.Stderr, diag)
	}
	if err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}

func runTUI(cfg speech.Config, converter *speech.Converter) error {
	player, err := audio.NewPlayer(cfg.SampleRate, cfg.Channels)
	if err != nil {
		return fmt.Errorf("unable to open audio device: %w", err)
	}
	sequencer := speech.NewSequencer(player, cfg.WordGap)

	uiCfg := ui.Config{AudioDir: cfg.AudioDir}
	if _, err := ui.NewProgram(uiCfg, converter, sequencer).Run(); err != nil {
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.Flags().StringVarP(&audioDir, "audio-dir", "d", "", "directory with per-phoneme audio clips")
	rootCmd.Flags().StringVar(&dictPath, "dict", "", "pronunciation dictionary file (cmudict format)")
	rootCmd.Flags().BoolVarP(&tui, "tui", "t", false, "open the interactive form")
	rootCmd.Flags().DurationVarP(&wordGap, "word-gap", "g", 0, "pause between words (default 500ms)")
	rootCmd.Flags().BoolVarP(&phonemesOnly, "phonemes", "p", false, "print phonemes without playing audio")

	// Config bindings
	_ = viper.BindPFlag("audio_dir", rootCmd.Flags().Lookup("audio-dir"))
	_ = viper.BindPFlag("dict_path", rootCmd.Flags().Lookup("dict"))
	_ = viper.BindPFlag("word_gap", rootCmd.Flags().Lookup("word-gap"))
	_ = viper.BindPFlag("tui", rootCmd.Flags().Lookup("tui"))

	viper.SetDefault("word_gap", speech.DefaultWordGap)
	viper.SetDefault("sample_rate", 22050)
	viper.SetDefault("channels", 1)
	viper.SetDefault("log_level", "info")

	rootCmd.AddCommand(configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "pets")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "pets")}, dirs...)
	}

	if c := os.Getenv("PETS_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("pets")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("pets")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "pets.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
