// Package main provides the CLI entrypoint for keydrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"keydrill/internal/config"
	"keydrill/internal/logging"
	"keydrill/internal/model"
	"keydrill/internal/selftest"
	"keydrill/internal/session"
	"keydrill/internal/tui"
	"keydrill/internal/words"
)

const (
	defaultMode    = "time"
	defaultSeconds = 60
	defaultWords   = 50
)

var (
	flagMode        string
	flagSeconds     int
	flagWords       int
	flagNumbers     bool
	flagPunctuation bool
	flagSeed        int64
	flagCheck       bool
	flagWordList    string
	flagKeyboard    bool
	flagLogFile     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keydrill",
		Short:         "Terminal typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&flagMode, "mode", defaultMode, "session mode: time or words")
	rootCmd.Flags().IntVar(&flagSeconds, "seconds", defaultSeconds, "duration for time mode")
	rootCmd.Flags().IntVar(&flagWords, "words", defaultWords, "word count for words mode")
	rootCmd.Flags().BoolVar(&flagNumbers, "numbers", false, "mix digit tokens into the word pool")
	rootCmd.Flags().BoolVar(&flagPunctuation, "punctuation", false, "mix punctuation tokens into the word pool")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "fixed seed for reproducible text")
	rootCmd.Flags().BoolVar(&flagCheck, "check", false, "run terminal-free self-checks and exit")
	rootCmd.Flags().StringVar(&flagWordList, "wordlist", "", "custom word list file (one word per line)")
	rootCmd.Flags().BoolVar(&flagKeyboard, "keyboard", true, "show the on-screen keyboard when space allows")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	if flagCheck {
		return selftest.Run(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &flagMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "seconds", &flagSeconds, fileCfg.Practice.Seconds)
	applyIntConfig(cmd, "words", &flagWords, fileCfg.Practice.Words)
	applyBoolConfig(cmd, "numbers", &flagNumbers, fileCfg.Practice.Numbers)
	applyBoolConfig(cmd, "punctuation", &flagPunctuation, fileCfg.Practice.Punctuation)
	applyStringConfig(cmd, "wordlist", &flagWordList, fileCfg.Practice.WordList)
	applyBoolConfig(cmd, "keyboard", &flagKeyboard, fileCfg.UI.Keyboard)
	applyStringConfig(cmd, "log-file", &flagLogFile, fileCfg.UI.LogFile)

	mode, err := model.ParseMode(flagMode)
	if err != nil {
		return err
	}
	var seed *int64
	if cmd.Flags().Changed("seed") {
		s := flagSeed
		seed = &s
	} else if fileCfg.Practice.Seed != nil {
		s := *fileCfg.Practice.Seed
		seed = &s
	}

	cfg := model.Config{
		Mode:         mode,
		Seconds:      flagSeconds,
		Words:        flagWords,
		Numbers:      flagNumbers,
		Punctuation:  flagPunctuation,
		Seed:         seed,
		WordListPath: flagWordList,
		Keyboard:     flagKeyboard,
		LogFile:      flagLogFile,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	dict := words.Base()
	if cfg.WordListPath != "" {
		dict, err = words.Load(cfg.WordListPath)
		if err != nil {
			return fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
		}
	}
	pool := words.Pool(dict, cfg.Numbers, cfg.Punctuation)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("keydrill needs an interactive terminal (run --check for terminal-free checks)")
	}
	if _, _, err := term.GetSize(int(os.Stdout.Fd())); err != nil {
		return fmt.Errorf("failed to query terminal size: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("starting session",
		"mode", cfg.Mode, "seconds", cfg.Seconds, "words", cfg.Words,
		"numbers", cfg.Numbers, "punctuation", cfg.Punctuation)

	eng := session.New(cfg, pool)
	program := tea.NewProgram(tui.NewModel(cfg, eng, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("VISUAL"))
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented default template when no
// config exists yet.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}
	return nil
}

// Flags win over file values, so a config value only lands when the
// user did not set the flag explicitly.
func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keydrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q          # Session mode: "time" or "words"
# seconds = %d          # Duration for time mode
# words = %d            # Word count for words mode
# numbers = false       # Mix digit tokens into the word pool
# punctuation = false   # Mix punctuation tokens into the word pool
# seed = 12345          # Fixed seed for reproducible text
# wordlist = ""         # Custom word list file (one word per line)

[ui]
# keyboard = true       # Show the on-screen keyboard when space allows
# log-file = %q # Write debug logs to this file
`,
		defaultMode,
		defaultSeconds,
		defaultWords,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Mode == model.ModeTime && cfg.Seconds < 1 {
		return fmt.Errorf("--seconds must be >= 1")
	}
	if cfg.Mode == model.ModeWords && cfg.Words < 1 {
		return fmt.Errorf("--words must be >= 1")
	}
	return nil
}
