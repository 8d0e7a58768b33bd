package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dev-shetty/easydiff/internal/app"
	"github.com/dev-shetty/easydiff/internal/config"
	"github.com/dev-shetty/easydiff/internal/git"
	"github.com/dev-shetty/easydiff/internal/log"
	"github.com/dev-shetty/easydiff/internal/session"
	"github.com/dev-shetty/easydiff/internal/ui/statuspanel"
	"github.com/dev-shetty/easydiff/internal/ui/styles"
	"github.com/dev-shetty/easydiff/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	traceFlag bool
	noWatch   bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "easydiff [path]",
	Short:   "A terminal ui for reviewing and staging git changes",
	Long:    `A terminal user interface for reviewing working tree changes and staging or unstaging them hunk by hunk.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/easydiff/config.yaml)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false,
		"write a debug log to easydiff-debug.log")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"disable automatic refresh when the repository changes")
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false,
		"record a span per git invocation (see tracing config)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("ui.show_footer", defaults.UI.ShowFooter)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.word_diff", defaults.UI.WordDiff)
	viper.SetDefault("watch.enabled", defaults.Watch.Enabled)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .easydiff/config.yaml (current directory)
		// 2. ~/.config/easydiff/config.yaml (user config)
		if _, err := os.Stat(".easydiff/config.yaml"); err == nil {
			viper.SetConfigFile(".easydiff/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "easydiff"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// No config anywhere; write defaults to the user config dir.
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "easydiff", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugFlag {
		cfg.Debug = true
	}
	if cfg.Debug || os.Getenv("EASYDIFF_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog("easydiff-debug.log", "easydiff")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}

	if traceFlag {
		cfg.Tracing.Enabled = true
	}
	shutdownTracing, err := setupTracing(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer shutdownTracing()

	sess, err := session.Open(context.Background(), dir)
	if err != nil {
		if errors.Is(err, git.ErrNotARepository) {
			return fmt.Errorf("%s is not inside a git repository", dir)
		}
		return fmt.Errorf("opening repository: %w", err)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Exporter != "none" {
		sess = session.OpenWith(sess.Root(), git.NewTracedExecutor(sess.Git()))
	}

	var w *watcher.Watcher
	var changes <-chan struct{}
	if cfg.Watch.Enabled && !noWatch {
		wcfg := watcher.DefaultConfig(sess.Root())
		wcfg.DebounceDur = time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		w, err = watcher.New(wcfg)
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		changes, err = w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
	}

	model := app.New(sess, w, statuspanel.Options{
		ShowFooter:    cfg.UI.ShowFooter,
		WordDiff:      cfg.UI.WordDiff,
		MarkdownStyle: cfg.UI.MarkdownStyle,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if changes != nil {
		go func() {
			for range changes {
				p.Send(statuspanel.RepoChangedMsg{})
			}
		}()
	}

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
