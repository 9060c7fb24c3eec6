package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xonecas/splitpane/internal/config"
	"github.com/xonecas/splitpane/internal/splitpane"
	"github.com/xonecas/splitpane/internal/store"
	"github.com/xonecas/splitpane/internal/tui"
)

// Version is set during build with -ldflags
var version = "dev"

// layoutTTL is how long an untouched remembered layout survives.
const layoutTTL = 90 * 24 * time.Hour

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "splitpane [files...]",
	Short: "Show files side by side in resizable panes",
	Long: `splitpane lays files out in a split container and lets you drag the
dividers with the mouse or nudge them from the keyboard. Panel sizes are
remembered per layout name between runs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog := setupLogging()
		defer closeLog()

		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		return runInteractive(cfg, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of splitpane",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "splitpane version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/splitpane/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newLayoutCommand())
	rootCmd.AddCommand(newLayoutsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging sends zerolog output to the data directory; the terminal
// belongs to the UI. Falls back to discarding logs.
func setupLogging() func() {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	dir, err := config.EnsureDataDir()
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "splitpane.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { f.Close() }
}

func runInteractive(cfg *config.Config, files []string) error {
	sp, panes, err := buildSplitPane(cfg, files, true)
	if err != nil {
		return err
	}
	defer sp.Close()

	st := openStore(cfg)
	defer st.Close()

	name := cfg.NameOrDefault()
	if saved, ok := st.LoadLayout(name, sp.Len()); ok {
		if err := restore(sp, saved); err != nil {
			log.Warn().Err(err).Str("name", name).Msg("ignoring saved layout")
		}
	}

	unsubscribe := sp.Subscribe(func(ev splitpane.Event) {
		if ev.Kind == splitpane.EventLayout {
			return
		}
		log.Debug().Stringer("event", ev.Kind).Int("divider", ev.Divider).Int("delta", ev.Delta).Err(ev.Err).Msg("split event")
	})
	defer unsubscribe()

	p := tea.NewProgram(
		tui.New(sp, panes, cfg.UI.SyntaxThemeOrDefault()),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run splitpane: %w", err)
	}

	return st.SaveLayout(name, sp.Sizes(), sp.ContainerSize())
}

func restore(sp *splitpane.SplitPane, saved store.Layout) error {
	if err := sp.ContainerResized(saved.Container); err != nil {
		return err
	}
	return sp.Restore(saved.Sizes)
}

func openStore(cfg *config.Config) *store.Store {
	if cfg.Store.Disabled {
		return nil
	}
	path := cfg.Store.Path
	if path == "" {
		dir, err := config.EnsureDataDir()
		if err != nil {
			log.Warn().Err(err).Msg("no data directory, layouts will not be remembered")
			return nil
		}
		path = filepath.Join(dir, "splitpane.db")
	}
	st, err := store.Open(path, layoutTTL)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to open layout store")
		return nil
	}
	return st
}
