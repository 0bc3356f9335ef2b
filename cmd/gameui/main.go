package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gameui/internal/config"
	"gameui/internal/logging"
	"gameui/internal/trace"
	"gameui/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "dev"

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "gameui",
	Short: "Terminal host for the game UI runtime",
	Long: `gameui renders the game's windows and modal dialogs in the terminal.

Press SPC for the command menu. Logs go to log.file when one is configured.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "gameui", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level")
	rootCmd.AddCommand(versionCmd)
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, closer, err := logging.New(logging.Config{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		JSON:  cfg.Log.JSON,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	tp, err := trace.Setup(ctx, trace.Config{
		Endpoint: cfg.Trace.Endpoint,
		Service:  cfg.Trace.Service,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("trace shutdown")
		}
	}()

	model, err := ui.NewAppModel(ui.AppOptions{
		Geometry: dialogGeometry(cfg),
		Template: cfg.Dialog.Template,
		Logger:   logger,
		Tracer:   tp.Tracer(),
	})
	if err != nil {
		return err
	}

	logger.Info().Str("version", Version).Bool("tracing", tp.Enabled()).Msg("starting")
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	err = config.Watch(configPath, func(next *config.Config, err error) {
		if err != nil {
			logger.Warn().Err(err).Msg("config reload rejected")
			return
		}
		logger.Info().Str("file", configPath).Msg("config reloaded")
		p.Send(ui.DialogGeometryMsg{Geometry: dialogGeometry(next)})
	})
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}

func dialogGeometry(cfg *config.Config) ui.DialogGeometry {
	return ui.DialogGeometry{
		Width:  cfg.Dialog.Width,
		Height: cfg.Dialog.Height,
		ZIndex: cfg.Dialog.ZIndex,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
