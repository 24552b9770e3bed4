package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/npratt/pathviz/internal/config"
	"github.com/npratt/pathviz/internal/curriculum"
	"github.com/npratt/pathviz/internal/layout"
	"github.com/npratt/pathviz/internal/shutdown"
	"github.com/npratt/pathviz/internal/tui"
)

var version = "dev"

// shutdownTimeout bounds how long the view gets to exit after a signal.
const shutdownTimeout = 5 * time.Second

// loadConfig loads config files and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Apply CLI flag overrides (only if explicitly set)
	if cmd.Flags().Changed(FlagLogFile) {
		cfg.Paths.Log = viper.GetString(FlagLogFile)
	}
	if cmd.Flags().Changed(FlagCurriculum) {
		cfg.Paths.Curriculum = viper.GetString(FlagCurriculum)
	}
	if cmd.Flags().Changed(FlagLayout) {
		cfg.Paths.Layout = viper.GetString(FlagLayout)
	}
	return cfg, nil
}

// loadData reads the curriculum and tier table named by cfg. Validation
// findings are logged and never stop rendering.
func loadData(cfg *config.Config, logger *slog.Logger) (*curriculum.Curriculum, *layout.Table, error) {
	c, err := curriculum.Load(cfg.Paths.Curriculum)
	if err != nil {
		return nil, nil, err
	}
	table, err := layout.LoadTable(cfg.Paths.Layout)
	if err != nil {
		return nil, nil, err
	}

	for _, p := range c.Validate() {
		logger.Warn("curriculum problem", "kind", p.Kind.String(), "message", p.Message)
	}
	for _, p := range table.Validate(c) {
		logger.Warn("layout problem", "message", p)
	}
	return c, table, nil
}

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("PATHVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "pathviz",
		Short: "Curriculum learning path visualizer",
		Long: `pathviz draws a curriculum of topics and their prerequisites as a
responsive graph. Node color shows each topic's status, hovering shows
details, and the legend filters by status.

Run "pathviz view" for the interactive terminal view or "pathviz render"
to write a single frame as SVG or text.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .pathviz/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log file path for the interactive view")
	rootCmd.PersistentFlags().String(FlagCurriculum, "", "Curriculum YAML file (default: built in)")
	rootCmd.PersistentFlags().String(FlagLayout, "", "Tier layout YAML file (default: built in)")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pathviz %s\n", version)
		},
	}

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive graph",
		Long: `Open the curriculum graph in the terminal.

Move the mouse over a topic to see its details. Press 1, 2 or 3 (or click
the legend) to show only one status and 0 to show all. With --device=touch
a mouse press and release stand in for a tap, and the tooltip stays up for
a moment after release.

Without a terminal a single static frame is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(FlagDevice) {
				cfg.Interaction.Device = viper.GetString(FlagDevice)
			}
			if cmd.Flags().Changed(FlagMouse) {
				cfg.Terminal.Mouse = viper.GetBool(FlagMouse)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			// Logs go to a file so they do not corrupt the screen
			tuiLog, err := SetupTUILogger(cfg.Paths.Log, logLevel, cfg.LogRotation)
			if err != nil {
				return err
			}
			defer func() { _ = tuiLog.Close() }()

			c, table, err := loadData(cfg, tuiLog.Logger)
			if err != nil {
				return err
			}

			tuiLog.Logger.Info("pathviz view starting",
				"version", version,
				"topics", c.Len(),
				"device", cfg.Interaction.Device,
			)

			t := tui.New(c, table, cfg,
				tui.WithLogger(tuiLog.Logger),
				tui.WithOnQuit(func() {
					tuiLog.Logger.Info("quit requested")
				}),
			)
			return shutdown.RunWithGracefulShutdown(cmd.Context(), tuiLog.Logger, shutdownTimeout, t.Run, t.Stop)
		},
	}
	viewCmd.Flags().String(FlagDevice, config.DevicePointer, "Input device to emulate (pointer/touch)")
	viewCmd.Flags().Bool(FlagMouse, true, "Enable mouse input")

	viewCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Render command
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame as SVG or text",
		Long: `Render the graph for a container width without a terminal.

The output is SVG by default. --hover draws a topic as if the pointer were
over it, and --filter shows only topics with one status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, table, err := loadData(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path := viper.GetString(FlagOutput); path != "" && path != "-" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			return renderGraph(out, c, table, cfg, renderOptions{
				Width:  viper.GetFloat64(FlagWidth),
				Filter: viper.GetString(FlagFilter),
				Hover:  viper.GetString(FlagHover),
				Format: viper.GetString(FlagFormat),
				Rows:   viper.GetInt(FlagRows),
			}, logger)
		},
	}
	renderCmd.Flags().Float64(FlagWidth, 1024, "Container width in pixels")
	renderCmd.Flags().String(FlagFilter, "", "Show only one status (completed/in_progress/not_started)")
	renderCmd.Flags().String(FlagHover, "", "Topic id to draw hovered")
	renderCmd.Flags().StringP(FlagOutput, "o", "", "Output file (default: stdout)")
	renderCmd.Flags().String(FlagFormat, FormatSVG, "Output format (svg/text)")
	renderCmd.Flags().Int(FlagRows, 0, "Rows for text output (default: from viewport height)")

	renderCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Progress command
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Print overall progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, err := curriculum.Load(cfg.Paths.Curriculum)
			if err != nil {
				return err
			}
			return writeProgress(cmd.OutOrStdout(), c.Topics, viper.GetBool(FlagJSON))
		},
	}
	progressCmd.Flags().Bool(FlagJSON, false, "Output progress as JSON")
	_ = viper.BindPFlag(FlagJSON, progressCmd.Flags().Lookup(FlagJSON))

	// Check command
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the curriculum and layout table",
		Long: `Check the curriculum for duplicate ids, out of range scores, unknown
statuses, dangling edges and prerequisite cycles, and the layout table for
missing or out of range positions. Exits non-zero when anything is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), cfg)
		},
	}

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
