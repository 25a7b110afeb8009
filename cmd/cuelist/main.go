package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/robby/cuelist/internal/config"
	"github.com/robby/cuelist/internal/logging"
	"github.com/robby/cuelist/internal/oscmirror"
	"github.com/robby/cuelist/internal/store"
	"github.com/robby/cuelist/internal/tui"
	"github.com/spf13/cobra"
)

var (
	// CLI flags
	configFlag   string
	logLevelFlag string
	logFileFlag  string
	oscHostFlag  string
	oscPortFlag  int
	seedFlag     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cuelist",
		Short: "Terminal editor for show cue lists",
		Long: `cuelist is a terminal editor for a show's cue list.

Cues keep the position you give them. Each cue also carries a number
(5, 5.3, ...) that you set independently, so the running order and the
numbering can disagree; such cues are flagged in the list.

Changes can be mirrored to a show controller over OSC (UDP):
  cuelist --osc-host 192.168.1.20 --osc-port 53000`,
		SilenceUsage: true,
		RunE:         run,
	}

	// Define CLI flags
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Path to a YAML config file.")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "info", "Log level: debug, info, warn or error.")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file. Logs are discarded when unset.")
	rootCmd.Flags().StringVar(&oscHostFlag, "osc-host", "", "Mirror changes over OSC to this host. Enables OSC.")
	rootCmd.Flags().IntVar(&oscPortFlag, "osc-port", config.DefaultOSCPort, "OSC port. Enables OSC.")
	rootCmd.Flags().IntVar(&seedFlag, "seed", 0, "Number of cues to create at startup.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closer.Close()

	// Create store
	s := store.New()
	for i := range cfg.Editor.Seed {
		s.Append(fmt.Sprintf("%s %d", cfg.Editor.DefaultLabel, i+1))
	}

	if cfg.OSC.Enabled {
		mirror := oscmirror.Dial(cfg.OSC.Host, cfg.OSC.Port, cfg.OSC.Prefix, logger)
		mirror.Attach(s)
		defer logStats(logger, mirror)
		defer mirror.Detach()
	}

	logger.Info("starting editor", "cues", s.Len(), "osc", cfg.OSC.Enabled)

	// Create app model
	app := tui.NewAppModel(s, logger, cfg.Editor)

	// Run Bubble Tea program
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	logger.Info("editor closed", "cues", s.Len())
	return nil
}

// loadConfig reads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.LoadFile(configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevelFlag
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFileFlag
	}
	if flags.Changed("osc-host") {
		cfg.OSC.Host = oscHostFlag
		cfg.OSC.Enabled = true
	}
	if flags.Changed("osc-port") {
		cfg.OSC.Port = oscPortFlag
		cfg.OSC.Enabled = true
	}
	if flags.Changed("seed") {
		cfg.Editor.Seed = seedFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func logStats(logger *log.Logger, mirror *oscmirror.Mirror) {
	sent, failed := mirror.Stats()
	logger.Info("osc mirror closed", "sent", sent, "failed", failed)
}
