package main

import (
	"fmt"
	"os"

	"assetops/app"
	"assetops/backend"
	"assetops/config"
	"assetops/nav"
	"assetops/registry"
	opslog "assetops/utils/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	configPath string
	startView  string
	latency    string
	logLevel   string
	noSeed     bool
)

var rootCmd = &cobra.Command{
	Use:   "assetops",
	Short: "assetops - terminal console for fleet and asset operations",
	Long: `assetops is a keyboard-driven console for tracking assets, sites,
geofences, maintenance, issues and alerts.

Run without arguments to open the console. Press ':' inside it for the
command bar and '?' for help.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List every screen and whether it can be opened directly",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		t := plainTable().Headers("VIEW", "TITLE", "START")
		for _, v := range nav.Views() {
			start := ""
			if v == nav.ViewDashboard || v.TopLevel() {
				start = "yes"
			}
			t.Row(string(v), v.Title(), start)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the commands accepted by the ':' bar",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		t := plainTable()
		for _, c := range registry.All() {
			t.Row(c.Name(), c.Description())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the configuration and write it back with defaults filled in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config ok, written to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&startView, "view", "", "screen to open first (see 'assetops views')")
	rootCmd.Flags().StringVar(&latency, "latency", "", "simulated backend latency, e.g. 300ms")
	rootCmd.Flags().BoolVar(&noSeed, "empty", false, "start with an empty backend instead of demo data")

	rootCmd.AddCommand(viewsCmd, commandsCmd, configCmd)
}

// plainTable is a borderless table for listings printed to the shell.
func plainTable() *table.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return cell })
}

// loadConfig reads the config file and lays the command-line flags over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("view") {
		cfg.StartView = startView
	}
	if cmd.Flags().Changed("latency") {
		cfg.Backend.Latency = latency
	}
	if cmd.Flags().Changed("empty") {
		cfg.Backend.Seed = !noSeed
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logPath := opslog.Init("assetops", cfg.Logging.Level)
	defer opslog.Sync()
	log := opslog.Component("main")
	log.Infof("starting assetops %s, logging to %s", app.Version, logPath)

	if missing := app.Unregistered(); len(missing) > 0 {
		log.Warnf("views without a screen: %v", missing)
	}

	var svc *backend.Memory
	if cfg.Backend.Seed {
		svc = backend.NewMemory(cfg.LatencyDuration())
	} else {
		svc = backend.NewEmptyMemory(cfg.LatencyDuration())
	}

	m := app.New(cfg, svc)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorf("program exited: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
