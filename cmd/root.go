package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"daycheck/internal/config"
	"daycheck/internal/session"
	"daycheck/internal/ui"
)

var (
	cfgFile    string
	jsonOutput bool
	appConfig  *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "daycheck",
	Short: "A daily checklist manager",
	Long: `daycheck keeps one checkbox list per calendar day, stored as plain
markdown files, and lets you work through it from the terminal.

Run without arguments to open the interactive checklist for today.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if err := os.MkdirAll(appConfig.DataDir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to a plain listing of today
			return listRun(os.Stdout, 0)
		}

		s, err := session.New(appConfig)
		if err != nil {
			return fmt.Errorf("opening today's checklist: %w", err)
		}
		return ui.RunTUI(s, ui.ResolveTheme(appConfig.Theme))
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
