package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"daycheck/internal/session"
	"daycheck/internal/ui"
)

var showOffset int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a day-file as rich text",
	Long:  "Render a day's raw markdown file with terminal styling.",
	Example: `  daycheck show
  daycheck show --offset -1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(os.Stdout, showOffset)
	},
}

func showRun(w io.Writer, offset int) error {
	now := time.Now()
	path := session.DayPath(appConfig.DataDir, appConfig.DateFormat, offset, now)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "No day-file for %s.\n", now.AddDate(0, 0, offset).Format(appConfig.DateFormat))
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading day-file: %w", err)
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	fmt.Fprintln(w, ui.RenderMarkdown(string(data), 80, theme.MarkdownStyle))
	return nil
}

func init() {
	showCmd.Flags().IntVar(&showOffset, "offset", 0, "day offset from today (e.g. -1 for yesterday)")
	rootCmd.AddCommand(showCmd)
}
