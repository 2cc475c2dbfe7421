package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"daycheck/internal/checklist"
	"daycheck/internal/item"
	"daycheck/internal/session"
	"daycheck/internal/ui"
)

var listOffset int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a day's checklist",
	Long: `Print a day's checklist, one checkbox line per item.

Listing today seeds the configured habits if no day-file exists yet,
exactly like opening the interactive checklist would. Listing other
days never creates files.`,
	Example: `  daycheck list
  daycheck list --offset -1
  daycheck list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(os.Stdout, listOffset)
	},
}

// loadDay returns the items for a day offset. Today goes through the
// seeding load; other days are read without creating a file, and an
// absent day-file is just an empty list.
func loadDay(offset int) ([]item.Item, error) {
	path := session.DayPath(appConfig.DataDir, appConfig.DateFormat, offset, time.Now())
	if offset == 0 {
		return checklist.Load(path, appConfig.Habits)
	}
	items, err := checklist.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return items, err
}

func listRun(w io.Writer, offset int) error {
	items, err := loadDay(offset)
	if err != nil {
		return fmt.Errorf("reading checklist: %w", err)
	}

	if jsonOutput {
		date := time.Now().AddDate(0, 0, offset).Format(appConfig.DateFormat)
		return ui.FormatJSON(w, ui.BuildDaySummary(date, items))
	}

	ui.FormatItems(w, items)
	return nil
}

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "day offset from today (e.g. -1 for yesterday)")
	rootCmd.AddCommand(listCmd)
}
