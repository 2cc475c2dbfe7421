package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"daycheck/internal/shell"
	"daycheck/internal/ui"
)

var (
	statusEnv    bool
	statusCached bool
	statusFormat string
)

// statusData holds the template data for status formatting.
type statusData struct {
	Completed  int
	Total      int
	Done       bool
	Streak     int
	TodayIcon  string
	StreakIcon string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's completion status",
	Long: `Show how much of today's checklist is done.

The default output is "<completed> / <total>". The streak counts
consecutive fully-completed days ending today.

Use --cached to serve from the status cache when fresh (for shell
prompts). Use --env to output shell environment variable assignments.
Use --format with a Go template for custom output.`,
	Example: `  daycheck status
  daycheck status --env
  daycheck status --format "{{.TodayIcon}} {{.Streak}}{{.StreakIcon}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(os.Stdout, statusCached, statusEnv, statusFormat)
	},
}

func statusRun(w io.Writer, cached, envFlag bool, format string) error {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	var st shell.Status
	cache := shell.ReadCache(appConfig.DataDir)
	if cached && cache.IsFresh(ttl) {
		st = cache.Status()
	} else {
		st, err = shell.ComputeStatus(appConfig.DataDir, appConfig.DateFormat, appConfig.Habits)
		if err != nil {
			return fmt.Errorf("computing status: %w", err)
		}

		now := time.Now()
		c := &shell.PromptCache{
			Completed: st.Completed,
			Total:     st.Total,
			Streak:    st.Streak,
			TodayDate: now.Format("2006-01-02"),
			UpdatedAt: now,
		}
		if err := shell.WriteCache(appConfig.DataDir, c); err != nil {
			// Non-fatal: cache write failure shouldn't break the prompt
			fmt.Fprintln(os.Stderr, "Warning: could not write cache:", err)
		}
	}

	data := buildStatusData(st)

	if envFlag {
		return outputEnv(w, data)
	}
	if format != "" {
		return outputTemplate(w, data, format)
	}
	if jsonOutput {
		return ui.FormatJSON(w, data)
	}

	ui.FormatCount(w, st.Completed, st.Total)
	return nil
}

func buildStatusData(st shell.Status) statusData {
	icon := appConfig.Shell.NotDoneIcon
	if st.Done() {
		icon = appConfig.Shell.DoneIcon
	}

	return statusData{
		Completed:  st.Completed,
		Total:      st.Total,
		Done:       st.Done(),
		Streak:     st.Streak,
		TodayIcon:  icon,
		StreakIcon: appConfig.Shell.StreakIcon,
	}
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export DAYCHECK_COMPLETED=%q\n", fmt.Sprintf("%d", data.Completed))
	fmt.Fprintf(w, "export DAYCHECK_TOTAL=%q\n", fmt.Sprintf("%d", data.Total))
	fmt.Fprintf(w, "export DAYCHECK_TODAY=%q\n", data.TodayIcon)
	fmt.Fprintf(w, "export DAYCHECK_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Fprintf(w, "export DAYCHECK_STREAK_ICON=%q\n", data.StreakIcon)
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().BoolVar(&statusCached, "cached", false, "serve from the status cache when fresh")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
