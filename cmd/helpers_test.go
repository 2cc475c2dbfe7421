package cmd

import (
	"testing"

	"daycheck/internal/config"
)

func setupTestEnv(t *testing.T, habits ...string) *config.Config {
	t.Helper()
	appConfig = &config.Config{
		DataDir:    t.TempDir(),
		DateFormat: "2006-01-02",
		Habits:     habits,
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			DoneIcon:    "✓",
			NotDoneIcon: "✗",
			StreakIcon:  "🔥",
		},
	}
	jsonOutput = false
	return appConfig
}
