// Package shell computes the prompt status used by the status
// subcommand and shell prompt integration, with a small on-disk cache
// so prompts do not re-read day-files on every redraw.
package shell

import (
	"errors"
	"io/fs"
	"time"

	"daycheck/internal/checklist"
	"daycheck/internal/item"
	"daycheck/internal/session"
)

// Streak computation scans at most a year of history.
const maxStreakDays = 365

// Status summarizes today's checklist and the completion streak.
type Status struct {
	Completed int
	Total     int
	Streak    int
}

// Done reports whether today's checklist is non-empty and fully checked.
func (s Status) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// ComputeStatus loads today's day-file (seeding habits when absent,
// like the interactive session would) and counts completed items,
// then walks backwards over historical day-files to compute the
// streak of consecutive fully-completed days ending today.
func ComputeStatus(dataDir, dateFormat string, habits []string) (Status, error) {
	now := time.Now()

	items, err := checklist.Load(session.DayPath(dataDir, dateFormat, 0, now), habits)
	if err != nil {
		return Status{}, err
	}

	st := Status{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			st.Completed++
		}
	}

	for offset := 0; offset > -maxStreakDays; offset-- {
		var day []item.Item
		if offset == 0 {
			day = items
		} else {
			day, err = checklist.Read(session.DayPath(dataDir, dateFormat, offset, now))
			if errors.Is(err, fs.ErrNotExist) {
				break
			}
			if err != nil {
				return Status{}, err
			}
		}
		if !allCompleted(day) {
			break
		}
		st.Streak++
	}

	return st, nil
}

func allCompleted(items []item.Item) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if !it.Completed {
			return false
		}
	}
	return true
}
