// Package session owns the state of one interactive daycheck run: the
// current day offset, the day-file bound to it, the selectable item
// list, and the input mode. All mutations route through here so every
// structural change is flushed to disk before anything else happens.
package session

import (
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"daycheck/internal/checklist"
	"daycheck/internal/config"
	"daycheck/internal/item"
)

// Mode is the input mode of the interactive session.
type Mode int

const (
	// ModeNormal handles navigation and mutation keys.
	ModeNormal Mode = iota
	// ModeInsert collects the text of a new item into Pending.
	ModeInsert
)

// Session mediates all day changes and item mutations. The bound
// day-file is always flushed before the binding changes.
type Session struct {
	dataDir    string
	dateFormat string
	habits     []string

	// DayOffset is the signed day offset from today (0 = today).
	DayOffset int
	// List holds the items of the bound day-file.
	List *checklist.List
	// Mode is the current input mode.
	Mode Mode
	// Pending is the staged text for a new item while in ModeInsert.
	Pending string

	path string
	now  func() time.Time
}

// New builds a session bound to today's day-file and loads it,
// seeding the configured habits when the file does not exist yet.
func New(cfg *config.Config) (*Session, error) {
	s := &Session{
		dataDir:    cfg.DataDir,
		dateFormat: cfg.DateFormat,
		habits:     cfg.Habits,
		now:        time.Now,
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// DayPath resolves the day-file path for a day offset under dataDir.
func DayPath(dataDir, dateFormat string, offset int, now time.Time) string {
	name := now.AddDate(0, 0, offset).Format(dateFormat)
	return filepath.Join(dataDir, name+".md")
}

// Path returns the day-file path the session is bound to.
func (s *Session) Path() string {
	return s.path
}

// DayName returns the formatted date of the bound day.
func (s *Session) DayName() string {
	return s.now().AddDate(0, 0, s.DayOffset).Format(s.dateFormat)
}

// Flush writes the in-memory list to the bound day-file.
func (s *Session) Flush() error {
	if err := checklist.Save(s.List.Items(), s.path); err != nil {
		return fmt.Errorf("flushing %s: %w", s.path, err)
	}
	return nil
}

// reload recomputes the path for the current offset and replaces the
// list wholesale, resetting the selection.
func (s *Session) reload() error {
	s.path = DayPath(s.dataDir, s.dateFormat, s.DayOffset, s.now())
	items, err := checklist.Load(s.path, s.habits)
	if err != nil {
		return err
	}
	s.List = checklist.NewList(items)
	return nil
}

// jumpTo flushes the bound day-file, then rebinds to offset.
func (s *Session) jumpTo(offset int) error {
	if err := s.Flush(); err != nil {
		return err
	}
	s.DayOffset = offset
	return s.reload()
}

// GoToToday flushes and rebinds the session to today.
func (s *Session) GoToToday() error {
	return s.jumpTo(0)
}

// PrevDay flushes and rebinds the session one day back.
func (s *Session) PrevDay() error {
	return s.jumpTo(s.DayOffset - 1)
}

// NextDay flushes and rebinds the session one day forward.
func (s *Session) NextDay() error {
	return s.jumpTo(s.DayOffset + 1)
}

// MoveDown advances the cursor, wrapping at the bottom.
func (s *Session) MoveDown() {
	s.List.Next()
}

// MoveUp retreats the cursor, wrapping at the top.
func (s *Session) MoveUp() {
	s.List.Prev()
}

// ToggleSelected flips the selected item and flushes. No-op on an
// empty list, but still flushes, matching the flush-everything policy.
func (s *Session) ToggleSelected() error {
	if it := s.List.Selected(); it != nil {
		it.Toggle()
	}
	return s.Flush()
}

// DeleteSelected removes the selected item and flushes.
func (s *Session) DeleteSelected() error {
	s.List.RemoveSelected()
	return s.Flush()
}

// StartInsert enters insert mode with an empty staging buffer.
func (s *Session) StartInsert() {
	s.Mode = ModeInsert
	s.Pending = ""
}

// TypeRune appends one typed rune to the staging buffer.
func (s *Session) TypeRune(r rune) {
	s.Pending += string(r)
}

// EraseLast removes the last rune of the staging buffer, if any.
func (s *Session) EraseLast() {
	if s.Pending == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Pending)
	s.Pending = s.Pending[:len(s.Pending)-size]
}

// CancelInsert discards the staging buffer and returns to normal
// mode. Nothing structural changed, so nothing is flushed.
func (s *Session) CancelInsert() {
	s.Mode = ModeNormal
	s.Pending = ""
}

// CommitInsert pushes a new item built from the staging buffer,
// clears it, returns to normal mode, and flushes.
func (s *Session) CommitInsert() error {
	s.List.Push(item.New(s.Pending))
	s.Pending = ""
	s.Mode = ModeNormal
	return s.Flush()
}
