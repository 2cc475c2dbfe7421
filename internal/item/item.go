// Package item provides the checkbox item data type and its one-line
// textual encoding, the unit of everything daycheck persists.
package item

import (
	"errors"
	"strings"
)

// Line markers for the two item states. The trailing space separates
// the marker from the item text and is part of the format.
const (
	markerOpen = "- [ ] "
	markerDone = "- [x] "
)

// ErrBadLine is returned by Decode for lines that do not carry a
// checkbox marker. Callers are expected to skip such lines.
var ErrBadLine = errors.New("line is not a checkbox item")

// Item is a single checklist entry.
type Item struct {
	Text      string
	Completed bool
}

// New creates an incomplete item with the given text.
func New(text string) Item {
	return Item{Text: text}
}

// Encode renders the item as one checkbox line, e.g. "- [x] stretch".
// Encode and Decode round-trip exactly for any text without a newline.
func (i Item) Encode() string {
	if i.Completed {
		return markerDone + i.Text
	}
	return markerOpen + i.Text
}

// Decode parses one checkbox line. Everything after the marker,
// including trailing whitespace, becomes the item text verbatim.
func Decode(line string) (Item, error) {
	switch {
	case strings.HasPrefix(line, markerOpen):
		return Item{Text: line[len(markerOpen):]}, nil
	case strings.HasPrefix(line, markerDone):
		return Item{Text: line[len(markerDone):], Completed: true}, nil
	}
	return Item{}, ErrBadLine
}

// Toggle flips the completion flag. Persisting the change is the
// caller's responsibility.
func (i *Item) Toggle() {
	i.Completed = !i.Completed
}
