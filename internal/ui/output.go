package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"daycheck/internal/item"
)

// FormatItems writes each item as its encoded checkbox line.
func FormatItems(w io.Writer, items []item.Item) {
	for _, it := range items {
		fmt.Fprintln(w, it.Encode())
	}
}

// FormatCount writes the "completed / total" summary line.
func FormatCount(w io.Writer, completed, total int) {
	fmt.Fprintf(w, "%d / %d\n", completed, total)
}

// FormatJSON writes any value as indented JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ItemSummary is a JSON representation of one checklist item.
type ItemSummary struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DaySummary is the JSON representation of one day's checklist.
type DaySummary struct {
	Date      string        `json:"date"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
	Items     []ItemSummary `json:"items"`
}

// BuildDaySummary converts a day's items to the JSON list output shape.
func BuildDaySummary(date string, items []item.Item) DaySummary {
	d := DaySummary{Date: date, Total: len(items), Items: make([]ItemSummary, len(items))}
	for i, it := range items {
		d.Items[i] = ItemSummary{Text: it.Text, Completed: it.Completed}
		if it.Completed {
			d.Completed++
		}
	}
	return d
}
