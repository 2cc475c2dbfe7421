package item_test

import (
	"errors"
	"testing"

	"daycheck/internal/item"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		it   item.Item
		want string
	}{
		{name: "incomplete", it: item.Item{Text: "stretch"}, want: "- [ ] stretch"},
		{name: "completed", it: item.Item{Text: "read", Completed: true}, want: "- [x] read"},
		{name: "empty text", it: item.Item{}, want: "- [ ] "},
		{name: "trailing whitespace kept", it: item.Item{Text: "tea  "}, want: "- [ ] tea  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    item.Item
		wantErr bool
	}{
		{name: "incomplete", line: "- [ ] stretch", want: item.Item{Text: "stretch"}},
		{name: "completed", line: "- [x] read", want: item.Item{Text: "read", Completed: true}},
		{name: "empty text", line: "- [ ] ", want: item.Item{}},
		{name: "text with brackets", line: "- [x] fix [ ] rendering", want: item.Item{Text: "fix [ ] rendering", Completed: true}},
		{name: "blank line", line: "", wantErr: true},
		{name: "plain text", line: "not an item", wantErr: true},
		{name: "marker without separator", line: "- [x]", wantErr: true},
		{name: "uppercase X", line: "- [X] shout", wantErr: true},
		{name: "missing leading dash", line: "[ ] stretch", wantErr: true},
		{name: "heading", line: "# 2026-08-29", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := item.Decode(tt.line)
			if tt.wantErr {
				if !errors.Is(err, item.ErrBadLine) {
					t.Fatalf("Decode(%q) error = %v, want ErrBadLine", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q) unexpected error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	items := []item.Item{
		{Text: "stretch"},
		{Text: "read", Completed: true},
		{Text: ""},
		{Text: "  indented-looking text"},
		{Text: "unicode ✓ text", Completed: true},
	}

	for _, it := range items {
		got, err := item.Decode(it.Encode())
		if err != nil {
			t.Fatalf("Decode(Encode(%+v)) error: %v", it, err)
		}
		if got != it {
			t.Errorf("round trip changed item: got %+v, want %+v", got, it)
		}
	}
}

func TestToggle(t *testing.T) {
	it := item.New("stretch")
	if it.Completed {
		t.Fatal("New() should create an incomplete item")
	}

	it.Toggle()
	if !it.Completed {
		t.Error("Toggle() should complete an incomplete item")
	}

	it.Toggle()
	if it.Completed {
		t.Error("Toggle() twice should restore the original state")
	}
}
