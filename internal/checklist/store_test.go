package checklist_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"daycheck/internal/checklist"
	"daycheck/internal/item"
)

func TestLoadSeedsDefaultsWhenFileAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2026-08-29.md")

	items, err := checklist.Load(path, []string{"A", "B"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []item.Item{{Text: "A"}, {Text: "B"}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Load() = %+v, want %+v", items, want)
	}

	// The file must now exist (empty) as a side effect of loading.
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("day-file was not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("created day-file should be empty, has %d bytes", info.Size())
	}
}

func TestLoadExistingFileSuppressesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	if err := os.WriteFile(path, []byte("- [x] stretch"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := checklist.Load(path, []string{"A", "B"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []item.Item{{Text: "stretch", Completed: true}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Load() = %+v, want %+v", items, want)
	}
}

func TestLoadEmptyFileYieldsNoItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	items, err := checklist.Load(path, []string{"A"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("empty file should yield no items, got %+v", items)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	content := "# header\n- [ ] stretch\n\nnot an item\n- [x] read\n- [x]"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := checklist.Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []item.Item{{Text: "stretch"}, {Text: "read", Completed: true}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Load() = %+v, want %+v", items, want)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	items := []item.Item{
		{Text: "stretch", Completed: true},
		{Text: "read"},
		{Text: ""},
	}

	if err := checklist.Save(items, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Defaults are irrelevant once the file exists.
	got, err := checklist.Load(path, []string{"ignored"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Errorf("reload = %+v, want %+v", got, items)
	}
}

func TestSaveWritesExactFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	items := []item.Item{
		{Text: "stretch", Completed: true},
		{Text: "read"},
	}

	if err := checklist.Save(items, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "- [x] stretch\n- [ ] read"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestSaveEmptyListLeavesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	if err := os.WriteFile(path, []byte("- [ ] old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := checklist.Save(nil, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("saving an empty list should leave an empty file, got %q", data)
	}
}

func TestReadDoesNotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.md")

	_, err := checklist.Read(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Read on absent path: error = %v, want fs.ErrNotExist", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Error("Read must not create the file")
	}
}

func TestReadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.md")
	if err := os.WriteFile(path, []byte("- [x] stretch\n- [ ] read"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := checklist.Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []item.Item{{Text: "stretch", Completed: true}, {Text: "read"}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Read() = %+v, want %+v", items, want)
	}
}
