// Package checklist persists the ordered item sequence for a day-file
// and wraps it in a cursor-backed selectable list for the session.
package checklist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"daycheck/internal/item"
)

// Load reads the items of the day-file at path. When the file does not
// exist yet, one incomplete item per default text is seeded and the
// empty file is created as a side effect of opening it. An existing
// file, even an empty one, suppresses the defaults. Lines that do not
// decode as checkbox items are dropped.
func Load(path string, defaults []string) ([]item.Item, error) {
	var items []item.Item

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		for _, text := range defaults {
			items = append(items, item.New(text))
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening day-file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		it, err := item.Decode(scanner.Text())
		if err != nil {
			continue
		}
		items = append(items, it)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading day-file: %w", err)
	}

	return items, nil
}

// Read is the read-only counterpart of Load: no defaults, and an
// absent file is reported (fs.ErrNotExist) instead of created. Used
// when probing historical day-files.
func Read(path string) ([]item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []item.Item
	for _, line := range strings.Split(string(data), "\n") {
		it, err := item.Decode(line)
		if err != nil {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// Save overwrites path with the encoded items, one line each. The
// write goes through a temp file and rename so a crash mid-write never
// leaves a truncated day-file.
func Save(items []item.Item, path string) error {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.Encode()
	}
	return atomicWrite(path, []byte(strings.Join(lines, "\n")))
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
