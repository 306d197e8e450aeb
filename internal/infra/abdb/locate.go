// Package abdb reads the macOS Contacts databases (AddressBook-v22.abcddb) read-only.
package abdb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// DatabaseName is the file name Contacts uses for every account's database.
const DatabaseName = "AddressBook-v22.abcddb"

// DefaultRoot returns ~/Library/Application Support/AddressBook.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Application Support", "AddressBook")
}

// Locate lists the databases under root: root's own database first, then one per
// Sources/<account> directory in path order. A root that is a file is returned as is.
func Locate(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var out []string

	top := filepath.Join(root, DatabaseName)
	if _, err := os.Stat(top); err == nil {
		out = append(out, top)
	} else if errors.Is(err, fs.ErrPermission) {
		return nil, err
	}

	sourcesDir := filepath.Join(root, "Sources")
	entries, err := os.ReadDir(sourcesDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return nil, err
	}

	var sources []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(sourcesDir, e.Name(), DatabaseName)
		if _, err := os.Stat(p); err == nil {
			sources = append(sources, p)
		}
	}
	sort.Strings(sources)

	return append(out, sources...), nil
}
