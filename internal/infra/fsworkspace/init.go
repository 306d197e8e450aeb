// Package fsworkspace writes the files of a new fetchcontacts workspace.
package fsworkspace

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/workspacefinder"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

const gitignoreHeader = "# fetchcontacts"

// Exports and local address books hold personal data.
var gitignoreEntries = []string{
	".fetchcontacts/",
	"contacts.json",
	"contacts.vcf",
	"contacts.yaml",
}

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

// Init prepares target.Root: log directory, .gitignore entries and fetchcontacts.yaml.
// An existing config file is kept unless force is set.
func (i *Initializer) Init(target domain.WorkspaceTarget, force bool) error {
	root := filepath.Clean(target.Root)

	steps := []func() error{
		func() error { return os.MkdirAll(filepath.Dir(logger.FilePath(root)), 0o755) },
		func() error { return ensureGitignore(root) },
		func() error { return writeConfig(filepath.Join(root, workspacefinder.ConfigFile), force) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: root, Err: err}
		}
	}
	return nil
}

func writeConfig(path string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := f.Write(configTemplate); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func ensureGitignore(root string) error {
	path := filepath.Join(root, ".gitignore")
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	lines := missingIgnoreLines(string(existing))
	if len(lines) == 0 {
		return nil
	}

	var b bytes.Buffer
	b.Write(existing)
	if len(existing) > 0 {
		if !bytes.HasSuffix(existing, []byte("\n")) {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}

// missingIgnoreLines lists the entries content lacks, under the header when that is missing too.
func missingIgnoreLines(content string) []string {
	present := map[string]bool{}
	for _, line := range strings.Split(content, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	var out []string
	for _, e := range gitignoreEntries {
		if !present[e] {
			out = append(out, e)
		}
	}
	if len(out) > 0 && !present[gitignoreHeader] {
		out = append([]string{gitignoreHeader}, out...)
	}
	return out
}
