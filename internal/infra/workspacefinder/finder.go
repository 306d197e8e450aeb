package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

// ConfigFile marks a fetchcontacts workspace root.
const ConfigFile = "fetchcontacts.yaml"

// Finder locates a workspace root by searching for fetchcontacts.yaml upward.
type Finder struct {
	ConfigFile string // defaults to ConfigFile

	// UserConfigDir overrides os.UserConfigDir, for tests.
	UserConfigDir func() (string, error)
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile, UserConfigDir: os.UserConfigDir}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if _, err := os.Stat(cfgPath); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// UserConfigRoot returns <user config dir>/fetchcontacts when it holds a config file.
// It applies when no workspace root is found from the working directory.
func (f *Finder) UserConfigRoot() (string, bool) {
	if f.UserConfigDir == nil {
		return "", false
	}
	dir, err := f.UserConfigDir()
	if err != nil || dir == "" {
		return "", false
	}

	root := filepath.Join(dir, "fetchcontacts")
	if _, err := os.Stat(filepath.Join(root, f.ConfigFile)); err != nil {
		return "", false
	}
	return root, true
}
