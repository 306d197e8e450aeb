package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
)

// LoadConfig reads a fetchcontacts.yaml. A missing file yields the defaults together with
// a KindNotFound error, which callers may ignore.
func LoadConfig(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindInvalidConfig
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.FetchContacts)
}
