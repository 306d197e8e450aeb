package cli

import (
	"os"
	"path/filepath"

	"github.com/Joshrizika/Chat-Pilot/internal/domain"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/config"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/logger"
	"github.com/Joshrizika/Chat-Pilot/internal/infra/workspacefinder"
	"github.com/Joshrizika/Chat-Pilot/internal/ports"
)

type workspaceCtx struct {
	// root is where workspace files such as contacts.vcf are looked up.
	root    string
	cfgPath string // empty when running on defaults
	cfg     domain.Config
}

func (e *env) workingDir() string {
	if e.wd != "" {
		return e.wd
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (e *env) loadWorkspace() (*workspaceCtx, error) {
	wd := e.workingDir()
	ws := &workspaceCtx{root: wd, cfg: domain.DefaultConfig()}

	if root, err := e.finder.FindRoot(wd); err == nil {
		ws.root = root
		ws.cfgPath = filepath.Join(root, workspacefinder.ConfigFile)
	} else if userRoot, ok := e.finder.UserConfigRoot(); ok {
		ws.cfgPath = filepath.Join(userRoot, workspacefinder.ConfigFile)
	}

	if ws.cfgPath == "" {
		logger.L().Debug("config.defaults", "wd", wd)
		return ws, nil
	}

	cfg, err := config.LoadConfig(ws.cfgPath)
	if err != nil {
		return nil, err
	}
	ws.cfg = cfg

	logger.L().Debug("config.loaded",
		"path", ws.cfgPath,
		"source_kind", string(cfg.Source.Kind),
		"format", string(cfg.Output.Format),
	)
	return ws, nil
}

func (e *env) openStore(ws *workspaceCtx) (ports.ContactStore, ports.SourceRef, error) {
	if e.store != nil {
		return e.store, ports.SourceRef{Kind: ws.cfg.Source.Kind}, nil
	}

	e.catalog.Log = logger.L()

	ref, err := e.catalog.Resolve(ws.cfg, ws.root)
	if err != nil {
		return nil, ports.SourceRef{}, err
	}

	store, err := e.catalog.Open(ref, ws.cfg)
	if err != nil {
		return nil, ports.SourceRef{}, err
	}

	logger.L().Info("source.selected", "kind", string(ref.Kind), "path", ref.Path)
	return store, ref, nil
}
