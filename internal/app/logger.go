package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tinyplayerss/hyteserve/internal/config"
)

// newLogger builds the file-backed activity logger. The terminal belongs to
// the TUI, so nothing may be written to stdout or stderr. Any failure to set
// up the log file degrades to a no-op logger rather than aborting startup.
func newLogger(cfg config.Config) *zap.Logger {
	path := cfg.LogPath()
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
