package upload

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper periodically removes stale upload temp files. Handlers remove their
// own temp files per request; the sweeper only catches files orphaned by a
// crash or kill between decode and cleanup.
type Sweeper struct {
	dir      string
	interval time.Duration
	maxAge   time.Duration
	logger   *slog.Logger
}

// NewSweeper creates a sweeper over the system temp directory.
func NewSweeper(interval, maxAge time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		dir:      os.TempDir(),
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run sweeps on the configured interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	matches, err := filepath.Glob(filepath.Join(s.dir, TempPrefix+"*"))
	if err != nil {
		s.logger.Error("temp sweep failed", slog.String("error", err.Error()))
		return
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err == nil {
				removed++
			}
		}
	}

	if removed > 0 {
		s.logger.Info("removed stale upload temp files", slog.Int("count", removed))
	}
}
