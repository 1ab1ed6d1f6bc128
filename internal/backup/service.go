// Package backup produces snapshot files from the local store and feeds
// dropped snapshot files back into it.
package backup

import (
	"academia/workout-app/internal/config"
	"academia/workout-app/internal/offline"
	"academia/workout-app/internal/service"
	"academia/workout-app/internal/storage"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron"
)

// Service writes full export snapshots to the backup directory and,
// when the application is online and S3 is configured, mirrors them to
// the snapshot storage. Snapshot storage may be nil for fully local
// deployments.
type Service struct {
	transfer service.TransferService
	monitor  *offline.Monitor
	remote   storage.SnapshotStorage
	dir      string
	logger   *log.Logger
}

// NewService creates a backup service writing into dir.
func NewService(transfer service.TransferService, monitor *offline.Monitor, remote storage.SnapshotStorage, dir string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(os.Stderr, "[backup] ", log.LstdFlags)
	}
	return &Service{
		transfer: transfer,
		monitor:  monitor,
		remote:   remote,
		dir:      dir,
		logger:   logger,
	}
}

// Run exports every collection and writes the snapshot file using the
// standard filename convention. The local file is the backup of record;
// the S3 upload is best-effort and only attempted while online.
func (s *Service) Run(ctx context.Context) (string, error) {
	snapshot, err := s.transfer.Export(ctx, service.ScopeAll)
	if err != nil {
		return "", fmt.Errorf("failed to export snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := service.ExportFilename(config.AppName, time.Now())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	s.logger.Printf("Wrote backup %s", path)

	if s.remote != nil && s.monitor.Online() {
		if err := s.remote.UploadSnapshot(ctx, name, data); err != nil {
			// Sync failures stay silent towards the user; the local file
			// already succeeded.
			s.logger.Printf("ERROR: Failed to upload backup %s: %v", name, err)
		} else {
			s.logger.Printf("Uploaded backup %s", name)
		}
	}

	return path, nil
}

// Schedule starts a cron schedule of automatic backups. The returned
// cron must be stopped by the caller on shutdown.
func (s *Service) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	err := c.AddFunc(spec, func() {
		if _, err := s.Run(context.Background()); err != nil {
			s.logger.Printf("ERROR: Scheduled backup failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	c.Start()
	s.logger.Printf("Scheduled automatic backups: %s", spec)
	return c, nil
}
