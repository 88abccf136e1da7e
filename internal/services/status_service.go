package services

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/jmagnuss/vaultbrowse-be/internal/database"
	"github.com/jmagnuss/vaultbrowse-be/internal/models"
)

// Database reachability states reported by the health endpoint.
const (
	DBStateConnected    = "connected"
	DBStateDisconnected = "disconnected"
	DBStateError        = "error"
)

// pingTimeout bounds the health probe so a stalled store cannot hang /health.
const pingTimeout = 2 * time.Second

// StatusServiceProvider defines the interface for process status reads.
type StatusServiceProvider interface {
	DatabaseState(ctx context.Context) string
	MemoryUsage() models.MemoryUsage
}

// StatusService reports process liveness details and database reachability.
type StatusService struct {
	db *database.Mongo
}

// NewStatusService creates a new StatusService.
func NewStatusService(db *database.Mongo) *StatusService {
	return &StatusService{db: db}
}

// DatabaseState probes the store and maps the outcome onto the three
// reachability states: no handle is "disconnected", a handle whose ping
// fails is "error", everything else is "connected".
func (s *StatusService) DatabaseState(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := s.db.Ping(ctx)
	switch {
	case err == nil:
		return DBStateConnected
	case errors.Is(err, database.ErrUnavailable):
		return DBStateDisconnected
	default:
		return DBStateError
	}
}

// MemoryUsage returns the current RSS and VMS of this process. A failed
// read reports zeros, never an error.
func (s *StatusService) MemoryUsage() models.MemoryUsage {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return models.MemoryUsage{}
	}
	info, err := proc.MemoryInfo()
	if err != nil || info == nil {
		return models.MemoryUsage{}
	}
	return models.MemoryUsage{RSS: info.RSS, VMS: info.VMS}
}
