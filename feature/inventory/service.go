package inventory

import (
	"context"
	"errors"
	"sync"
	"time"

	"inventory-sync/feature/inventory/models"
	"inventory-sync/feature/inventory/reconcile"

	"go.uber.org/zap"
)

// ErrCycleInProgress is returned when a sync cycle is requested while another
// one is still running. The design allows at most one cycle at a time.
var ErrCycleInProgress = errors.New("sync cycle already in progress")

// Service owns the reconciliation engine and serializes cycle execution.
// It keeps the outcome of the most recent cycle for the status API.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger

	mu         sync.Mutex
	running    bool
	lastRun    time.Time
	lastError  string
	lastReport *models.CycleReport
}

// Status is a point-in-time view of the sync service.
type Status struct {
	Running    bool                `json:"running"`
	LastRun    time.Time           `json:"last_run"`
	LastError  string              `json:"last_error,omitempty"`
	LastReport *models.CycleReport `json:"last_report,omitempty"`
}

// NewService creates a sync service over the two gateways.
func NewService(source reconcile.SourceGateway, registry reconcile.RegistryGateway, logger *zap.Logger) *Service {
	return &Service{
		engine: reconcile.NewEngine(source, registry, logger),
		logger: logger,
	}
}

// RunCycle executes one sync cycle. It returns ErrCycleInProgress when called
// while a cycle is running; cycles never overlap.
func (s *Service) RunCycle(ctx context.Context) (*models.CycleReport, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, ErrCycleInProgress
	}
	s.running = true
	s.mu.Unlock()

	report, err := s.engine.RunCycle(ctx)

	s.mu.Lock()
	s.running = false
	s.lastRun = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastReport = report
	}
	s.mu.Unlock()

	return report, err
}

// Status returns the current scheduler state and the last cycle outcome.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Running:    s.running,
		LastRun:    s.lastRun,
		LastError:  s.lastError,
		LastReport: s.lastReport,
	}
}
