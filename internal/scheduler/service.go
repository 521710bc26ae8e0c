package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// jobEntry represents a registered job with metadata
type jobEntry struct {
	name     string
	schedule string
	handler  func() error
	cronID   cron.EntryID
	lastRun  *time.Time
	lastErr  string
}

// Service wraps a cron runner and tracks registered refresh jobs.
type Service struct {
	cron    *cron.Cron
	logger  arbor.ILogger
	mu      sync.Mutex
	jobs    map[string]*jobEntry
	running bool
}

// NewService creates a new scheduler service
func NewService(logger arbor.ILogger) *Service {
	return &Service{
		cron:   cron.New(),
		logger: logger,
		jobs:   make(map[string]*jobEntry),
	}
}

// Register adds a named job on the given cron schedule. The handler runs
// asynchronously on each tick; errors are logged, never fatal.
func (s *Service) Register(name, schedule string, handler func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	entry := &jobEntry{
		name:     name,
		schedule: schedule,
		handler:  handler,
	}

	id, err := s.cron.AddFunc(schedule, func() { s.run(entry) })
	if err != nil {
		return fmt.Errorf("failed to add cron job %q: %w", name, err)
	}
	entry.cronID = id
	s.jobs[name] = entry

	s.logger.Info().
		Str("job", name).
		Str("schedule", schedule).
		Msg("Registered scheduled job")
	return nil
}

func (s *Service) run(entry *jobEntry) {
	start := time.Now()
	err := entry.handler()

	s.mu.Lock()
	entry.lastRun = &start
	if err != nil {
		entry.lastErr = err.Error()
	} else {
		entry.lastErr = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("job", entry.name).
			Msg("Scheduled job failed")
		return
	}
	s.logger.Debug().
		Str("job", entry.name).
		Str("duration", time.Since(start).String()).
		Msg("Scheduled job completed")
}

// RunAll executes every registered job once, immediately. Used at startup so
// the first page load has data without waiting for a cron tick.
func (s *Service) RunAll() {
	s.mu.Lock()
	entries := make([]*jobEntry, 0, len(s.jobs))
	for _, entry := range s.jobs {
		entries = append(entries, entry)
	}
	s.mu.Unlock()

	for _, entry := range entries {
		s.run(entry)
	}
}

// Start begins cron scheduling.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	s.cron.Start()
	s.running = true
	s.logger.Info().Int("jobs", len(s.jobs)).Msg("Scheduler started")
	return nil
}

// Stop halts the scheduler and waits for in-flight jobs to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("Scheduler stopped")
}
