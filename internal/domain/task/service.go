package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/rpggio/taskbook/internal/domain/activity"
	"github.com/rpggio/taskbook/internal/repository"
)

// LoadErrorPolicy decides what AddNewTask does when the store cannot be read.
type LoadErrorPolicy string

const (
	// LoadErrorFail aborts the add so unreadable data is never overwritten.
	LoadErrorFail LoadErrorPolicy = "fail"
	// LoadErrorTreatAsEmpty continues with an empty collection.
	LoadErrorTreatAsEmpty LoadErrorPolicy = "empty"
)

// Option configures a Service.
type Option func(*Service)

// WithBuilder replaces the default task builder.
func WithBuilder(b *Builder) Option {
	return func(s *Service) { s.builder = b }
}

// WithLoadErrorPolicy sets the policy applied to store read failures.
func WithLoadErrorPolicy(p LoadErrorPolicy) Option {
	return func(s *Service) { s.onLoadError = p }
}

// Service handles task business logic.
type Service struct {
	store       Store
	activities  ActivityLogger
	builder     *Builder
	onLoadError LoadErrorPolicy
	logger      *slog.Logger

	// mu serializes the load-modify-save cycle.
	mu sync.Mutex
}

// NewService creates a new task service. activities may be nil.
func NewService(store Store, activities ActivityLogger, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Service{
		store:       store,
		activities:  activities,
		builder:     NewBuilder(nil, nil),
		onLoadError: LoadErrorFail,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddNewTask validates the request, rejects duplicates, and appends a new
// task to the stored collection. Rejections return a nil task and an error
// matching ErrInvalidInput or ErrDuplicateTask; the store is left unchanged.
func (s *Service) AddNewTask(ctx context.Context, req CreateRequest) (*Task, error) {
	if err := ValidateCreateInput(req); err != nil {
		s.logger.Warn("task rejected", "title", req.Title, "reason", err)
		s.logActivity(ctx, &activity.Entry{
			Type:    activity.TypeValidationRejected,
			Summary: fmt.Sprintf("rejected task %q", req.Title),
			Details: err.Error(),
		})
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if IsDuplicate(tasks, req.Title, req.DueDate) {
		s.logger.Warn("task rejected", "title", req.Title, "due_date", req.DueDate, "reason", ErrDuplicateTask)
		s.logActivity(ctx, &activity.Entry{
			Type:    activity.TypeDuplicateRejected,
			Summary: fmt.Sprintf("task %q already exists for %s", req.Title, req.DueDate),
		})
		return nil, fmt.Errorf("%w: %q due %s", ErrDuplicateTask, req.Title, req.DueDate)
	}

	t := s.builder.Build(req)
	tasks = append(tasks, t)

	if err := s.store.Save(ctx, tasks); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			s.logger.Warn("task rejected by store", "title", req.Title, "due_date", req.DueDate, "error", err)
			return nil, fmt.Errorf("%w: %q due %s: %w", ErrDuplicateTask, req.Title, req.DueDate, err)
		}
		s.logger.Error("failed to save tasks", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}

	s.logger.Info("task added", "title", t.Title, "id", t.ID)
	s.logActivity(ctx, &activity.Entry{
		TaskID:  &t.ID,
		Type:    activity.TypeTaskCreated,
		Summary: fmt.Sprintf("created task %s", t.ID),
	})

	return &t, nil
}

func (s *Service) load(ctx context.Context) ([]Task, error) {
	tasks, err := s.store.Load(ctx)
	switch {
	case err == nil:
		return tasks, nil
	case errors.Is(err, repository.ErrNotFound):
		return nil, nil
	}

	s.logActivity(ctx, &activity.Entry{
		Type:    activity.TypeLoadFailed,
		Summary: "failed to load tasks",
		Details: err.Error(),
	})
	if s.onLoadError == LoadErrorTreatAsEmpty {
		s.logger.Error("failed to load tasks, continuing with empty list", "error", err)
		return nil, nil
	}
	s.logger.Error("failed to load tasks", "error", err)
	return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

func (s *Service) logActivity(ctx context.Context, entry *activity.Entry) {
	if s.activities == nil {
		return
	}
	if err := s.activities.LogActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to record activity", "type", entry.Type, "error", err)
	}
}
