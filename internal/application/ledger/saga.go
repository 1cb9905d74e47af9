package ledger

import (
	"context"
	"fmt"

	"github.com/erp/ledger/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// SagaError is returned when a step of a forward-only saga fails.
// Completed lists the steps that already took effect; nothing is rolled back.
type SagaError struct {
	Saga      string
	Failed    string
	Completed []string
	Err       error
}

func (e *SagaError) Error() string {
	return fmt.Sprintf("%s: step %q failed after %v: %v", e.Saga, e.Failed, e.Completed, e.Err)
}

func (e *SagaError) Unwrap() error {
	return e.Err
}

// Saga runs named steps in order and records which ones completed
type Saga struct {
	name      string
	completed []string
	skipped   []string
	logger    *zap.Logger
}

// NewSaga starts an empty saga
func NewSaga(name string, logger *zap.Logger) *Saga {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Saga{name: name, logger: logger}
}

// Run executes a required step. On failure it returns a *SagaError and the
// caller must stop.
func (s *Saga) Run(ctx context.Context, step string, fn func(ctx context.Context) error) error {
	ctx, span := telemetry.StartServiceSpan(ctx, s.name, step)
	defer span.End()

	if err := fn(ctx); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Saga step failed",
			zap.String("saga", s.name),
			zap.String("step", step),
			zap.Strings("completed", s.completed),
			zap.Error(err))
		telemetry.RecordSagaStep(ctx, s.name, step, telemetry.OutcomeFailed)
		return &SagaError{
			Saga:      s.name,
			Failed:    step,
			Completed: s.Completed(),
			Err:       err,
		}
	}
	s.completed = append(s.completed, step)
	telemetry.RecordSagaStep(ctx, s.name, step, telemetry.OutcomeCompleted)
	return nil
}

// Try executes an optional step. A failure is logged and the step is
// recorded as skipped; the saga goes on.
func (s *Saga) Try(ctx context.Context, step string, fn func(ctx context.Context) error) bool {
	ctx, span := telemetry.StartServiceSpan(ctx, s.name, step)
	defer span.End()

	if err := fn(ctx); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Warn("Saga step skipped",
			zap.String("saga", s.name),
			zap.String("step", step),
			zap.Error(err))
		s.skipped = append(s.skipped, step)
		telemetry.RecordSagaStep(ctx, s.name, step, telemetry.OutcomeSkipped)
		return false
	}
	s.completed = append(s.completed, step)
	telemetry.RecordSagaStep(ctx, s.name, step, telemetry.OutcomeCompleted)
	return true
}

// Completed returns a copy of the completed step names
func (s *Saga) Completed() []string {
	return append([]string(nil), s.completed...)
}

// Skipped returns a copy of the skipped step names
func (s *Saga) Skipped() []string {
	return append([]string(nil), s.skipped...)
}
