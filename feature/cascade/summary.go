package cascade

import (
	"errors"
	"time"

	"corpus-builder/core/backend"
	"corpus-builder/feature/merge"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Failure kinds beyond the backend ones.
const (
	KindUnreconcilable = "unreconcilable"
	KindWrite          = "write"
)

// StageSummary tallies the outcomes of one stage.
type StageSummary struct {
	Fetched int            `json:"fetched"`
	Reused  int            `json:"reused"`
	Skipped int            `json:"skipped"`
	Failed  map[string]int `json:"failed"`
}

func newStageSummary() StageSummary {
	return StageSummary{Failed: make(map[string]int)}
}

// FailedTotal sums failures of every kind.
func (s StageSummary) FailedTotal() int {
	n := 0
	for _, v := range s.Failed {
		n += v
	}
	return n
}

// Visited is the number of entities the stage handled.
func (s StageSummary) Visited() int {
	return s.Fetched + s.Reused + s.Skipped + s.FailedTotal()
}

func (s *StageSummary) fail(err error) string {
	kind := failureKind(err)
	s.Failed[kind]++
	return kind
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s StageSummary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("fetched", s.Fetched)
	enc.AddInt("reused", s.Reused)
	enc.AddInt("skipped", s.Skipped)
	enc.AddInt("failed", s.FailedTotal())
	return nil
}

// Summary is the outcome of a run.
type Summary struct {
	RunID    string       `json:"run_id"`
	Maps     StageSummary `json:"maps"`
	Monsters StageSummary `json:"monsters"`
	Items    StageSummary `json:"items"`
	// Fallbacks counts items classified from ID bands instead of metadata.
	Fallbacks int           `json:"fallback_classifications"`
	Duration  time.Duration `json:"duration"`
}

func newSummary(runID string) *Summary {
	return &Summary{
		RunID:    runID,
		Maps:     newStageSummary(),
		Monsters: newStageSummary(),
		Items:    newStageSummary(),
	}
}

func (s *Summary) fields() []zap.Field {
	return []zap.Field{
		zap.Object("maps", s.Maps),
		zap.Object("monsters", s.Monsters),
		zap.Object("items", s.Items),
		zap.Int("fallback_classifications", s.Fallbacks),
		zap.Duration("duration", s.Duration),
	}
}

// writeError marks persistence failures.
type writeError struct{ err error }

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func failureKind(err error) string {
	var we *writeError
	switch {
	case errors.As(err, &we):
		return KindWrite
	case errors.Is(err, merge.ErrUnreconcilable):
		return KindUnreconcilable
	default:
		return backend.Kind(err)
	}
}
