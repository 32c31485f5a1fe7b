package usecase

import (
	"context"
	"sync"

	"qrstudio/internal/domain/entity"
)

// Submission is the handle returned for one orchestrated operation.
type Submission struct {
	once    sync.Once
	done    chan struct{}
	outcome entity.OperationOutcome
	err     error
}

// NewSubmission creates an unresolved submission.
func NewSubmission() *Submission {
	return &Submission{done: make(chan struct{})}
}

// Resolve records the result. Only the first call has an effect.
func (s *Submission) Resolve(outcome entity.OperationOutcome, err error) {
	s.once.Do(func() {
		s.outcome = outcome
		s.err = err
		close(s.done)
	})
}

// Done is closed once the submission is resolved.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission is resolved or ctx is done. The error is
// non-nil only when the submission was superseded or ctx ended first; a
// failed operation is reported through the outcome.
func (s *Submission) Wait(ctx context.Context) (entity.OperationOutcome, error) {
	select {
	case <-s.done:
		return s.outcome, s.err
	case <-ctx.Done():
		return entity.Failure(ctx.Err().Error()), ctx.Err()
	}
}
