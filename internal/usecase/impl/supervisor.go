package impl

import (
	"context"
	"sync"

	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/usecase"
)

// supervisor keeps a single slot for the in-flight submission. Acquiring the
// slot cancels and resolves the previous occupant as superseded.
type supervisor struct {
	mu      sync.Mutex
	seq     uint64
	current *slot
}

type slot struct {
	token  uint64
	cancel context.CancelFunc
	sub    *usecase.Submission
}

// acquire takes the slot for sub and returns the context its work runs under
func (s *supervisor) acquire(parent context.Context, sub *usecase.Submission) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	previous := s.current
	s.seq++
	s.current = &slot{token: s.seq, cancel: cancel, sub: sub}
	token := s.seq
	s.mu.Unlock()

	if previous != nil {
		previous.cancel()
		previous.sub.Resolve(entity.Failure(domainerrors.ErrSuperseded.Message()), domainerrors.ErrSuperseded)
	}

	return ctx, token
}

// release frees the slot if token still holds it and reports whether it did.
// A false result means the submission was superseded.
func (s *supervisor) release(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.token != token {
		return false
	}
	s.current.cancel()
	s.current = nil

	return true
}
