package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"workload_survey/internal/model"
	"workload_survey/internal/survey"
	"workload_survey/pkg/logger"
	"workload_survey/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Rating is one item rating sent by the survey form.
type Rating struct {
	ItemID string `json:"itemId" binding:"required"`
	Value  int    `json:"value" binding:"required"`
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *survey.Session
	lastSeen atomic.Int64 // unix nanos
}

// SessionService keeps in-progress survey sessions keyed by id. Idle sessions expire after ttl
// and finished ones are dropped as soon as they close.
type SessionService struct {
	backend survey.Backend
	ttl     time.Duration
	opts    []survey.Option

	mu       sync.Mutex
	sessions map[string]*sessionEntry
	now      func() time.Time
	newID    func() string
}

func NewSessionService(backend survey.Backend, ttl time.Duration, opts ...survey.Option) *SessionService {
	return &SessionService{
		backend:  backend,
		ttl:      ttl,
		opts:     opts,
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// SetClock replaces the registry clock used for expiry.
func (s *SessionService) SetClock(now func() time.Time) { s.now = now }

func (s *SessionService) Create() (string, survey.State) {
	sess := survey.New(s.backend, s.opts...)
	id := s.newID()

	s.mu.Lock()
	e := &sessionEntry{session: sess}
	e.lastSeen.Store(s.now().UnixNano())
	s.sessions[id] = e
	n := len(s.sessions)
	s.mu.Unlock()

	monitoring.ActiveSessions.Set(float64(n))
	return id, sess.State()
}

// with runs fn on the session under its own lock, then drops the session if it closed.
func (s *SessionService) with(id string, fn func(*survey.Session) error) (survey.State, error) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok && s.expired(e) {
		delete(s.sessions, id)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return survey.State{}, ErrSessionNotFound
	}

	e.mu.Lock()
	err := fn(e.session)
	st := e.session.State()
	e.lastSeen.Store(s.now().UnixNano())
	closed := st.Phase == survey.PhaseSubmitted || st.Phase == survey.PhaseExited
	e.mu.Unlock()

	if closed {
		s.remove(id)
	}
	return st, err
}

func (s *SessionService) expired(e *sessionEntry) bool {
	if s.ttl <= 0 {
		return false
	}
	return s.now().Sub(time.Unix(0, e.lastSeen.Load())) > s.ttl
}

func (s *SessionService) remove(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()
	monitoring.ActiveSessions.Set(float64(n))
}

func (s *SessionService) State(id string) (survey.State, error) {
	return s.with(id, func(*survey.Session) error { return nil })
}

func (s *SessionService) SelectPersonnel(id, name string) (survey.State, error) {
	return s.with(id, func(sess *survey.Session) error {
		return sess.SelectPersonnel(name)
	})
}

// Rate applies ratings in order and stops at the first rejected one; earlier ratings stay.
func (s *SessionService) Rate(id string, ratings []Rating) (survey.State, error) {
	return s.with(id, func(sess *survey.Session) error {
		for _, r := range ratings {
			if err := sess.Rate(r.ItemID, r.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Next advances the session. The response is non-nil only when this call submitted the survey.
func (s *SessionService) Next(id string) (survey.State, *model.Response, error) {
	var resp *model.Response
	st, err := s.with(id, func(sess *survey.Session) error {
		var err error
		resp, err = sess.Next()
		return err
	})
	return st, resp, err
}

func (s *SessionService) Back(id string) (survey.State, error) {
	return s.with(id, func(sess *survey.Session) error {
		return sess.Back()
	})
}

func (s *SessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes idle sessions and returns how many were dropped.
func (s *SessionService) Sweep() int {
	s.mu.Lock()
	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, id)
			removed++
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	monitoring.ActiveSessions.Set(float64(n))
	return removed
}

// Run sweeps once per interval until ctx ends.
func (s *SessionService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Log.Info("Expired survey sessions removed", zap.Int("count", n))
			}
		}
	}
}
