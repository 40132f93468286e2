// Package survey implements the step-by-step data collection flow: an identity step, one step
// per configured question and a terminal submission that produces a Response.
package survey

import (
	"fmt"
	"time"

	"workload_survey/internal/model"
	"workload_survey/internal/scoring"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	TimestampLayout = "02.01.2006 15:04:05"
)

type Phase string

const (
	PhaseIdentity  Phase = "identity"
	PhaseQuestion  Phase = "question"
	PhaseSubmitted Phase = "submitted"
	PhaseExited    Phase = "exited"
)

// Backend is the live configuration and the response log the session reads from and appends to.
type Backend interface {
	Questions() []model.Question
	HasPersonnel(name string) bool
	AppendResponse(resp model.Response) error
}

// State is a read-only view of a session.
type State struct {
	Phase         Phase           `json:"phase"`
	Step          int             `json:"step"`
	TotalSteps    int             `json:"totalSteps"`
	Progress      float64         `json:"progress"`
	PersonnelName string          `json:"personnelName"`
	Question      *model.Question `json:"question,omitempty"`
	Scores        map[string]int  `json:"scores"`
}

// Session is not safe for concurrent use; the registry serialises access.
type Session struct {
	backend   Backend
	step      int
	personnel string
	scores    map[string]int
	phase     Phase

	now   func() time.Time
	newID func() string
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

func New(backend Backend, opts ...Option) *Session {
	s := &Session{
		backend: backend,
		scores:  map[string]int{},
		phase:   PhaseIdentity,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) closed() bool {
	return s.phase == PhaseSubmitted || s.phase == PhaseExited
}

// SelectPersonnel records the identity choice. Roster membership is checked when advancing.
func (s *Session) SelectPersonnel(name string) error {
	if s.closed() {
		return ErrSessionClosed
	}
	s.personnel = name
	return nil
}

// Rate records a rating for an item of the current question step.
func (s *Session) Rate(itemID string, value int) error {
	if s.closed() {
		return ErrSessionClosed
	}
	if value < MinRating || value > MaxRating {
		return ErrInvalidRating
	}
	q, ok := s.currentQuestion()
	if !ok {
		return ErrUnknownItem
	}
	for _, id := range q.ItemIDs() {
		if id == itemID {
			s.scores[itemID] = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
}

// Next validates the current step and moves forward. Leaving the last question submits the
// survey and returns the appended Response; otherwise the returned response is nil.
func (s *Session) Next() (*model.Response, error) {
	if s.closed() {
		return nil, ErrSessionClosed
	}
	questions := s.backend.Questions()

	if s.step == 0 {
		if s.personnel == "" {
			return nil, &StepIncompleteError{Step: 0}
		}
		if !s.backend.HasPersonnel(s.personnel) {
			return nil, ErrPersonnelNotFound
		}
	} else {
		if missing := s.missing(questions[s.step-1]); len(missing) > 0 {
			return nil, &StepIncompleteError{Step: s.step, Missing: missing}
		}
	}

	if s.step < len(questions) {
		s.step++
		s.phase = PhaseQuestion
		return nil, nil
	}
	return s.submit(questions)
}

// Back returns to the previous step keeping every rating. From the identity step it exits.
func (s *Session) Back() error {
	if s.closed() {
		return ErrSessionClosed
	}
	if s.step == 0 {
		s.phase = PhaseExited
		s.scores = nil
		return nil
	}
	s.step--
	if s.step == 0 {
		s.phase = PhaseIdentity
	}
	return nil
}

// submit re-checks the roster: the name may have been removed while the survey was open.
func (s *Session) submit(questions []model.Question) (*model.Response, error) {
	if !s.backend.HasPersonnel(s.personnel) {
		return nil, ErrPersonnelNotFound
	}
	total, err := scoring.TotalScore(questions, s.scores)
	if err != nil {
		return nil, fmt.Errorf("score submission: %w", err)
	}
	resp := model.Response{
		ID:            s.newID(),
		Timestamp:     s.now().Format(TimestampLayout),
		PersonnelName: s.personnel,
		Scores:        model.CloneScores(s.scores),
		TotalScore:    total,
	}
	if err := s.backend.AppendResponse(resp); err != nil {
		return nil, fmt.Errorf("append response: %w", err)
	}
	s.phase = PhaseSubmitted
	s.scores = nil
	return &resp, nil
}

func (s *Session) missing(q model.Question) []string {
	var out []string
	for _, id := range q.ItemIDs() {
		if _, ok := s.scores[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func (s *Session) currentQuestion() (model.Question, bool) {
	if s.step == 0 {
		return model.Question{}, false
	}
	questions := s.backend.Questions()
	if s.step > len(questions) {
		return model.Question{}, false
	}
	return questions[s.step-1], true
}

// State snapshots the session for presentation.
func (s *Session) State() State {
	n := len(s.backend.Questions())
	st := State{
		Phase:         s.phase,
		Step:          s.step,
		TotalSteps:    n,
		PersonnelName: s.personnel,
		Scores:        model.CloneScores(s.scores),
	}
	if n > 0 {
		st.Progress = float64(s.step) / float64(n) * 100
	}
	if q, ok := s.currentQuestion(); ok && !s.closed() {
		st.Question = &q
	}
	return st
}
