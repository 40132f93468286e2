package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"workload_survey/internal/model"
	"workload_survey/internal/remote"
	"workload_survey/internal/repository"
	"workload_survey/internal/survey"
	"workload_survey/internal/util"
	"workload_survey/pkg/logger"
	"workload_survey/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const persistTimeout = 5 * time.Second

// AppDataStore is the local snapshot mirror.
type AppDataStore interface {
	Load(ctx context.Context) (model.AppData, error)
	Save(ctx context.Context, data model.AppData) error
}

// Fetcher returns the remote state, or nil when the remote has nothing to offer.
type Fetcher interface {
	Fetch(ctx context.Context) (*remote.Snapshot, error)
}

// Enqueuer accepts a remote push to run after the local commit.
type Enqueuer interface {
	Enqueue(action remote.Action, data interface{}) bool
}

// MergeResult reports what a remote snapshot changed.
type MergeResult struct {
	Personnel      int  `json:"personnel"`
	Responses      int  `json:"responses"`
	WeightsApplied int  `json:"weightsApplied"`
	WelcomeText    bool `json:"welcomeText"`
	Skipped        int  `json:"skipped"`
}

// StateService owns the live AppData. Every mutation is committed in memory, mirrored to the
// local store and then handed to the sync queue.
type StateService struct {
	mu    sync.RWMutex
	data  model.AppData
	store AppDataStore
	sync  Enqueuer
}

func NewStateService(store AppDataStore, sync Enqueuer) *StateService {
	return &StateService{
		data:  model.DefaultAppData(),
		store: store,
		sync:  sync,
	}
}

// Load reads the local snapshot, falling back to the built-in defaults.
func (s *StateService) Load(ctx context.Context) {
	data, err := s.store.Load(ctx)
	switch {
	case err == nil:
		logger.Log.Info("Local snapshot loaded",
			zap.Int("responses", len(data.Responses)),
			zap.Int("personnel", len(data.Personnel)))
	case errors.Is(err, repository.ErrKeyNotFound):
		logger.Log.Info("No local snapshot, starting from defaults")
	default:
		logger.Log.Warn("Local snapshot unusable, starting from defaults", zap.Error(err))
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// Bootstrap awaits one remote fetch bounded by timeout and merges it. On any failure the
// current data stays in place and the error is returned for logging.
func (s *StateService) Bootstrap(ctx context.Context, fetcher Fetcher, timeout time.Duration) (MergeResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	snap, err := fetcher.Fetch(ctx)
	if err != nil {
		return MergeResult{}, err
	}
	if snap == nil {
		return MergeResult{}, nil
	}
	return s.Merge(snap), nil
}

// Merge applies a remote snapshot: roster and responses are replaced when present, the welcome
// text comes from its config record, and each named section weight is overwritten.
func (s *StateService) Merge(snap *remote.Snapshot) MergeResult {
	res := MergeResult{Skipped: snap.Skipped}

	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Personnel != nil {
		s.data.Personnel = append([]string{}, snap.Personnel...)
		res.Personnel = len(snap.Personnel)
	}
	if snap.WelcomeText != nil {
		s.data.WelcomeText = *snap.WelcomeText
		res.WelcomeText = true
	}
	if snap.Responses != nil {
		s.data.Responses = make([]model.Response, len(snap.Responses))
		for i, r := range snap.Responses {
			s.data.Responses[i] = r.Clone()
		}
		res.Responses = len(snap.Responses)
	}
	for qi := range s.data.Questions {
		for si := range s.data.Questions[qi].Sections {
			sec := &s.data.Questions[qi].Sections[si]
			if w, ok := snap.Weights[sec.ID]; ok {
				sec.SectionWeight = w
				res.WeightsApplied++
			}
		}
	}

	s.persistLocked()
	return res
}

func (s *StateService) persistLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.store.Save(ctx, s.data); err != nil {
		logger.Log.Error("Failed to persist local snapshot", zap.Error(err))
	}
}

func (s *StateService) Snapshot() model.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *StateService) Questions() []model.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneQuestions(s.data.Questions)
}

func (s *StateService) WelcomeText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.WelcomeText
}

func (s *StateService) Personnel() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.data.Personnel...)
}

func (s *StateService) Responses() []model.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Response, len(s.data.Responses))
	for i, r := range s.data.Responses {
		out[i] = r.Clone()
	}
	return out
}

func (s *StateService) HasPersonnel(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Personnel {
		if p == name {
			return true
		}
	}
	return false
}

// SearchPersonnel filters the roster by substring using Turkish case rules.
func (s *StateService) SearchPersonnel(query string) []string {
	all := s.Personnel()
	q := strings.TrimSpace(query)
	if q == "" {
		return all
	}
	// a Caser keeps state, so each search gets its own
	fold := cases.Lower(language.Turkish)
	q = fold.String(q)
	out := make([]string, 0, len(all))
	for _, name := range all {
		if strings.Contains(fold.String(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// AppendResponse commits a finished survey. The remote push runs afterwards and can not undo it.
func (s *StateService) AppendResponse(resp model.Response) error {
	stored := resp.Clone()

	s.mu.Lock()
	s.data.Responses = append(s.data.Responses, stored)
	s.persistLocked()
	s.mu.Unlock()

	monitoring.ResponsesSubmitted.Inc()
	s.sync.Enqueue(remote.ActionAddResponse, resp.Clone())
	return nil
}

// AddPersonnel appends every new non-blank line of text to the roster and returns the added names.
func (s *StateService) AddPersonnel(text string) ([]string, error) {
	names := util.SplitLines(text)
	if len(names) == 0 {
		return nil, util.ErrEmptyRoster
	}

	s.mu.Lock()
	seen := make(map[string]bool, len(s.data.Personnel))
	for _, p := range s.data.Personnel {
		seen[p] = true
	}
	var added []string
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		s.data.Personnel = append(s.data.Personnel, n)
		added = append(added, n)
	}
	if len(added) > 0 {
		s.persistLocked()
	}
	roster := append([]string{}, s.data.Personnel...)
	s.mu.Unlock()

	if len(added) > 0 {
		s.sync.Enqueue(remote.ActionUpdatePersonnel, roster)
	}
	return added, nil
}

func (s *StateService) RemovePersonnel(name string) error {
	s.mu.Lock()
	idx := -1
	for i, p := range s.data.Personnel {
		if p == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return survey.ErrPersonnelNotFound
	}
	s.data.Personnel = append(s.data.Personnel[:idx:idx], s.data.Personnel[idx+1:]...)
	s.persistLocked()
	roster := append([]string{}, s.data.Personnel...)
	s.mu.Unlock()

	s.sync.Enqueue(remote.ActionUpdatePersonnel, roster)
	return nil
}

// UpdateWeights validates every update before applying any of them, then pushes the full list.
func (s *StateService) UpdateWeights(updates []model.SectionWeight) ([]model.SectionWeight, error) {
	if len(updates) == 0 {
		return nil, util.ErrEmptyWeights
	}

	s.mu.Lock()
	index := make(map[string]*model.Section)
	for qi := range s.data.Questions {
		for si := range s.data.Questions[qi].Sections {
			sec := &s.data.Questions[qi].Sections[si]
			index[sec.ID] = sec
		}
	}
	for _, u := range updates {
		if _, ok := index[u.SectionID]; !ok {
			s.mu.Unlock()
			return nil, ErrSectionNotFound
		}
		if u.Weight < 0 {
			s.mu.Unlock()
			return nil, ErrInvalidWeight
		}
	}
	for _, u := range updates {
		index[u.SectionID].SectionWeight = u.Weight
	}
	s.persistLocked()
	weights := model.Weights(s.data.Questions)
	s.mu.Unlock()

	s.sync.Enqueue(remote.ActionUpdateWeights, weights)
	return weights, nil
}

func (s *StateService) SetWelcomeText(text string) {
	s.mu.Lock()
	s.data.WelcomeText = text
	s.persistLocked()
	s.mu.Unlock()

	s.sync.Enqueue(remote.ActionUpdateConfig, map[string]string{"welcomeText": text})
}
