package service_test

import (
	"context"
	"errors"
	"sync"

	"workload_survey/internal/model"
	"workload_survey/internal/remote"
	"workload_survey/internal/repository"
)

type memStore struct {
	mu      sync.Mutex
	data    *model.AppData
	saves   int
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (model.AppData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return model.DefaultAppData(), m.loadErr
	}
	if m.data == nil {
		return model.DefaultAppData(), repository.ErrKeyNotFound
	}
	return m.data.Clone(), nil
}

func (m *memStore) Save(_ context.Context, data model.AppData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	c := data.Clone()
	m.data = &c
	return nil
}

func (m *memStore) saved() model.AppData {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone()
}

type queued struct {
	action remote.Action
	data   interface{}
}

type recordingQueue struct {
	mu    sync.Mutex
	tasks []queued
}

func (q *recordingQueue) Enqueue(action remote.Action, data interface{}) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, queued{action, data})
	return true
}

func (q *recordingQueue) all() []queued {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]queued(nil), q.tasks...)
}

type fakeFetcher struct {
	snap *remote.Snapshot
	err  error
	wait bool
}

func (f fakeFetcher) Fetch(ctx context.Context) (*remote.Snapshot, error) {
	if f.wait {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.snap, f.err
}

var errBoom = errors.New("boom")

// smallQuestions is two questions with one section each over a single aircraft "x".
func smallQuestions() []model.Question {
	a := []model.Aircraft{{Label: "X", IDSuffix: "x"}}
	return []model.Question{
		{ID: 1, Text: "q1", Sections: []model.Section{model.NewSection("1a", "a", "A", 10, a)}},
		{ID: 2, Text: "q2", Sections: []model.Section{model.NewSection("2a", "a", "B", 10, a)}},
	}
}

func smallData() *model.AppData {
	return &model.AppData{
		WelcomeText: "hi",
		Questions:   smallQuestions(),
		Personnel:   []string{"Ali"},
		Responses:   []model.Response{},
	}
}
