package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"workload_survey/internal/remote"
	"workload_survey/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePusher struct {
	mu      sync.Mutex
	actions []remote.Action
	fail    map[remote.Action]bool
	block   chan struct{}
}

func (p *fakePusher) Push(ctx context.Context, action remote.Action, _ interface{}) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, action)
	if p.fail[action] {
		return errBoom
	}
	return nil
}

func (p *fakePusher) pushed() []remote.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]remote.Action(nil), p.actions...)
}

func TestSyncService_RunsEachTaskOnceInOrder(t *testing.T) {
	p := &fakePusher{fail: map[remote.Action]bool{remote.ActionUpdatePersonnel: true}}
	s := service.NewSyncService(p, 8, time.Second)
	s.Start()

	assert.True(t, s.Enqueue(remote.ActionAddResponse, nil))
	assert.True(t, s.Enqueue(remote.ActionUpdatePersonnel, nil))
	assert.True(t, s.Enqueue(remote.ActionUpdateWeights, nil))

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, []remote.Action{
		remote.ActionAddResponse,
		remote.ActionUpdatePersonnel,
		remote.ActionUpdateWeights,
	}, p.pushed())
}

func TestSyncService_DropsWhenFull(t *testing.T) {
	p := &fakePusher{}
	s := service.NewSyncService(p, 1, time.Second)

	assert.True(t, s.Enqueue(remote.ActionAddResponse, nil))
	assert.False(t, s.Enqueue(remote.ActionUpdateConfig, nil))

	require.NoError(t, s.Stop(context.Background()))
	assert.Equal(t, []remote.Action{remote.ActionAddResponse}, p.pushed())
	assert.False(t, s.Enqueue(remote.ActionUpdateConfig, nil))
}

func TestSyncService_StopIsBounded(t *testing.T) {
	p := &fakePusher{block: make(chan struct{})}
	defer close(p.block)
	s := service.NewSyncService(p, 4, time.Second)
	s.Start()
	s.Enqueue(remote.ActionAddResponse, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Stop(ctx), context.DeadlineExceeded)
}
