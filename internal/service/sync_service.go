package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"workload_survey/internal/remote"
	"workload_survey/pkg/logger"
	"workload_survey/pkg/monitoring"

	"go.uber.org/zap"
)

// Pusher delivers one mutation to the remote store.
type Pusher interface {
	Push(ctx context.Context, action remote.Action, data interface{}) error
}

type SyncTask struct {
	Action remote.Action
	Data   interface{}
}

// SyncService runs remote pushes on a single worker after the local commit has happened.
// Tasks run once: failures are logged and counted, never retried.
type SyncService struct {
	pusher  Pusher
	timeout time.Duration
	queue   chan SyncTask

	mu       sync.RWMutex
	closed   bool
	done     chan struct{}
	startOne sync.Once
}

func NewSyncService(pusher Pusher, queueSize int, timeout time.Duration) *SyncService {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &SyncService{
		pusher:  pusher,
		timeout: timeout,
		queue:   make(chan SyncTask, queueSize),
		done:    make(chan struct{}),
	}
}

func (s *SyncService) Start() {
	s.startOne.Do(func() {
		go s.run()
	})
}

func (s *SyncService) run() {
	defer close(s.done)
	for task := range s.queue {
		s.execute(task)
	}
}

func (s *SyncService) execute(task SyncTask) {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.pusher.Push(ctx, task.Action, task.Data)
	switch {
	case err == nil:
		monitoring.SyncTasks.WithLabelValues(string(task.Action), "ok").Inc()
	case errors.Is(err, remote.ErrNotConfigured):
		monitoring.SyncTasks.WithLabelValues(string(task.Action), "offline").Inc()
		logger.Log.Debug("Remote sync disabled, push skipped", zap.String("action", string(task.Action)))
	default:
		monitoring.SyncTasks.WithLabelValues(string(task.Action), "failed").Inc()
		logger.Log.Warn("Remote push failed", zap.String("action", string(task.Action)), zap.Error(err))
	}
}

// Enqueue never blocks. It reports false when the task was dropped.
func (s *SyncService) Enqueue(action remote.Action, data interface{}) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		monitoring.SyncTasks.WithLabelValues(string(action), "dropped").Inc()
		logger.Log.Warn("Sync queue closed, dropping task", zap.String("action", string(action)))
		return false
	}
	select {
	case s.queue <- SyncTask{Action: action, Data: data}:
		return true
	default:
		monitoring.SyncTasks.WithLabelValues(string(action), "dropped").Inc()
		logger.Log.Warn("Sync queue full, dropping task", zap.String("action", string(action)))
		return false
	}
}

// Stop closes the queue and waits for the worker to drain it or for ctx to end.
func (s *SyncService) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	s.Start()
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
