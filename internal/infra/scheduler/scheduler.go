// Package scheduler implements service.TaskScheduler: a keyed queue of delayed
// tasks where rescheduling a key replaces its pending task.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventpulse/internal/domain/lifecycle"
	"eventpulse/internal/domain/service"

	"go.uber.org/fx"
)

type pendingTask struct {
	timer      *time.Timer
	generation uint64
}

type timerScheduler struct {
	mu         sync.Mutex
	tasks      map[string]*pendingTask
	generation uint64
	stopped    bool
	running    sync.WaitGroup
	logger     *slog.Logger
}

// Params defines the dependencies of the scheduler
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// New creates a wall-clock scheduler whose pending tasks are dropped on shutdown
func New(params Params) service.TaskScheduler {
	s := newTimerScheduler(params.Logger)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			s.Stop()

			waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return s.wait(waitCtx)
		},
	})

	return s
}

func newTimerScheduler(logger *slog.Logger) *timerScheduler {
	return &timerScheduler{
		tasks:  make(map[string]*pendingTask),
		logger: logger,
	}
}

func (s *timerScheduler) Schedule(key string, delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if prev, ok := s.tasks[key]; ok {
		prev.timer.Stop()
	}

	s.generation++
	gen := s.generation
	s.tasks[key] = &pendingTask{
		generation: gen,
		timer: time.AfterFunc(delay, func() {
			s.fire(key, gen, task)
		}),
	}
}

// fire runs task only if it is still the latest task for key. A timer that
// already fired when it was replaced sees a newer generation and bails out.
func (s *timerScheduler) fire(key string, gen uint64, task func()) {
	s.mu.Lock()
	current, ok := s.tasks[key]
	if !ok || current.generation != gen || s.stopped {
		s.mu.Unlock()

		return
	}
	delete(s.tasks, key)
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Scheduled task panicked", slog.String("key", key), slog.Any("panic", r))
		}
	}()

	task()
}

func (s *timerScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[key]
	if !ok {
		return false
	}
	task.timer.Stop()
	delete(s.tasks, key)

	return true
}

func (s *timerScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]

	return ok
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, task := range s.tasks {
		task.timer.Stop()
		delete(s.tasks, key)
	}
}

// wait blocks until tasks that were already running at Stop have returned
func (s *timerScheduler) wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
