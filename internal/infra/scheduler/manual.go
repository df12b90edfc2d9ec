package scheduler

import (
	"sort"
	"sync"
	"time"
)

type manualTask struct {
	key  string
	due  time.Time
	seq  uint64
	task func()
}

// ManualScheduler is a service.TaskScheduler driven by a virtual clock.
// Tasks only run from Advance, in due-time order, on the caller's goroutine.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks map[string]*manualTask
}

// NewManual creates a ManualScheduler whose clock starts at start
func NewManual(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:   start,
		tasks: make(map[string]*manualTask),
	}
}

// Now returns the virtual time.
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

func (m *ManualScheduler) Schedule(key string, delay time.Duration, task func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.tasks[key] = &manualTask{key: key, due: m.now.Add(delay), seq: m.seq, task: task}
}

func (m *ManualScheduler) Cancel(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.tasks[key]
	delete(m.tasks, key)

	return ok
}

func (m *ManualScheduler) Pending(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.tasks[key]

	return ok
}

func (m *ManualScheduler) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tasks = make(map[string]*manualTask)
}

// Advance moves the clock forward by d and runs every task that became due.
// It returns the number of tasks run.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now = m.now.Add(d)

	due := make([]*manualTask, 0, len(m.tasks))
	for key, task := range m.tasks {
		if !task.due.After(m.now) {
			due = append(due, task)
			delete(m.tasks, key)
		}
	}
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}

		return due[i].due.Before(due[j].due)
	})

	for _, task := range due {
		task.task()
	}

	return len(due)
}
