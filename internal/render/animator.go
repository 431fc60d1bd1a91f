package render

import (
	"context"
	"sync"
	"time"

	"github.com/alimgiray/gfolio/internal/format"
)

// FrameFunc receives each intermediate counter value
type FrameFunc func(value int)

// Animator drives a counter from zero to target, one frame at a time
type Animator interface {
	Animate(key string, target int, frame FrameFunc)
}

// FinalFrameAnimator jumps straight to the last frame. Full-page responses
// use it: the markup leaves the server with counters at their end values.
type FinalFrameAnimator struct{}

func (FinalFrameAnimator) Animate(_ string, target int, frame FrameFunc) {
	frame(format.CounterValue(target, format.CounterDuration))
}

// DefaultFrameInterval is roughly one display refresh at 60Hz
const DefaultFrameInterval = 16 * time.Millisecond

type counterTask struct {
	cancel context.CancelFunc
}

// CounterAnimator runs one cancellable task per counter key. Starting a key
// that is already running cancels the previous task first.
type CounterAnimator struct {
	mu       sync.Mutex
	tasks    map[string]*counterTask
	wg       sync.WaitGroup
	interval time.Duration
	now      func() time.Time
}

func NewCounterAnimator(interval time.Duration) *CounterAnimator {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &CounterAnimator{
		tasks:    make(map[string]*counterTask),
		interval: interval,
		now:      time.Now,
	}
}

func (a *CounterAnimator) Animate(key string, target int, frame FrameFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	task := &counterTask{cancel: cancel}

	a.mu.Lock()
	if prev, ok := a.tasks[key]; ok {
		prev.cancel()
	}
	a.tasks[key] = task
	a.wg.Add(1)
	a.mu.Unlock()

	go a.run(ctx, key, task, target, frame)
}

func (a *CounterAnimator) run(ctx context.Context, key string, task *counterTask, target int, frame FrameFunc) {
	defer a.wg.Done()
	defer a.finish(key, task)

	start := a.now()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		elapsed := a.now().Sub(start)
		frame(format.CounterValue(target, elapsed))
		if format.CounterProgress(elapsed) >= 1 {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// finish drops the task entry unless a newer task already replaced it
func (a *CounterAnimator) finish(key string, task *counterTask) {
	task.cancel()
	a.mu.Lock()
	defer a.mu.Unlock()
	if current, ok := a.tasks[key]; ok && current == task {
		delete(a.tasks, key)
	}
}

// Stop cancels the animation for key, if one is running
func (a *CounterAnimator) Stop(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if task, ok := a.tasks[key]; ok {
		task.cancel()
		delete(a.tasks, key)
	}
}

// StopAll cancels every running animation
func (a *CounterAnimator) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for key, task := range a.tasks {
		task.cancel()
		delete(a.tasks, key)
	}
}

// Running reports how many animations are still active
func (a *CounterAnimator) Running() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.tasks)
}

// Wait blocks until every started animation has finished or been stopped
func (a *CounterAnimator) Wait() {
	a.wg.Wait()
}
