package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"billd/internal/model"
)

const DefaultPollInterval = 30 * time.Second

var ErrInvalidInterval = errors.New("scheduler: invalid poll interval")

// Source is the reminder store the engine polls. Snapshot returns the
// current reminder set; Commit writes back the set with notified flags
// applied. Both run on the engine goroutine, never concurrently.
type Source interface {
	Snapshot() ([]model.Reminder, error)
	Commit(updated []model.Reminder) error
}

// Engine re-evaluates the reminder set at a bounded poll interval and
// emits newly-due reminders on its output channel. Polling rather than
// one timer per reminder keeps the engine correct when reminders are
// added, edited, or deleted between ticks; detection latency is bounded
// by the interval.
type Engine struct {
	mu       sync.Mutex
	source   Source
	interval time.Duration
	loc      *time.Location
	now      func() time.Time
	out      chan model.Reminder
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	dropped  uint64
	faults   uint64
}

type EngineOption func(*Engine)

// WithNow overrides the wall clock, letting tests drive tick sequences
// deterministically.
func WithNow(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) { e.loc = loc }
}

func NewEngine(source Source, interval time.Duration, bufferSize int, opts ...EngineOption) (*Engine, error) {
	if source == nil {
		return nil, errors.New("scheduler: nil source")
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	e := &Engine{
		source:   source,
		interval: interval,
		loc:      time.Local,
		now:      time.Now,
		out:      make(chan model.Reminder, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// C delivers newly-due reminders. The channel is closed after Stop.
func (e *Engine) C() <-chan model.Reminder {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop halts polling and waits for the loop to exit. No tick runs
// after Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

// Faults counts snapshot/commit failures. Store trouble is recorded
// and the next tick retries; the loop never aborts.
func (e *Engine) Faults() uint64 {
	return atomic.LoadUint64(&e.faults)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	// Evaluate once up front so reminders that came due while the
	// process was not running fire without waiting a full interval.
	e.Poll()
	for {
		select {
		case <-ticker.C:
			e.Poll()
		case <-e.stopCh:
			return
		}
	}
}

// Poll runs a single snapshot-evaluate-commit pass and emits fired
// reminders without blocking; events that find a full buffer are
// counted as dropped.
func (e *Engine) Poll() {
	reminders, err := e.source.Snapshot()
	if err != nil {
		atomic.AddUint64(&e.faults, 1)
		return
	}
	res := Evaluate(reminders, e.now(), e.loc)
	if len(res.Fired) == 0 {
		return
	}
	if err := e.source.Commit(res.Updated); err != nil {
		atomic.AddUint64(&e.faults, 1)
		return
	}
	for _, rem := range res.Fired {
		select {
		case e.out <- rem:
		default:
			atomic.AddUint64(&e.dropped, 1)
		}
	}
}
