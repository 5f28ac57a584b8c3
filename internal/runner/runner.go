package runner

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"hashmill/internal/logging"
)

// MinWorkers is the pool floor: smaller requests still start this many
// workers. Larger requests are honored exactly.
const MinWorkers = 8

// Task pairs a stable input index with the file path to hash. Index is the
// task's slot in the result array and its position in the output.
type Task struct {
	Index int
	Path  string
}

// Result is the outcome of hashing one file. Exactly one of Digest and Err is
// meaningful: Digest when OK, Err otherwise.
type Result struct {
	OK     bool
	Digest string
	Err    string
}

// Outcome is what the run hands to its sink: one task's result, delivered in
// input order.
type Outcome struct {
	Index  int
	Path   string
	Result Result
}

// Summary aggregates a completed run.
type Summary struct {
	Files     int
	Succeeded int
	Failed    int
	Workers   int
	Elapsed   time.Duration
}

// FingerprintFunc hashes the file at path and returns its digest.
type FingerprintFunc func(path string) (string, error)

// Sink receives outcomes strictly by ascending index.
type Sink interface {
	Emit(Outcome)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Outcome)

func (f SinkFunc) Emit(o Outcome) { f(o) }

// EffectiveWorkers applies the pool floor to a requested worker count.
func EffectiveWorkers(requested int) int {
	if requested < MinWorkers {
		return MinWorkers
	}
	return requested
}

// Config describes a Runner.
type Config struct {
	// Workers is the requested pool size; the effective size is
	// EffectiveWorkers(Workers).
	Workers int
	// Fingerprint hashes one file. It must be safe for concurrent use.
	Fingerprint FingerprintFunc
	// Logger receives debug-level run diagnostics. Nil means no logging.
	Logger *slog.Logger
}

// Runner executes hash runs. A Runner is reusable; each Run builds fresh
// shared state.
type Runner struct {
	fingerprint FingerprintFunc
	workers     int
	logger      *slog.Logger
}

// New validates cfg and builds a Runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Fingerprint == nil {
		return nil, errors.New("runner: fingerprint function is required")
	}
	return &Runner{
		fingerprint: cfg.Fingerprint,
		workers:     EffectiveWorkers(cfg.Workers),
		logger:      logging.NewComponentLogger(cfg.Logger, "runner"),
	}, nil
}

// Run hashes every path on the worker pool and emits results to sink in input
// order. It returns once the final outcome is emitted and every worker has
// exited. Per-file failures are reported through their outcome, never as a
// run failure.
func (r *Runner) Run(paths []string, sink Sink) Summary {
	start := time.Now()
	summary := Summary{Files: len(paths), Workers: r.workers}
	if len(paths) == 0 {
		return summary
	}

	st := newState(paths)
	r.logger.Debug("run started",
		logging.Int("files", len(paths)),
		logging.Int("workers", r.workers))

	var wg sync.WaitGroup
	wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go func() {
			defer wg.Done()
			r.work(st)
		}()
	}

	// Emit from the caller's goroutine. The cursor blocks on each slot in
	// turn, so a slow file stalls later output but order never changes.
	for next := range paths {
		res := st.await(next)
		if res.OK {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		if sink != nil {
			sink.Emit(Outcome{Index: next, Path: paths[next], Result: res})
		}
	}

	st.shutdown()
	wg.Wait()

	summary.Elapsed = time.Since(start)
	return summary
}

func (r *Runner) work(st *state) {
	for {
		task, ok := st.dequeue()
		if !ok {
			return
		}

		digest, err := r.fingerprint(task.Path)
		res := Result{OK: err == nil, Digest: digest}
		if err != nil {
			res = Result{Err: err.Error()}
			r.logger.Debug("hash failed",
				logging.String(logging.FieldPath, task.Path),
				logging.Error(err))
		}

		st.store(task.Index, res)
	}
}

// state is the shared coordination structure for one run. One mutex guards
// everything; one condition variable serves both worker and emitter waits.
type state struct {
	mu    sync.Mutex
	ready *sync.Cond

	// tasks is fully populated before any worker starts and never grows.
	// head marks the next undequeued task.
	tasks []Task
	head  int

	// slots transition nil to non-nil at most once each, written only by the
	// worker that dequeued the matching task.
	slots []*Result

	// done is raised exactly once, after the final slot has been emitted.
	done bool
}

func newState(paths []string) *state {
	st := &state{
		tasks: make([]Task, len(paths)),
		slots: make([]*Result, len(paths)),
	}
	st.ready = sync.NewCond(&st.mu)
	for i, path := range paths {
		st.tasks[i] = Task{Index: i, Path: path}
	}
	return st
}

// dequeue blocks until a task is available or shutdown is signaled with the
// queue drained. The second return is false when the worker should exit.
func (st *state) dequeue() (Task, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for st.head == len(st.tasks) && !st.done {
		st.ready.Wait()
	}
	if st.head == len(st.tasks) {
		return Task{}, false
	}

	task := st.tasks[st.head]
	st.head++
	return task, true
}

// store fills a slot and wakes all waiters so the emitter (and any idle
// workers) recheck their predicates.
func (st *state) store(index int, res Result) {
	st.mu.Lock()
	st.slots[index] = &res
	st.mu.Unlock()
	st.ready.Broadcast()
}

// await blocks until slot index is filled and returns its result.
func (st *state) await(index int) Result {
	st.mu.Lock()
	defer st.mu.Unlock()

	for st.slots[index] == nil {
		st.ready.Wait()
	}
	return *st.slots[index]
}

// shutdown raises the done flag and wakes blocked workers so they can exit.
func (st *state) shutdown() {
	st.mu.Lock()
	st.done = true
	st.mu.Unlock()
	st.ready.Broadcast()
}
