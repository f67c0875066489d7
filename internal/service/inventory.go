package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/batch-service/internal/logger"
	"github.com/guttosm/batch-service/internal/metrics"
)

// InventoryTask describes one drug-inventory reconciliation request raised
// after a batch assignment commits.
type InventoryTask struct {
	CompanyID int64
	TimeZone  string
	BatchID   int64
	SystemIDs []int64
}

// InventoryReconciler is the external collaborator that checks and updates
// drug requirements for the pending packs of a batch.
type InventoryReconciler interface {
	Reconcile(ctx context.Context, task InventoryTask) error
}

// InventoryDispatcher is the submission API for reconciliation work. Tasks
// are best-effort: a failed or dropped task is logged and never propagated to
// the caller, and never undoes the batch mutation that already committed.
type InventoryDispatcher interface {
	Dispatch(task InventoryTask) bool
}

// DispatcherConfig holds configuration for the inventory dispatcher.
type DispatcherConfig struct {
	// BufferSize is the size of the task channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines processing tasks.
	NumWorkers int
	// TaskTimeout bounds a single reconciliation call.
	TaskTimeout time.Duration
}

// DefaultDispatcherConfig returns sensible defaults for the dispatcher.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		BufferSize:  256,
		NumWorkers:  2,
		TaskTimeout: 30 * time.Second,
	}
}

// WorkerPoolDispatcher runs reconciliation tasks on a bounded worker pool.
// Using an explicit queue instead of a goroutine per call keeps load bounded
// and lets tests assert what was submitted without real side effects.
type WorkerPoolDispatcher struct {
	reconciler  InventoryReconciler
	taskCh      chan InventoryTask
	stopCh      chan struct{}
	wg          sync.WaitGroup
	taskTimeout time.Duration

	enqueued int64
	dropped  int64
	done     int64
	failed   int64
}

// NewWorkerPoolDispatcher creates and starts a dispatcher. Returns nil when
// no reconciler is configured, which callers treat as "dispatch disabled".
func NewWorkerPoolDispatcher(reconciler InventoryReconciler, cfg DispatcherConfig) *WorkerPoolDispatcher {
	if reconciler == nil {
		return nil
	}

	d := &WorkerPoolDispatcher{
		reconciler:  reconciler,
		taskCh:      make(chan InventoryTask, cfg.BufferSize),
		stopCh:      make(chan struct{}),
		taskTimeout: cfg.TaskTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// worker processes tasks from the channel until stopped, draining what is
// left in the buffer on shutdown.
func (d *WorkerPoolDispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case task, ok := <-d.taskCh:
			if !ok {
				return
			}
			d.run(task)
		case <-d.stopCh:
			for {
				select {
				case task := <-d.taskCh:
					d.run(task)
				default:
					return
				}
			}
		}
	}
}

// run executes a single reconciliation task. Failures are logged only.
func (d *WorkerPoolDispatcher) run(task InventoryTask) {
	ctx, cancel := context.WithTimeout(context.Background(), d.taskTimeout)
	defer cancel()

	if err := d.reconciler.Reconcile(ctx, task); err != nil {
		atomic.AddInt64(&d.failed, 1)
		metrics.RecordInventoryDispatch("failed")
		log := logger.Logger()
		log.Warn().
			Err(err).
			Int64("batch_id", task.BatchID).
			Int64("company_id", task.CompanyID).
			Msg("Inventory reconciliation failed")
		return
	}
	atomic.AddInt64(&d.done, 1)
	metrics.RecordInventoryDispatch("done")
}

// Dispatch enqueues a reconciliation task. Returns false when the buffer is
// full and the task was dropped.
func (d *WorkerPoolDispatcher) Dispatch(task InventoryTask) bool {
	select {
	case d.taskCh <- task:
		atomic.AddInt64(&d.enqueued, 1)
		metrics.RecordInventoryDispatch("enqueued")
		return true
	default:
		atomic.AddInt64(&d.dropped, 1)
		metrics.RecordInventoryDispatch("dropped")
		return false
	}
}

// Stop shuts the dispatcher down, waiting for buffered tasks to finish.
func (d *WorkerPoolDispatcher) Stop() {
	close(d.stopCh)
	d.wg.Wait()
	close(d.taskCh)
}

// Stats returns dispatcher counters: enqueued, dropped, done, failed.
func (d *WorkerPoolDispatcher) Stats() (enqueued, dropped, done, failed int64) {
	return atomic.LoadInt64(&d.enqueued),
		atomic.LoadInt64(&d.dropped),
		atomic.LoadInt64(&d.done),
		atomic.LoadInt64(&d.failed)
}
