package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/mocks"
	"github.com/guttosm/batch-service/internal/service"
)

func TestNewWorkerPoolDispatcher_NilReconciler(t *testing.T) {
	dispatcher := service.NewWorkerPoolDispatcher(nil, service.DefaultDispatcherConfig())
	assert.Nil(t, dispatcher)
}

func TestWorkerPoolDispatcher_RunsTasks(t *testing.T) {
	reconciler := new(mocks.MockInventoryReconciler)
	var mu sync.Mutex
	var received []service.InventoryTask
	reconciler.On("Reconcile", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		received = append(received, args.Get(1).(service.InventoryTask))
		mu.Unlock()
	}).Return(nil)

	dispatcher := service.NewWorkerPoolDispatcher(reconciler, service.DispatcherConfig{
		BufferSize:  8,
		NumWorkers:  2,
		TaskTimeout: time.Second,
	})

	task := service.InventoryTask{CompanyID: 7, TimeZone: "UTC", BatchID: 42, SystemIDs: []int64{3}}
	assert.True(t, dispatcher.Dispatch(task))

	dispatcher.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, received, 1)
	assert.Equal(t, task, received[0])

	enqueued, dropped, done, failed := dispatcher.Stats()
	assert.Equal(t, int64(1), enqueued)
	assert.Equal(t, int64(0), dropped)
	assert.Equal(t, int64(1), done)
	assert.Equal(t, int64(0), failed)
}

func TestWorkerPoolDispatcher_CountsFailures(t *testing.T) {
	reconciler := new(mocks.MockInventoryReconciler)
	reconciler.On("Reconcile", mock.Anything, mock.Anything).Return(errors.New("inventory API down"))

	dispatcher := service.NewWorkerPoolDispatcher(reconciler, service.DispatcherConfig{
		BufferSize:  8,
		NumWorkers:  1,
		TaskTimeout: time.Second,
	})

	assert.True(t, dispatcher.Dispatch(service.InventoryTask{BatchID: 1}))
	dispatcher.Stop()

	_, _, done, failed := dispatcher.Stats()
	assert.Equal(t, int64(0), done)
	assert.Equal(t, int64(1), failed)
}

func TestWorkerPoolDispatcher_DropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	reconciler := new(mocks.MockInventoryReconciler)
	reconciler.On("Reconcile", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		<-block
	}).Return(nil)

	dispatcher := service.NewWorkerPoolDispatcher(reconciler, service.DispatcherConfig{
		BufferSize:  1,
		NumWorkers:  1,
		TaskTimeout: time.Second,
	})

	// First task occupies the worker, second fills the buffer. Give the
	// worker a moment to pick the first one up so the buffer state is
	// deterministic.
	assert.True(t, dispatcher.Dispatch(service.InventoryTask{BatchID: 1}))
	time.Sleep(50 * time.Millisecond)
	assert.True(t, dispatcher.Dispatch(service.InventoryTask{BatchID: 2}))
	assert.False(t, dispatcher.Dispatch(service.InventoryTask{BatchID: 3}))

	close(block)
	dispatcher.Stop()

	enqueued, dropped, _, _ := dispatcher.Stats()
	assert.Equal(t, int64(2), enqueued)
	assert.Equal(t, int64(1), dropped)
}

func TestHTTPReconciler_ContextCancellation(t *testing.T) {
	reconciler := service.NewHTTPReconciler("http://127.0.0.1:1", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := reconciler.Reconcile(ctx, service.InventoryTask{BatchID: 1})
	assert.Error(t, err)
}
