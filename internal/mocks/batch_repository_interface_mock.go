// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/domain/model"
	"github.com/guttosm/batch-service/internal/repository"
)

type MockBatchRepositoryInterface struct {
	mock.Mock
}

func (m *MockBatchRepositoryInterface) GetBatch(ctx context.Context, batchID int64) (*model.Batch, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Batch), args.Error(1)
}

func (m *MockBatchRepositoryInterface) UpdateStatus(ctx context.Context, batchID int64, status model.BatchStatus, userID int64) error {
	args := m.Called(ctx, batchID, status, userID)
	return args.Error(0)
}

func (m *MockBatchRepositoryInterface) ResetBatch(ctx context.Context, batchID, userID int64) error {
	args := m.Called(ctx, batchID, userID)
	return args.Error(0)
}

func (m *MockBatchRepositoryInterface) ApplyPackAssignment(ctx context.Context, a repository.PackAssignment) (model.BatchStatus, int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(model.BatchStatus), args.Get(1).(int64), args.Error(2)
}

func (m *MockBatchRepositoryInterface) GetBatchIDsBySystem(ctx context.Context, systemID int64) ([]int64, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockBatchRepositoryInterface) ActiveSystems(ctx context.Context, systemIDs []int64) ([]int64, error) {
	args := m.Called(ctx, systemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockBatchRepositoryInterface) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}
