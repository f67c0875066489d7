// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/domain/dto"
	"github.com/guttosm/batch-service/internal/domain/model"
)

type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*dto.BatchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchResult), args.Error(1)
}

func (m *MockBatchService) CreateMultiBatch(ctx context.Context, req *dto.CreateMultiBatchRequest) (*dto.BatchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BatchResult), args.Error(1)
}

func (m *MockBatchService) CreateBatchesForSystems(ctx context.Context, reqs []dto.CreateMultiBatchRequest) ([]dto.BatchResult, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BatchResult), args.Error(1)
}

func (m *MockBatchService) GetPacksByBatchIDs(ctx context.Context, systemID int64) (map[int64]*model.BatchPackGroup, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*model.BatchPackGroup), args.Error(1)
}

func (m *MockBatchService) GetSystemStatus(ctx context.Context, systemIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, systemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}
