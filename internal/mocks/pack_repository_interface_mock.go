// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/domain/model"
)

type MockPackRepositoryInterface struct {
	mock.Mock
}

func (m *MockPackRepositoryInterface) VerifyPackListByCompany(ctx context.Context, companyID int64, packList []int64) (bool, error) {
	args := m.Called(ctx, companyID, packList)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackRepositoryInterface) MaxOrderNo(ctx context.Context, systemID int64) (int, error) {
	args := m.Called(ctx, systemID)
	return args.Int(0), args.Error(1)
}

func (m *MockPackRepositoryInterface) GetOrderedPackList(ctx context.Context, packList []int64) ([]int64, error) {
	args := m.Called(ctx, packList)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPackRepositoryInterface) CountAssigned(ctx context.Context, packList []int64) (int64, error) {
	args := m.Called(ctx, packList)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackRepositoryInterface) GetPacksByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]model.PackSummary, error) {
	args := m.Called(ctx, batchIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]model.PackSummary), args.Error(1)
}
