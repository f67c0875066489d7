// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/domain/model"
)

type MockSystemSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSystemSettingsRepositoryInterface) ThroughputConfig(ctx context.Context, systemID int64) (*model.ThroughputConfig, error) {
	args := m.Called(ctx, systemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ThroughputConfig), args.Error(1)
}
