// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/service"
)

type MockInventoryReconciler struct {
	mock.Mock
}

func (m *MockInventoryReconciler) Reconcile(ctx context.Context, task service.InventoryTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}
