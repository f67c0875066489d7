package service

import (
	"context"

	"github.com/guttosm/batch-service/internal/repository"
)

// OrderAllocator computes queue positions for packs joining a system's
// processing queue.
type OrderAllocator interface {
	NextOrderNumbers(ctx context.Context, systemID int64, packList []int64) ([]int, error)
}

// OrderAllocatorService implements OrderAllocator against the pack repository.
type OrderAllocatorService struct {
	packs repository.PackRepositoryInterface
}

// NewOrderAllocatorService creates a new order allocator.
func NewOrderAllocatorService(packs repository.PackRepositoryInterface) *OrderAllocatorService {
	return &OrderAllocatorService{packs: packs}
}

// NextOrderNumbers returns a contiguous block of order numbers, one per pack
// in input order, continuing from the system's current maximum. An empty pack
// list yields an empty block; the max read still happens so callers reusing
// the allocator in a loop never act on a stale maximum.
//
// Callers that need the returned block to stay collision-free under
// concurrent assignment must invoke this inside the same transaction that
// writes the numbers back.
func (s *OrderAllocatorService) NextOrderNumbers(ctx context.Context, systemID int64, packList []int64) ([]int, error) {
	maxNo, err := s.packs.MaxOrderNo(ctx, systemID)
	if err != nil {
		return nil, err
	}

	orders := make([]int, len(packList))
	for i := range packList {
		orders[i] = maxNo + i + 1
	}
	return orders, nil
}
