package services

import (
	"fmt"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// PriorityRankAllocator computes sparse integer ranks for drag-and-drop
// reordering. Higher rank means earlier position.
type PriorityRankAllocator struct {
	config domain.RankConfig
}

// NewPriorityRankAllocator creates a new allocator.
func NewPriorityRankAllocator(config domain.RankConfig) *PriorityRankAllocator {
	return &PriorityRankAllocator{config: config}
}

// RankForDrop returns the rank for an item dropped at targetIndex of the
// descending priority list, which must not contain the moved item.
//
// When the neighbours are adjacent integers the result equals one of them;
// callers detect that with RebalanceEngine.NeedsRebalance.
func (a *PriorityRankAllocator) RankForDrop(priorities []int64, targetIndex int) (int64, error) {
	n := len(priorities)
	if targetIndex < 0 || targetIndex > n {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", domain.ErrPositionOutOfRange, targetIndex, n)
	}

	switch {
	case n == 0:
		return a.config.Default, nil
	case targetIndex == 0:
		return priorities[0] + a.config.Gap, nil
	case targetIndex == n:
		return priorities[n-1] - a.config.Gap, nil
	default:
		return floorMidpoint(priorities[targetIndex-1], priorities[targetIndex]), nil
	}
}

// RankForAppend returns the rank that places a new item last.
func (a *PriorityRankAllocator) RankForAppend(priorities []int64) int64 {
	rank, _ := a.RankForDrop(priorities, len(priorities))
	return rank
}

// floorMidpoint returns floor((hi+lo)/2).
func floorMidpoint(hi, lo int64) int64 {
	sum := hi + lo
	mid := sum / 2
	if sum%2 != 0 && sum < 0 {
		mid--
	}
	return mid
}

// Priorities returns the effective ranks of a group in its current order,
// unranked tasks counting as the default.
func (a *PriorityRankAllocator) Priorities(tasks []domain.Task) []int64 {
	ranks := make([]int64, len(tasks))
	for i, t := range tasks {
		ranks[i] = t.PriorityOr(a.config.Default)
	}
	return ranks
}
