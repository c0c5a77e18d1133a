package services

import (
	"github.com/google/uuid"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// RebalanceEngine restores strictly decreasing ranks in a group.
type RebalanceEngine struct {
	config domain.RankConfig
}

// NewRebalanceEngine creates a new rebalance engine.
func NewRebalanceEngine(config domain.RankConfig) *RebalanceEngine {
	return &RebalanceEngine{config: config}
}

// NeedsRebalance reports whether a group listed in display order has a
// rank collision, i.e. any entry not strictly below its predecessor.
func (e *RebalanceEngine) NeedsRebalance(priorities []int64) bool {
	for i := 1; i < len(priorities); i++ {
		if priorities[i] >= priorities[i-1] {
			return true
		}
	}
	return false
}

// Rebalance returns count strictly decreasing ranks spaced by exactly one
// gap, with index count/2 on the default rank.
func (e *RebalanceEngine) Rebalance(count int) []int64 {
	if count <= 0 {
		return []int64{}
	}

	mid := count / 2
	ranks := make([]int64, count)
	for i := range ranks {
		ranks[i] = e.config.Default + int64(mid-i)*e.config.Gap
	}
	return ranks
}

// Plan pairs an ordered group with fresh ranks. Every member is included;
// callers must persist the whole batch.
func (e *RebalanceEngine) Plan(ordered []uuid.UUID) []domain.PriorityUpdate {
	ranks := e.Rebalance(len(ordered))
	updates := make([]domain.PriorityUpdate, len(ordered))
	for i, id := range ordered {
		updates[i] = domain.PriorityUpdate{TaskID: id, NewPriority: ranks[i]}
	}
	return updates
}
