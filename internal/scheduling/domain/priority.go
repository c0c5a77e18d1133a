package domain

import (
	"errors"

	"github.com/google/uuid"
)

const (
	// DefaultPriority is the rank given to unranked tasks and the centre
	// around which a rebalanced group is laid out.
	DefaultPriority int64 = 1_000_000_000
	// DefaultPriorityGap is the nominal distance between neighbouring ranks.
	DefaultPriorityGap int64 = 1_000
)

var (
	ErrPositionOutOfRange  = errors.New("target position out of range")
	ErrInvalidRankGap      = errors.New("priority gap must be positive")
	ErrRebalanceIncomplete = errors.New("rebalance was only partially persisted")
)

// RankConfig parameterises the priority allocator and rebalancer.
type RankConfig struct {
	Default int64
	Gap     int64
}

// DefaultRankConfig returns the conventional rank constants.
func DefaultRankConfig() RankConfig {
	return RankConfig{
		Default: DefaultPriority,
		Gap:     DefaultPriorityGap,
	}
}

// Validate checks the rank configuration.
func (c RankConfig) Validate() error {
	if c.Gap <= 0 {
		return ErrInvalidRankGap
	}
	return nil
}

// PriorityUpdate is a single rank change to persist.
type PriorityUpdate struct {
	TaskID      uuid.UUID
	NewPriority int64
}
