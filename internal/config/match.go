package config

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// MatchConfig holds settings that change how a match resolves moves.
type MatchConfig struct {
	// DefaultPromotion is the code ("B", "N", "R" or "Q") a pawn reaching
	// the far rank becomes before the player chooses.
	DefaultPromotion string
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		DefaultPromotion: "Q",
	}
}

// Validate checks that the match configuration is valid.
func (m *MatchConfig) Validate() error {
	switch m.DefaultPromotion {
	case "B", "N", "R", "Q":
		return nil
	}
	return fmt.Errorf("default promotion %q is not one of B, N, R, Q: %w",
		m.DefaultPromotion, errors.ErrInvalidConfig)
}
