package merge

import (
	"fmt"
	"strings"

	"github.com/modsmith/modmerge/pkg/errors"
)

// Strategy is a named preset of merge options.
type Strategy string

// String returns the string representation of a strategy.
func (s Strategy) String() string {
	return string(s)
}

const (
	// StrategyPreferIncoming takes the incoming side for every field.
	// This is the default.
	StrategyPreferIncoming Strategy = "prefer-incoming"

	// StrategyPreferExisting takes the existing side for every field and
	// keeps the existing list's order.
	StrategyPreferExisting Strategy = "prefer-existing"

	// StrategyIncomingOnly follows the incoming list exactly: incoming
	// wins every field and entries with no incoming counterpart are
	// dropped.
	StrategyIncomingOnly Strategy = "incoming-only"
)

// AllStrategies returns every recognized strategy.
func AllStrategies() []Strategy {
	return []Strategy{StrategyPreferIncoming, StrategyPreferExisting, StrategyIncomingOnly}
}

// IsValid reports whether the strategy is recognized.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyPreferIncoming, StrategyPreferExisting, StrategyIncomingOnly:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the strategy.
func (s Strategy) Description() string {
	switch s {
	case StrategyPreferIncoming:
		return "Incoming values win every field; incoming order"
	case StrategyPreferExisting:
		return "Existing values win every field; existing order"
	case StrategyIncomingOnly:
		return "Incoming values win fields; entries absent from incoming are dropped"
	default:
		return "Unknown strategy"
	}
}

// OptionsForStrategy translates a strategy selector into merge options.
// Unrecognized selectors fail immediately with ErrUnknownStrategy.
func OptionsForStrategy(s Strategy) (*Options, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s.String()))) {
	case StrategyPreferIncoming:
		return DefaultOptions(), nil
	case StrategyPreferExisting:
		opts := DefaultOptions()
		opts.UseExistingOrder = true
		opts.PreferExisting = FieldPreferences{
			Name:               true,
			Author:             true,
			Description:        true,
			Directions:         true,
			Tier:               true,
			InstallationMethod: true,
			Category:           true,
			Links:              true,
			Instructions:       true,
			Options:            true,
		}
		return opts, nil
	case StrategyIncomingOnly:
		opts := DefaultOptions()
		opts.ExcludeExistingOnly = true
		return opts, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStrategy, s)
	}
}
