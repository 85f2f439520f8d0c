package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

import (
	cerrors "github.com/lgw4/cetools/internal/errors"
)

// Roller is the primitive dice interface consumed by the generators.
// Engine implements it; tests inject predetermined results instead.
type Roller interface {
	// RollDice draws count uniform results in [1, size], in order
	RollDice(count, size int) ([]DieFace, error)
}

// RollOptions configures a convenience roll.
type RollOptions struct {
	// Seed makes the roll reproducible; nil rolls non-deterministically
	Seed *int64

	// Advantage and Disadvantage are mutually exclusive
	Advantage    bool
	Disadvantage bool

	// D66Unordered is the composition policy for D66 expressions that
	// carry no explicit ordering marker (normally the value of the
	// dice.d66_unordered configuration key)
	D66Unordered bool
}

// Roll evaluates a dice expression with a fresh engine. Each call owns its
// own random source, so seeded reproducibility holds per call, not per
// process.
func Roll(expression string, opts *RollOptions) (*RollResult, error) {
	if opts == nil {
		opts = &RollOptions{}
	}

	if opts.Advantage && opts.Disadvantage {
		return nil, cerrors.InvalidArgument("cannot roll with both advantage and disadvantage")
	}

	advantage := AdvantageNone
	switch {
	case opts.Advantage:
		advantage = Advantage
	case opts.Disadvantage:
		advantage = Disadvantage
	}

	engine := NewEngine(&EngineConfig{
		Seed:         opts.Seed,
		D66Unordered: opts.D66Unordered,
	})

	return engine.Roll(expression, advantage)
}
