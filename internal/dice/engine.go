package dice

import (
	"math/rand"
	"time"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// Engine executes roll requests against a single pseudo-random source.
//
// Two engines built with the same seed and driven with the same sequence
// of operations produce bit-identical die sequences. An engine is not safe
// for concurrent use; use one engine per goroutine or per call.
type Engine struct {
	rng *rand.Rand

	// d66Unordered is the composition policy applied when a D66
	// expression carries no explicit ordering marker
	d66Unordered bool
}

// EngineConfig holds configuration for an Engine.
type EngineConfig struct {
	// Seed makes the engine deterministic; nil uses a time-based source
	Seed *int64

	// D66Unordered composes D66 rolls high-die-first by default
	D66Unordered bool
}

// NewEngine creates a roll engine.
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Engine{
		rng:          rand.New(rand.NewSource(seed)),
		d66Unordered: cfg.D66Unordered,
	}
}

// RollDice draws count independent uniform results in [1, size]. Draw
// order is preserved: the first draw is index 0.
func (e *Engine) RollDice(count, size int) ([]DieFace, error) {
	if count < 1 {
		return nil, cerrors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	if size < 1 {
		return nil, cerrors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	if count > maxDiceCount {
		return nil, cerrors.InvalidExpressionf("dice count exceeds maximum of %d", maxDiceCount)
	}

	faces := make([]DieFace, count)
	for i := range faces {
		faces[i] = DieFace{Size: size, Result: e.rng.Intn(size) + 1}
	}
	return faces, nil
}

// applyAdvantage draws one extra die per original and keeps the better
// (advantage) or worse (disadvantage) result per index. Ties keep the
// original. The returned all slice is originals followed by extras.
func (e *Engine) applyAdvantage(rolls []DieFace, advantage AdvantageType) (selected, all []DieFace) {
	if advantage == AdvantageNone {
		return rolls, rolls
	}

	extras := make([]DieFace, len(rolls))
	for i, r := range rolls {
		extras[i] = DieFace{Size: r.Size, Result: e.rng.Intn(r.Size) + 1}
	}

	all = make([]DieFace, 0, 2*len(rolls))
	all = append(all, rolls...)
	all = append(all, extras...)

	selected = make([]DieFace, len(rolls))
	for i := range rolls {
		original, extra := rolls[i], extras[i]

		if advantage == Advantage {
			if extra.Result > original.Result {
				selected[i] = extra
			} else {
				selected[i] = original
			}
		} else {
			if extra.Result < original.Result {
				selected[i] = extra
			} else {
				selected[i] = original
			}
		}
	}

	return selected, all
}

// RollD66 draws two d6 and composes them into a two-digit value. When
// unordered, the pair is sorted descending before composition.
func (e *Engine) RollD66(unordered bool) (faces []DieFace, composed int, err error) {
	faces, err = e.RollDice(2, 6)
	if err != nil {
		return nil, 0, err
	}

	first, second := faces[0].Result, faces[1].Result
	if unordered && second > first {
		first, second = second, first
	}

	return faces, first*10 + second, nil
}

// Roll parses an expression and executes it against the engine's source.
// Advantage applies only to standard rolls; a D66 request records the
// mode but ignores it.
func (e *Engine) Roll(expression string, advantage AdvantageType) (*RollResult, error) {
	req, err := ParseExpression(expression)
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case KindStandard:
		return e.rollStandard(expression, req, advantage)
	default:
		return e.rollComposite(expression, req, advantage)
	}
}

func (e *Engine) rollStandard(expression string, req *RollRequest, advantage AdvantageType) (*RollResult, error) {
	initial, err := e.RollDice(req.Count, req.Size)
	if err != nil {
		return nil, err
	}

	selected, all := e.applyAdvantage(initial, advantage)

	total := req.Modifier
	for _, f := range selected {
		total += f.Result
	}

	return &RollResult{
		Expression: expression,
		Kind:       req.Kind,
		Rolls:      selected,
		AllRolls:   all,
		Modifier:   req.Modifier,
		Advantage:  advantage,
		Total:      total,
		Breakdown:  standardBreakdown(selected, all, advantage, req.Modifier, total),
	}, nil
}

func (e *Engine) rollComposite(expression string, req *RollRequest, advantage AdvantageType) (*RollResult, error) {
	// An explicit "u" marker always forces unordered composition; the
	// engine's policy only decides when the expression is silent.
	unordered := req.Kind == KindD66Unordered || e.d66Unordered

	faces, composed, err := e.RollD66(unordered)
	if err != nil {
		return nil, err
	}

	total := composed + req.Modifier
	first, second := composed/10, composed%10

	return &RollResult{
		Expression:  expression,
		Kind:        req.Kind,
		Rolls:       faces,
		AllRolls:    faces,
		Modifier:    req.Modifier,
		Advantage:   advantage,
		Total:       total,
		Breakdown:   d66Breakdown(faces, first, second, unordered, composed, req.Modifier, total),
		D66Composed: composed,
	}, nil
}
