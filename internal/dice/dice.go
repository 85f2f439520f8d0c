// Package dice implements the dice expression parser and roll engine for
// Cepheus Engine play: standard NdS+M rolls, advantage/disadvantage, and
// the composite D66 roll used for table lookups.
package dice

import (
	"fmt"
	"strings"
)

// RollKind classifies a parsed dice expression.
type RollKind string

const (
	// KindStandard is a plain NdS+M roll (2d6+3, 1d20, ...)
	KindStandard RollKind = "standard"

	// KindD66 composes two d6 results into a two-digit value
	KindD66 RollKind = "d66"

	// KindD66Unordered sorts the pair descending before composing
	KindD66Unordered RollKind = "d66u"
)

// AdvantageType selects advantage/disadvantage handling for a roll.
type AdvantageType string

const (
	AdvantageNone AdvantageType = "none"
	Advantage     AdvantageType = "advantage"
	Disadvantage  AdvantageType = "disadvantage"
)

// DieFace is the result of rolling one die. Immutable once produced.
type DieFace struct {
	Size   int `json:"size"`
	Result int `json:"result"`
}

// RollResult is the complete outcome of evaluating a dice expression.
type RollResult struct {
	// Expression is the original expression text as supplied by the caller
	Expression string `json:"expression"`

	// Kind is the resolved roll kind
	Kind RollKind `json:"kind"`

	// Rolls holds the dice used in the final total, in draw order
	Rolls []DieFace `json:"rolls"`

	// AllRolls holds originals then extras for advantage/disadvantage
	// rolls; for everything else it equals Rolls
	AllRolls []DieFace `json:"all_rolls"`

	Modifier  int           `json:"modifier"`
	Advantage AdvantageType `json:"advantage"`
	Total     int           `json:"total"`

	// Breakdown is the human-readable derivation of the total
	Breakdown string `json:"breakdown"`

	// D66Composed is the pre-modifier composed value, set only for D66
	// kinds (always in [11, 66] there, 0 otherwise)
	D66Composed int `json:"d66_composed,omitempty"`
}

// formatResults renders die results as "4, 5, 2".
func formatResults(faces []DieFace) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = fmt.Sprintf("%d", f.Result)
	}
	return strings.Join(parts, ", ")
}

// standardBreakdown renders the derivation of a standard roll total.
func standardBreakdown(selected, all []DieFace, advantage AdvantageType, modifier, total int) string {
	var b strings.Builder

	if advantage != AdvantageNone {
		advStr := "adv"
		if advantage == Disadvantage {
			advStr = "dis"
		}
		fmt.Fprintf(&b, "[%s] (%s: %s)", formatResults(all), advStr, formatResults(selected))
	} else {
		fmt.Fprintf(&b, "[%s]", formatResults(selected))
	}

	if modifier != 0 {
		fmt.Fprintf(&b, " %+d", modifier)
	}
	fmt.Fprintf(&b, " = %d", total)

	return b.String()
}

// d66Breakdown renders the derivation of a composite D66 total. first and
// second are the pair actually composed (post-sort when unordered).
func d66Breakdown(faces []DieFace, first, second int, unordered bool, composed, modifier, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "d66: %d,%d", faces[0].Result, faces[1].Result)
	if unordered {
		fmt.Fprintf(&b, " (sorted: %d,%d)", first, second)
	}
	fmt.Fprintf(&b, " → %d", composed)

	if modifier != 0 {
		fmt.Fprintf(&b, " %+d = %d", modifier, total)
	}

	return b.String()
}
