package dice

import (
	"strconv"
	"strings"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// maxDiceCount bounds the number of dice a single expression may request,
// keeping pathological inputs like "999999d6" from allocating at will.
const maxDiceCount = 1000

// RollRequest is a parsed, validated dice expression. Kind tags the
// variant: standard rolls carry Count and Size, D66 kinds only Modifier.
type RollRequest struct {
	Kind     RollKind
	Count    int
	Size     int
	Modifier int
}

// ParseExpression classifies a dice expression into a RollRequest.
//
// The grammar is case-insensitive and ignores surrounding whitespace:
//
//	d66[u][+N|-N]          composite D66, optional unordered marker
//	[count]d<size>[+N|-N]  standard roll, count defaults to 1
//
// The D66 form is tried first so resolution stays deterministic. Anything
// that matches neither form, or that requests a non-positive count or
// size, fails with an invalid-expression error naming the input.
func ParseExpression(expression string) (*RollRequest, error) {
	trimmed := strings.TrimSpace(expression)

	if req, ok := parseD66(trimmed); ok {
		return req, nil
	}

	return parseStandard(trimmed, expression)
}

// parseD66 attempts the D66 grammar. It reports false unless the whole
// input matches, so inputs like "d665" fall through to the standard form.
func parseD66(s string) (*RollRequest, bool) {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "d66") {
		return nil, false
	}

	rest := lower[3:]
	kind := KindD66
	if strings.HasPrefix(rest, "u") {
		kind = KindD66Unordered
		rest = rest[1:]
	}

	modifier, ok := parseModifier(rest)
	if !ok {
		return nil, false
	}

	return &RollRequest{Kind: kind, Modifier: modifier}, true
}

// parseStandard tokenizes the [count]d<size>[+N|-N] form. original is the
// untrimmed caller input, used verbatim in error messages.
func parseStandard(s, original string) (*RollRequest, error) {
	i := 0

	countStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	countDigits := s[countStart:i]

	if i >= len(s) || (s[i] != 'd' && s[i] != 'D') {
		return nil, cerrors.InvalidExpressionf("invalid dice expression: %s", original)
	}
	i++

	sizeStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	sizeDigits := s[sizeStart:i]
	if sizeDigits == "" {
		return nil, cerrors.InvalidExpressionf("invalid dice expression: %s", original)
	}

	modifier, ok := parseModifier(s[i:])
	if !ok {
		return nil, cerrors.InvalidExpressionf("invalid dice expression: %s", original)
	}

	count := 1
	if countDigits != "" {
		n, err := strconv.Atoi(countDigits)
		if err != nil {
			return nil, cerrors.InvalidExpressionf("invalid dice expression: %s", original)
		}
		count = n
	}

	size, err := strconv.Atoi(sizeDigits)
	if err != nil {
		return nil, cerrors.InvalidExpressionf("invalid dice expression: %s", original)
	}

	if count <= 0 || size <= 0 {
		return nil, cerrors.InvalidExpressionf("dice count and size must be positive: %s", original)
	}
	if count > maxDiceCount {
		return nil, cerrors.InvalidExpressionf("dice count exceeds maximum of %d: %s", maxDiceCount, original)
	}

	return &RollRequest{Kind: KindStandard, Count: count, Size: size, Modifier: modifier}, nil
}

// parseModifier parses an optional signed integer suffix. An empty string
// is a zero modifier; anything else must be a full "+N" or "-N" token.
func parseModifier(s string) (int, bool) {
	if s == "" {
		return 0, true
	}

	if s[0] != '+' && s[0] != '-' {
		return 0, false
	}
	if len(s) == 1 {
		return 0, false
	}
	for j := 1; j < len(s); j++ {
		if !isDigit(s[j]) {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
