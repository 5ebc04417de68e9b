package ahbexpression

import (
	"regexp"
	"strings"

	"github.com/hochfrequenz/go-ahbicht/condition"
	"github.com/hochfrequenz/go-ahbicht/internal/ahberrors"
)

// Pair is one (requirement indicator, condition-tree) entry of a parsed AHB
// expression. Tree is nil for a bare indicator with no condition expression
// (e.g. a standalone "Kann"), which evaluates to TRUE.
type Pair struct {
	Indicator Indicator
	Tree      condition.Node
}

// modalMarkPattern finds the next modal-mark keyword occurring as a
// standalone word. Muss/Soll/Kann never legally appear inside a
// condition-expression substring (whose vocabulary is digits, brackets,
// parentheses, whitespace and the single letters U/O/X), so a literal,
// word-bounded match is an unambiguous pair boundary regardless of
// bracket/paren nesting in the text before it.
var modalMarkPattern = regexp.MustCompile(`(^|\s)(Muss|Soll|Kann)(\s|$)`)

// Parse splits raw into a sequence of (indicator, condition-tree) pairs,
// delegating each condition-expression substring to condition.Parse. raw is
// sanitized internally.
func Parse(raw string) ([]Pair, error) {
	s := condition.Sanitize(raw)
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, &ahberrors.SyntaxError{Offset: 0, Expected: []string{"Muss", "Soll", "Kann", "X", "O", "U"}, Input: s}
	}

	var pairs []Pair
	rest := trimmed
	first := true

	for {
		ind, afterIndicator, err := readIndicator(rest, first)
		if err != nil {
			return nil, err
		}
		first = false

		exprText, remainder := splitAtNextModalMark(afterIndicator)

		var tree condition.Node
		exprText = strings.TrimSpace(exprText)
		if exprText != "" {
			tree, err = condition.Parse(exprText)
			if err != nil {
				return nil, err
			}
		}

		pairs = append(pairs, Pair{Indicator: Indicator{Kind: ind}, Tree: tree})

		remainder = strings.TrimSpace(remainder)
		if remainder == "" {
			return pairs, nil
		}
		rest = remainder
	}
}

// readIndicator consumes the leading indicator token from s. Prefix
// operators (X/O/U) are recognized as indicators only in the "first"
// position — the start of the whole AHB string — since that is the only
// position unambiguous without parser lookahead; every subsequent pair
// boundary is found via a modal-mark keyword (see modalMarkPattern).
func readIndicator(s string, first bool) (IndicatorKind, string, error) {
	for _, kw := range []struct {
		word string
		kind IndicatorKind
	}{
		{"Muss", Muss},
		{"Soll", Soll},
		{"Kann", Kann},
	} {
		if rest, ok := consumeWord(s, kw.word); ok {
			return kw.kind, rest, nil
		}
	}

	if first {
		for _, kw := range []struct {
			word string
			kind IndicatorKind
		}{
			{"X", PrefixX},
			{"O", PrefixO},
			{"U", PrefixU},
		} {
			if rest, ok := consumeWord(s, kw.word); ok {
				return kw.kind, rest, nil
			}
		}
	}

	expected := []string{"Muss", "Soll", "Kann"}
	if first {
		expected = append(expected, "X", "O", "U")
	}
	return 0, "", &ahberrors.SyntaxError{Offset: 0, Expected: expected, Input: s}
}

// consumeWord reports whether s begins with word as a standalone token
// (followed by whitespace or end of string), returning the remainder.
func consumeWord(s, word string) (string, bool) {
	if !strings.HasPrefix(s, word) {
		return "", false
	}
	rest := s[len(word):]
	if rest == "" {
		return "", true
	}
	if rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r' {
		return rest, true
	}
	return "", false
}

// splitAtNextModalMark splits s at the next top-level modal-mark keyword,
// returning the text before it (this pair's condition expression) and the
// keyword-onward remainder (the next pair, if any).
func splitAtNextModalMark(s string) (exprText, remainder string) {
	loc := modalMarkPattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, ""
	}
	// loc[4],loc[5] bound the keyword itself (group 2); the expression text
	// ends where the keyword begins, so the keyword's leading whitespace
	// stays on the expression text (the caller trims it).
	return s[:loc[4]], s[loc[4]:]
}
