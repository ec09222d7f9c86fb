// Package enumprefix strips fixed-width enumeration markers ("1. ", "12. ",
// "123. ") from lines of text.
//
// The rule is positional: it looks for '.' at character index 1 or 2 and
// otherwise assumes a three digit marker. Numbering above three digits or
// markers with a different separator width are not recognised. Lines of five
// characters or fewer (newline included) are blanked.
//
// Applying Transform to its own output generally truncates further, the
// operation is not idempotent.
package enumprefix

// Rule identifies which branch of the heuristic handled a line.
type Rule int

const (
	RuleBlank Rule = iota
	RuleOneDigit
	RuleTwoDigit
	RuleDefault
)

const (
	shortLineLen = 5
	blankLine    = "\n"
)

func (r Rule) String() string {
	switch r {
	case RuleBlank:
		return "blank"
	case RuleOneDigit:
		return "one_digit"
	case RuleTwoDigit:
		return "two_digit"
	case RuleDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Rules lists every rule in evaluation order.
func Rules() []Rule {
	return []Rule{RuleBlank, RuleOneDigit, RuleTwoDigit, RuleDefault}
}

// skip is the number of leading characters the rule drops.
func (r Rule) skip() int {
	switch r {
	case RuleOneDigit:
		return 3
	case RuleTwoDigit:
		return 4
	default:
		return 5
	}
}

func classifyRunes(rs []rune) Rule {
	// len > 5 below, so indexes 1 and 2 are always in range
	switch {
	case len(rs) <= shortLineLen:
		return RuleBlank
	case rs[1] == '.':
		return RuleOneDigit
	case rs[2] == '.':
		return RuleTwoDigit
	default:
		return RuleDefault
	}
}

// Classify reports the rule that applies to line. Length and indexes are
// counted in characters, the trailing newline included.
func Classify(line string) Rule {
	return classifyRunes([]rune(line))
}

// Strip returns line with its enumeration marker removed, or a single
// newline when line is too short to carry content.
func Strip(line string) string {
	s, _ := StripRule(line)

	return s
}

// StripRule is Strip that also reports the rule it applied.
func StripRule(line string) (string, Rule) {
	rs := []rune(line)

	rule := classifyRunes(rs)
	if rule == RuleBlank {
		return blankLine, rule
	}

	return string(rs[rule.skip():]), rule
}

// Transform applies Strip to every line. The result has the same length and
// order as lines.
func Transform(lines []string) []string {
	result := make([]string, len(lines))
	for i := range lines {
		result[i] = Strip(lines[i])
	}

	return result
}
