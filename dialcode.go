package clipdata

import "strings"

// RegionalIndicatorOffset maps an uppercase ASCII letter to its Unicode regional indicator symbol.
const RegionalIndicatorOffset = 127397

// DialPlan holds the dialing roots whose listed countries use the bare root as their dial code.
// Any other country under such a root (e.g. +1 242 for the Bahamas) still appends its first suffix.
type DialPlan struct {
	Exceptions map[string][]string
}

// DefaultDialPlan covers the North American (+1 US/CA) and +7 (RU/KZ) shared-root plans.
func DefaultDialPlan() DialPlan {
	return DialPlan{Exceptions: map[string][]string{
		"+1": {"US", "CA"},
		"+7": {"RU", "KZ"},
	}}
}

// Format composes the dial code for one country. ok is false when root is empty, in which
// case the record must be dropped.
func (p DialPlan) Format(root string, suffixes []string, code string) (dialCode string, ok bool) {
	if root == "" {
		return "", false
	}
	for _, c := range p.Exceptions[root] {
		if c == code {
			return root, true
		}
	}
	if len(suffixes) > 0 {
		return root + suffixes[0], true
	}
	return root, true
}

// FlagEmoji returns the flag glyph for a two-letter ASCII country code, or "" for anything else.
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	upper := strings.ToUpper(code)
	var b strings.Builder
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(rune(c) + RegionalIndicatorOffset)
	}
	return b.String()
}
