package recipe

import (
	"regexp"
	"strings"
	"unicode"
)

var parenthetical = regexp.MustCompile(`\(.*?\)`)

// Normalize reduces a raw ingredient line to lowercase letters and spaces so that
// "Tomatoes (2 lbs)!!" and "tomatoes" compare equal. It never fails; input with no
// letters normalizes to the empty string.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = parenthetical.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(s)
}
