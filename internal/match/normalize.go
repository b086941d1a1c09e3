package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lowercases s and strips separators, package qualifiers and
// the nullable marker, so that "?Order_Status" and "records.OrderStatus" compare equal.
func NormalizeIdent(s string) string {
	s = strings.TrimPrefix(s, "?")
	if i := strings.LastIndexAny(s, `./\`); i >= 0 {
		s = s[i+1:]
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
