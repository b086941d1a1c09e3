package typedecl

import (
	"strings"

	"csv-serializer/internal/common"
)

// Parse builds a Declaration from its textual form:
//   - "int"          -> Single{int}
//   - "?int"         -> Single{int} (nullable shorthand keeps the inner named type)
//   - "int|null"     -> Union{int, null}
//   - "A&B"          -> Intersection{A, B}
//   - "(A&B)|null"   -> Union{(A&B), null}, the group is kept as an opaque member
//
// Blank text yields nil: the member is untyped. Malformed text such as "?" or "()"
// is kept verbatim as a Single, which no classification recognizes.
func Parse(text string) Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	switch members := splitTopLevel(text, '|'); {
	case common.IsMultiple(members):
		return Union{Names: members}
	case common.IsSingle(members):
		text = members[0]
	}

	if enclosed(text) {
		if inner := Parse(text[1 : len(text)-1]); inner != nil {
			return inner
		}

		return Single{Name: text}
	}

	if parts := splitTopLevel(text, '&'); common.IsMultiple(parts) {
		for i, part := range parts {
			for enclosed(part) {
				part = strings.TrimSpace(part[1 : len(part)-1])
			}
			parts[i] = part
		}

		return Intersection{Names: parts}
	}

	if name, ok := strings.CutPrefix(text, "?"); ok {
		if name = strings.TrimSpace(name); name != "" {
			return Single{Name: name}
		}
	}

	return Single{Name: text}
}

// enclosed reports whether s is wrapped in one matching pair of parentheses.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}

	depth := 0
	for i := range len(s) {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i < len(s)-1 {
				return false
			}
		}
	}

	return depth == 0
}

// splitTopLevel splits s on sep outside of parentheses, trimming members and dropping empty ones.
func splitTopLevel(s string, sep byte) []string {
	var (
		res   []string
		depth int
		start int
	)

	push := func(part string) {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	for i := range len(s) {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				push(s[start:i])
				start = i + 1
			}
		}
	}
	push(s[start:])

	return res
}
