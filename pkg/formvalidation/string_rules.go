package formvalidation

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Required fails for nil values, blank strings and empty slices or maps.
func Required() Rule {
	return func(value any) string {
		if isEmpty(value) {
			return "field is required"
		}
		return ""
	}
}

// MinLength requires at least min characters. Empty values pass; combine with
// Required for mandatory fields.
func MinLength(min int) Rule {
	return lengthRule(func(n int) bool { return n >= min },
		fmt.Sprintf("must be at least %d characters long", min))
}

// MaxLength allows at most max characters.
func MaxLength(max int) Rule {
	return lengthRule(func(n int) bool { return n <= max },
		fmt.Sprintf("must be at most %d characters long", max))
}

// Length requires exactly n characters.
func Length(n int) Rule {
	return lengthRule(func(l int) bool { return l == n },
		fmt.Sprintf("must be exactly %d characters long", n))
}

// lengthRule counts characters as runes after NFC normalisation, so a
// precomposed "é" and "e" + combining accent have the same length.
func lengthRule(ok func(int) bool, message string) Rule {
	return func(value any) string {
		if isEmpty(value) {
			return ""
		}
		s, isText := asString(value)
		if !isText {
			return msgInvalidType
		}
		if !ok(utf8.RuneCountInString(norm.NFC.String(s))) {
			return message
		}
		return ""
	}
}
