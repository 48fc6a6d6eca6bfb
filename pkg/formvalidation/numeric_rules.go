package formvalidation

import (
	"fmt"
	"slices"
)

const msgNotNumber = "must be a number"

// Min requires a number (or numeric string) greater than or equal to min.
func Min(min float64) Rule {
	return numberRule(func(f float64) bool { return f >= min }, fmt.Sprintf("must be at least %v", min))
}

// Max requires a number (or numeric string) less than or equal to max.
func Max(max float64) Rule {
	return numberRule(func(f float64) bool { return f <= max }, fmt.Sprintf("must be at most %v", max))
}

func numberRule(ok func(float64) bool, message string) Rule {
	return func(value any) string {
		if isEmpty(value) {
			return ""
		}
		f, isNumber := asFloat(value)
		if !isNumber {
			return msgNotNumber
		}
		if !ok(f) {
			return message
		}
		return ""
	}
}

// OneOf requires the value to equal one of allowed. Non-string values are
// compared by their fmt representation.
func OneOf(allowed ...string) Rule {
	allowed = slices.Clone(allowed)
	message := fmt.Sprintf("must be one of: %v", allowed)
	return func(value any) string {
		if isEmpty(value) {
			return ""
		}
		s, isText := asString(value)
		if !isText {
			s = fmt.Sprint(indirect(value))
		}
		if !slices.Contains(allowed, s) {
			return message
		}
		return ""
	}
}
