package formvalidation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownRule is returned when a rule file names a rule that is not registered.
	ErrUnknownRule = errors.New("formvalidation: unknown rule")

	// ErrInvalidRuleSpec is returned when a rule file entry has missing or malformed parameters.
	ErrInvalidRuleSpec = errors.New("formvalidation: invalid rule spec")

	// ErrDuplicateRule is returned when registering a rule name twice.
	ErrDuplicateRule = errors.New("formvalidation: rule already registered")
)

// FieldError is one failed rule of one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the error-interface view of a form's failing fields.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages for field in rule order.
func (e Errors) Get(field string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, fe := range e {
		if !seen[fe.Field] {
			fields = append(fields, fe.Field)
			seen[fe.Field] = true
		}
	}
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// ExtractErrors returns the Errors wrapped in err, or nil.
func ExtractErrors(err error) Errors {
	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
