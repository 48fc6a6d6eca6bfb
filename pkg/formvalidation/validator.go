package formvalidation

import (
	"maps"
	"slices"
	"sync"
)

// FieldState is the result of the last validation of one field.
type FieldState struct {
	IsValid bool
	// Errors holds one message per failing rule, in rule order.
	Errors []string
}

// FormState is a snapshot of every tracked field plus the aggregate validity.
type FormState struct {
	Fields  map[string]FieldState
	IsValid bool
}

// Validator tracks per-field validity for a form.
// Zero value is not usable; use New to create instances.
type Validator struct {
	data   Data
	rules  Rules
	fields []string

	mu    sync.RWMutex
	state map[string]FieldState
}

// New creates a validator for data with the given rules. Every field named in
// rules is tracked and starts out valid with no errors; other fields are
// ignored. data may be nil, in which case ValidateForm sees every value as nil.
func New(data Data, rules Rules) *Validator {
	v := &Validator{
		data:  data,
		rules: make(Rules, len(rules)),
		state: make(map[string]FieldState, len(rules)),
	}
	for field, fieldRules := range rules {
		v.rules[field] = slices.Clone(fieldRules)
		v.state[field] = validState()
		v.fields = append(v.fields, field)
	}
	slices.Sort(v.fields)
	return v
}

// ValidateField runs every rule of field against value, in order, collecting
// all messages, and replaces the field's state with the result. A field with
// no configured rules is not tracked: the call reports it valid and changes
// nothing.
func (v *Validator) ValidateField(field string, value any) FieldState {
	rules, ok := v.rules[field]
	if !ok {
		return validState()
	}

	errs := []string{}
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if msg := rule(value); msg != "" {
			errs = append(errs, msg)
		}
	}

	fs := FieldState{IsValid: len(errs) == 0, Errors: errs}

	v.mu.Lock()
	v.state[field] = fs
	v.mu.Unlock()

	return cloneFieldState(fs)
}

// ValidateForm re-reads the current values from the form data and validates
// the given fields, or every tracked field when none are given. Unknown
// fields are skipped. It returns the aggregate validity afterwards.
func (v *Validator) ValidateForm(fields ...string) bool {
	if len(fields) == 0 {
		fields = v.fields
	}
	for _, field := range fields {
		v.ValidateField(field, v.value(field))
	}
	return v.IsValid()
}

// IsValid reports whether every tracked field is currently valid.
// It is computed from the field states on every call.
func (v *Validator) IsValid() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, fs := range v.state {
		if !fs.IsValid {
			return false
		}
	}
	return true
}

// Field returns the state of one tracked field.
func (v *Validator) Field(field string) (FieldState, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	fs, ok := v.state[field]
	if !ok {
		return FieldState{}, false
	}
	return cloneFieldState(fs), true
}

// Fields returns the tracked field names, sorted.
func (v *Validator) Fields() []string {
	return slices.Clone(v.fields)
}

// State returns a snapshot of all field states and the aggregate validity.
func (v *Validator) State() FormState {
	v.mu.RLock()
	defer v.mu.RUnlock()

	fields := make(map[string]FieldState, len(v.state))
	valid := true
	for name, fs := range v.state {
		fields[name] = cloneFieldState(fs)
		valid = valid && fs.IsValid
	}
	return FormState{Fields: fields, IsValid: valid}
}

// Err returns nil when the form is valid, otherwise Errors listing every
// failing message, grouped by field in sorted field order.
func (v *Validator) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var errs Errors
	for _, field := range v.fields {
		for _, msg := range v.state[field].Errors {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Reset marks the given fields, or all tracked fields, valid with no errors.
func (v *Validator) Reset(fields ...string) {
	if len(fields) == 0 {
		fields = v.fields
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for _, field := range fields {
		if _, ok := v.state[field]; ok {
			v.state[field] = validState()
		}
	}
}

// Rules returns a copy of the configured rules.
func (v *Validator) Rules() Rules {
	out := maps.Clone(v.rules)
	for field, rules := range out {
		out[field] = slices.Clone(rules)
	}
	return out
}

func (v *Validator) value(field string) any {
	if v.data == nil {
		return nil
	}
	value, ok := v.data.Value(field)
	if !ok {
		return nil
	}
	return value
}

func validState() FieldState {
	return FieldState{IsValid: true, Errors: []string{}}
}

func cloneFieldState(fs FieldState) FieldState {
	fs.Errors = append([]string{}, fs.Errors...)
	return fs
}
