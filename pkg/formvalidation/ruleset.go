package formvalidation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"
)

// RuleSpec is one entry of a rule file.
type RuleSpec struct {
	Rule string `yaml:"rule"`
	// Message replaces the rule's default message when set.
	Message string `yaml:"message,omitempty"`
	// Value carries the rule parameter: a number, a string or a list.
	Value any `yaml:"value,omitempty"`
	// Description names a pattern in its failure message.
	Description string `yaml:"description,omitempty"`
}

// RuleFactory builds a Rule from its spec.
type RuleFactory func(spec RuleSpec) (Rule, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleFactory{
		"required":   func(RuleSpec) (Rule, error) { return Required(), nil },
		"email":      func(RuleSpec) (Rule, error) { return Email(), nil },
		"url":        func(RuleSpec) (Rule, error) { return URL(), nil },
		"min_length": intFactory(MinLength),
		"max_length": intFactory(MaxLength),
		"length":     intFactory(Length),
		"min":        floatFactory(Min),
		"max":        floatFactory(Max),
		"pattern":    patternFactory,
		"one_of":     oneOfFactory,
	}
)

// RegisterRule makes a custom rule kind available to rule files.
func RegisterRule(name string, factory RuleFactory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("%w: rule name and factory are required", ErrInvalidRuleSpec)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	registry[name] = factory
	return nil
}

// ParseRules builds Rules from a YAML document mapping field names to lists
// of rule specs:
//
//	email:
//	  - rule: required
//	  - rule: email
//	    message: enter a valid email
//	name:
//	  - rule: min_length
//	    value: 3
func ParseRules(data []byte) (Rules, error) {
	return LoadRules(bytes.NewReader(data))
}

// LoadRules reads a rule file from r. See ParseRules for the format.
func LoadRules(r io.Reader) (Rules, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var specs map[string][]RuleSpec
	if err := dec.Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSpec, err)
	}

	rules := make(Rules, len(specs))
	for field, fieldSpecs := range specs {
		list := make([]Rule, 0, len(fieldSpecs))
		for i, spec := range fieldSpecs {
			rule, err := buildRule(spec)
			if err != nil {
				return nil, fmt.Errorf("field %q rule #%d: %w", field, i+1, err)
			}
			list = append(list, rule)
		}
		rules[field] = list
	}
	return rules, nil
}

func buildRule(spec RuleSpec) (Rule, error) {
	registryMu.RLock()
	factory, ok := registry[spec.Rule]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, spec.Rule)
	}

	rule, err := factory(spec)
	if err != nil {
		return nil, err
	}
	if spec.Message != "" {
		rule = WithMessage(rule, spec.Message)
	}
	return rule, nil
}

func intFactory(build func(int) Rule) RuleFactory {
	return func(spec RuleSpec) (Rule, error) {
		n, ok := spec.Value.(int)
		if !ok || n < 0 {
			return nil, fmt.Errorf("%w: %s needs a non-negative integer value", ErrInvalidRuleSpec, spec.Rule)
		}
		return build(n), nil
	}
}

func floatFactory(build func(float64) Rule) RuleFactory {
	return func(spec RuleSpec) (Rule, error) {
		switch v := spec.Value.(type) {
		case int:
			return build(float64(v)), nil
		case float64:
			return build(v), nil
		}
		return nil, fmt.Errorf("%w: %s needs a numeric value", ErrInvalidRuleSpec, spec.Rule)
	}
}

func patternFactory(spec RuleSpec) (Rule, error) {
	pattern, ok := spec.Value.(string)
	if !ok || pattern == "" {
		return nil, fmt.Errorf("%w: pattern needs a string value", ErrInvalidRuleSpec)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSpec, err)
	}
	description := spec.Description
	if description == "" {
		description = "the required"
	}
	return Pattern(pattern, description), nil
}

func oneOfFactory(spec RuleSpec) (Rule, error) {
	items, ok := spec.Value.([]any)
	if !ok || len(items) == 0 {
		return nil, fmt.Errorf("%w: one_of needs a non-empty list value", ErrInvalidRuleSpec)
	}
	allowed := make([]string, 0, len(items))
	for _, item := range items {
		allowed = append(allowed, fmt.Sprint(item))
	}
	return OneOf(allowed...), nil
}
