// Package formvalidation tracks per-field validity of a form against
// declarative rule lists.
//
// A Validator is built from the live form data (any Data implementation)
// and a Rules map from field name to an ordered list of Rule functions. A
// Rule returns "" for a valid value or an error message. Rules report
// failures only through that message; they never return Go errors.
//
// # State
//
// Every field named in the rules starts valid with no errors. ValidateField
// runs all of a field's rules in order, keeps every message (not just the
// first) and overwrites that field's state. ValidateForm re-reads the values
// from the form data and validates the given fields, or all of them.
// IsValid is computed from the field states on each call and is never stored.
//
// # Usage
//
//	form := &SignupForm{}
//	v := formvalidation.New(formvalidation.Struct(form), formvalidation.Rules{
//	    "email": {formvalidation.Required(), formvalidation.Email()},
//	    "name": {
//	        formvalidation.Required(),
//	        formvalidation.MinLength(2),
//	    },
//	})
//
//	form.Email = "not-an-email"
//	v.ValidateForm("email")          // only touches "email"
//	fs, _ := v.Field("email")        // {IsValid: false, Errors: ["must be a valid email address"]}
//	ok := v.IsValid()                // false
//
// # Built-in rules
//
// Required, MinLength, MaxLength, Length, Email, URL, Pattern, Min, Max and
// OneOf reuse the messages of the service-side validator. Apart from
// Required they accept empty values, so optional fields are written without
// extra conditions. Check and Typed adapt plain predicates and typed
// functions; WithMessage overrides a message.
//
// # Rule files
//
// ParseRules and LoadRules build Rules from YAML, with custom rule kinds added
// by RegisterRule:
//
//	email:
//	  - rule: required
//	  - rule: email
//	    message: enter a valid email
//	age:
//	  - rule: min
//	    value: 18
package formvalidation
