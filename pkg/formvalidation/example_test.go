package formvalidation_test

import (
	"fmt"

	"github.com/dmitrymomot/uikit/pkg/formvalidation"
)

func Example() {
	type signup struct {
		Email string `form:"email"`
		Name  string `form:"name"`
	}

	form := &signup{Email: "ann@", Name: ""}
	v := formvalidation.New(formvalidation.Struct(form), formvalidation.Rules{
		"email": {formvalidation.Required(), formvalidation.Email()},
		"name":  {formvalidation.Required(), formvalidation.MinLength(2)},
	})

	fmt.Println(v.ValidateForm())
	fmt.Println(v.Err())

	form.Email = "ann@example.com"
	form.Name = "Ann"
	fmt.Println(v.ValidateForm())

	// Output:
	// false
	// validation failed: email: must be a valid email address; name: field is required
	// true
}
