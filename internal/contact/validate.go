package contact

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names a validated input field.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldContactNo    Field = "contactNo"
	FieldAddressLine1 Field = "addressLine1"
	FieldAddressLine2 Field = "addressLine2"
	FieldPincode      Field = "pincode"
	FieldState        Field = "state"
)

// Errors maps a field to the message shown next to it.
type Errors map[Field]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

// checked is the trimmed view of an Input that the rules run against.
// Optional fields are absent on purpose.
type checked struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,contactemail"`
	AddressLine1 string `json:"addressLine1" validate:"required"`
	Pincode      string `json:"pincode" validate:"required,len=6"`
	State        string `json:"state" validate:"required"`
}

var messages = map[Field]map[string]string{
	FieldName:         {"required": "Name is required."},
	FieldEmail:        {"required": "Email is required.", "contactemail": "Enter a valid email."},
	FieldAddressLine1: {"required": "Address Line 1 is required."},
	FieldPincode:      {"required": "Pincode is required.", "len": "Pincode must be 6 digits."},
	FieldState:        {"required": "State is required."},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks a contact input and returns an error message for every
// field that fails. Every field is checked; the result is empty when the
// input can be committed.
func Validate(in Input) Errors {
	errs := Errors{}

	c := checked{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		AddressLine1: strings.TrimSpace(in.AddressLine1),
		Pincode:      strings.TrimSpace(in.Pincode),
		State:        strings.TrimSpace(in.State),
	}

	err := validate.Struct(c)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}

	for _, fe := range verrs {
		field := Field(fe.Field())
		if msg, ok := messages[field][fe.Tag()]; ok {
			errs[field] = msg
		}
	}
	return errs
}
