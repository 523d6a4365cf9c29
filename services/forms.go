package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidDecision  = errors.New("invalid action, choose accept or reject")

	// ErrNotListed matches every "ID must come from the list shown" failure.
	ErrNotListed = errors.New("not in the list shown")

	ErrProjectNotListed     = &notListedError{"invalid project ID from the list"}
	ErrProjectNotOwned      = &notListedError{"invalid project ID from your list"}
	ErrApplicationNotListed = &notListedError{"invalid application ID from the list"}
	ErrSkillNotAdded        = &notListedError{"you have not added this skill"}
	ErrContractNotOwned     = &notListedError{"invalid contract ID from your 'Project Owner' list"}
)

type notListedError struct{ msg string }

func (e *notListedError) Error() string { return e.msg }

func (e *notListedError) Is(target error) bool { return target == ErrNotListed }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

type LoginInput struct {
	Email    string `form:"email" label:"Email" validate:"required"`
	Password string `form:"password" label:"Password" validate:"required"`
}

type RegisterInput struct {
	Email           string `form:"email" label:"Email" validate:"required,email"`
	Name            string `form:"name" label:"Full name" validate:"required"`
	Password        string `form:"password" label:"Password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" label:"Password confirmation"`
	Phone           string `form:"phone" label:"Phone number"`
	Department      string `form:"department" label:"Department" validate:"required"`
	Year            string `form:"year" label:"Year of study" validate:"required,number"`
}

type ProjectInput struct {
	Title       string `form:"title" label:"Project title" validate:"required"`
	Description string `form:"description" label:"Project description" validate:"required"`
	Deadline    string `form:"deadline" label:"Deadline" validate:"required,datetime=2006-01-02"`
}

type SkillInput struct {
	Name        string `form:"skill_name" label:"Skill name" validate:"required"`
	Proficiency string `form:"proficiency" label:"Proficiency" validate:"required"`
}

// MaxAmount is the largest value a numeric(10,2) payment column holds.
const MaxAmount = 99999999.99

type CompletionInput struct {
	Rating  int     `form:"rating" label:"Rating" validate:"min=1,max=5"`
	Comment string  `form:"comment" label:"Review comment"`
	Amount  float64 `form:"amount" label:"Amount" validate:"gt=0,lte=99999999.99"`
	Method  string  `form:"payment_method" label:"Payment method" validate:"required"`
}

// FormError carries one message per offending field.
type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return e.Message
}

func NewFormError(errs map[string]string) *FormError {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, errs[f])
	}
	return &FormError{Errors: errs, Message: strings.Join(msgs, " ")}
}

func fieldError(field, message string) *FormError {
	return NewFormError(map[string]string{field: message})
}

func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errs[fe.StructField()] = describe(fe)
	}
	return NewFormError(errs)
}

func describe(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", label)
	case "number":
		return fmt.Sprintf("%s must be a number.", label)
	case "datetime":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format.", label)
	case "min", "max":
		if fe.StructField() == "Rating" {
			return "Rating must be between 1 and 5."
		}
		return fmt.Sprintf("%s is out of range.", label)
	case "gt":
		return fmt.Sprintf("%s must be greater than zero.", label)
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
