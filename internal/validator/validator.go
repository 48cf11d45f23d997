package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hri-lab/robot-survey/internal/models"
)

// Validator wraps the struct validator with the survey's custom rules.
type Validator struct {
	structValidator *validator.Validate
}

// New creates a new validator instance with all custom rules registered.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// Validate validates struct tags on s.
func (v *Validator) Validate(s interface{}) error {
	return v.structValidator.Struct(s)
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("number_positive", validatePositiveNumber)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateGender(fl validator.FieldLevel) bool {
	validLabels := []models.Gender{
		models.GenderMale,
		models.GenderFemale,
		models.GenderOther,
		models.GenderUndisclosed,
	}

	value := fl.Field().String()
	for _, label := range validLabels {
		if string(label) == value {
			return true
		}
	}
	return false
}

// validatePositiveNumber accepts string fields holding a positive integer.
// Participant age arrives as free-form text from the input form.
func validatePositiveNumber(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil && n > 0
}
