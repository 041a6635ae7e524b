package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/academiahq/academia/core"
)

var (
	yearOfStudyTag  = "yearofstudy"
	yearOfStudyText = "invalid year of study"

	planTag  = "plantype"
	planText = "invalid plan"
)

// InitValidators registers this package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(yearOfStudyTag, yearOfStudyValidation)
	core.RegisterCustomTranslation(validate, translator, yearOfStudyTag, yearOfStudyText)

	_ = validate.RegisterValidation(planTag, planValidation)
	core.RegisterCustomTranslation(validate, translator, planTag, planText)
}

func yearOfStudyValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, y := range Years {
		if val == y {
			return true
		}
	}
	return false
}

func planValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, p := range Plans {
		if val == p {
			return true
		}
	}
	return false
}
