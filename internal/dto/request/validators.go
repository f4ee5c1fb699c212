package request

import (
	"regexp"
	"strings"

	"fyyur/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Accepts 123-456-7890 style numbers with -, ., space, or no separator.
var phonePattern = regexp.MustCompile(`^\d{3}[-.\s]?\d{3}[-.\s]?\d{4}$`)

func init() {
	utils.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
		return ValidState(fl.Field().String())
	})
	utils.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return ValidGenre(fl.Field().String())
	})
	utils.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	utils.RegisterValidation("facebookurl", func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "facebook.com/")
	})
}
