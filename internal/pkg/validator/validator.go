// Package validator wraps go-playground/validator with the pipeline's
// custom rules. Candidates never enter the catalog without passing it.
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/freeil-scanner/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Default city set; Configure replaces it when config overrides the list.
	registerCityRule(domain.CityNames())
}

// Configure re-registers the il_city rule against the supported-city list
// from configuration.
func Configure(cities []string) {
	registerCityRule(cities)
}

func registerCityRule(cities []string) {
	allowed := make(map[string]struct{}, len(cities))
	for _, c := range cities {
		allowed[c] = struct{}{}
	}
	// Registration only fails for empty tags or nil funcs.
	_ = validate.RegisterValidation("il_city", func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
}

// Validate runs struct validation.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator exposes the underlying validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
