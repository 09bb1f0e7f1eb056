package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator - adaptateur pour l'interface echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implémente echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New crée et configure le validateur. Si une règle critique ne peut pas
// être enregistrée, le serveur ne doit pas démarrer.
func New() *CustomValidator {
	v := validator.New()

	if err := registerRules(v); err != nil {
		panic("erreur d'enregistrement des règles de validation : " + err.Error())
	}

	return &CustomValidator{validator: v}
}
