package validation

import (
	"github.com/go-playground/validator/v10"

	"police-system/pkg/periode"
)

// registerRules enregistre les règles propres au domaine.
func registerRules(v *validator.Validate) error {
	// cle_periode : la valeur doit être une clé de période connue.
	return v.RegisterValidation("cle_periode", isClePeriode)
}

func isClePeriode(fl validator.FieldLevel) bool {
	switch periode.Cle(fl.Field().String()) {
	case periode.Jour, periode.Semaine, periode.Mois, periode.Annee, periode.Tout, periode.Personnalise:
		return true
	}
	return false
}
