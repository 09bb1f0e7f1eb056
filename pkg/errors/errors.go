package errors

import (
	"fmt"
	"net/http"
)

var (
	// Session et identité
	ErrEmptyAuthHeader   = fmt.Errorf("le header d'autorisation est absent")
	ErrInvalidAuthHeader = fmt.Errorf("format du header d'autorisation invalide")
	ErrInvalidToken      = fmt.Errorf("jeton de session invalide")
	ErrTokenExpired      = fmt.Errorf("la session a expiré, veuillez vous reconnecter")

	// Résolution du commissariat : erreur bloquante, jamais de requête sans scope.
	ErrCommissariatIntrouvable = fmt.Errorf("aucun commissariat associé à votre session, veuillez vous reconnecter")

	// Réponses du backend
	ErrNonAutorise  = fmt.Errorf("authentification requise auprès du serveur central")
	ErrAccesRefuse  = fmt.Errorf("accès refusé par le serveur central")
	ErrIntrouvable  = fmt.Errorf("ressource introuvable sur le serveur central")
	ErrServeurDistant = fmt.Errorf("erreur du serveur central, veuillez réessayer plus tard")

	// Validation
	ErrPlageInversee = fmt.Errorf("la date de début doit précéder la date de fin")
	ErrBadRequest    = fmt.Errorf("requête invalide")
)

// HttpError porte un code HTTP, un message destiné à l'utilisateur et
// l'erreur technique sous-jacente (journalisée, jamais renvoyée au client).
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func BadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

// Codes HTTP associés aux erreurs sentinelles, pour utils.ErrorResponse.
var ErrorList = map[error]int{
	ErrEmptyAuthHeader:         http.StatusUnauthorized,
	ErrInvalidAuthHeader:       http.StatusUnauthorized,
	ErrInvalidToken:            http.StatusUnauthorized,
	ErrTokenExpired:            http.StatusUnauthorized,
	ErrCommissariatIntrouvable: http.StatusUnauthorized,
	ErrNonAutorise:             http.StatusUnauthorized,
	ErrAccesRefuse:             http.StatusForbidden,
	ErrIntrouvable:             http.StatusNotFound,
	ErrServeurDistant:          http.StatusBadGateway,
	ErrPlageInversee:           http.StatusBadRequest,
	ErrBadRequest:              http.StatusBadRequest,
}
