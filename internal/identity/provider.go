package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"police-system/pkg/constants"
	apperrors "police-system/pkg/errors"
)

// Provider résout le commissariat actif d'une session. Un échec de
// résolution est une erreur bloquante : aucune requête ne part jamais sans
// ce périmètre.
type Provider interface {
	ResolveCommissariatID(ctx context.Context, sessionID string) (string, error)
}

// CacheProvider interroge la couche session sur trois niveaux, du plus
// récent au plus ancien : clé directe, ancienne clé, puis l'objet session
// complet dont on extrait commissariat.id.
type CacheProvider struct {
	store  Store
	logger *zap.Logger
}

func NewCacheProvider(store Store, logger *zap.Logger) *CacheProvider {
	return &CacheProvider{store: store, logger: logger.Named("identity")}
}

func (p *CacheProvider) ResolveCommissariatID(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", apperrors.ErrCommissariatIntrouvable
	}

	cles := []string{
		fmt.Sprintf(constants.CacheKeyCommissariatID, sessionID),
		fmt.Sprintf(constants.CacheKeyCommissariatIDLegacy, sessionID),
	}
	for _, cle := range cles {
		valeur, err := p.store.Get(ctx, cle)
		if err == nil && valeur != "" {
			return valeur, nil
		}
		if err != nil && !errors.Is(err, ErrCleAbsente) {
			return "", err
		}
	}

	// Dernier niveau : l'objet session complet.
	brut, err := p.store.Get(ctx, fmt.Sprintf(constants.CacheKeySession, sessionID))
	if err != nil {
		if errors.Is(err, ErrCleAbsente) {
			return "", apperrors.ErrCommissariatIntrouvable
		}
		return "", err
	}

	if id := extraireID(brut); id != "" {
		return id, nil
	}
	// JSON malformé ou champ absent : toléré, on termine sur « introuvable »
	// sans lever d'exception.
	p.logger.Warn("objet session illisible ou sans commissariat",
		zap.String("session_id", sessionID))
	return "", apperrors.ErrCommissariatIntrouvable
}

// extraireID lit commissariat.id dans l'objet session. L'identifiant peut
// être encodé en chaîne ou en nombre selon l'âge de la session.
func extraireID(brut string) string {
	var session struct {
		Commissariat struct {
			ID json.RawMessage `json:"id"`
		} `json:"commissariat"`
	}
	if err := json.Unmarshal([]byte(brut), &session); err != nil {
		return ""
	}
	raw := session.Commissariat.ID
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}
	return ""
}
