package controllers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"police-system/internal/dto"
	"police-system/internal/identity"
	"police-system/internal/synchro"
	apperrors "police-system/pkg/errors"
	"police-system/pkg/middleware"
	"police-system/pkg/periode"
)

// scopeResolver fournit aux contrôleurs le périmètre obligatoire de toute
// synchronisation : le commissariat résolu depuis la session. Sans lui,
// aucune requête ne part vers le serveur central.
type scopeResolver struct {
	identite identity.Provider
	logger   *zap.Logger
}

func (r *scopeResolver) commissariat(c echo.Context) (string, error) {
	ctx := c.Request().Context()
	sessionID, err := middleware.SessionIDFromCtx(ctx)
	if err != nil {
		return "", err
	}
	return r.identite.ResolveCommissariatID(ctx, sessionID)
}

// parseParams lit et valide les paramètres de liste communs, puis les
// convertit en paramètres de synchronisation. Une plage personnalisée
// inversée est rejetée ici, avant tout assemblage de filtres.
func parseParams(c echo.Context) (synchro.Params, error) {
	var query dto.ListeQueryDTO
	if err := c.Bind(&query); err != nil {
		return synchro.Params{}, apperrors.ErrBadRequest
	}
	if err := c.Validate(&query); err != nil {
		return synchro.Params{}, err
	}

	p := synchro.Params{
		Periode:   periode.Cle(query.Periode),
		Statut:    query.Statut,
		Type:      query.Type,
		Recherche: query.Recherche,
		Page:      query.Page,
	}
	if p.Periode == "" {
		p.Periode = periode.Tout
	}
	if p.Page <= 0 {
		p.Page = 1
	}

	if query.DateDebut != "" || query.DateFin != "" {
		custom := &periode.Personnalisee{Debut: query.DateDebut, Fin: query.DateFin}
		if err := periode.ValidatePersonnalisee(custom); err != nil {
			return synchro.Params{}, err
		}
		p.Personnalisee = custom
		p.Periode = periode.Personnalise
	}

	return p, nil
}
