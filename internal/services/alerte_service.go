package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"police-system/internal/dto"
	"police-system/internal/entities"
	"police-system/internal/synchro"
	"police-system/internal/upstream"
	"police-system/pkg/config"
	"police-system/pkg/constants"
)

// AlerteService expose les deux contrôleurs de synchronisation des alertes :
// la liste paginée et le tableau de bord (qui ajoute la récupération large
// pour les courbes).
type AlerteService struct {
	client   *upstream.Client
	registry *synchro.Registry
	cfg      *config.Config
	logger   *zap.Logger
}

func NewAlerteService(client *upstream.Client, registry *synchro.Registry, cfg *config.Config, logger *zap.Logger) *AlerteService {
	return &AlerteService{client: client, registry: registry, cfg: cfg, logger: logger}
}

// Rafraichir applique les paramètres au contrôleur de liste du commissariat
// et attend l'instantané correspondant.
func (s *AlerteService) Rafraichir(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.Alerte, dto.AlerteStatsDTO] {
	return s.controleurListe(commissariatID).AwaitRefresh(ctx, p)
}

// RafraichirDashboard fait de même pour le tableau de bord.
func (s *AlerteService) RafraichirDashboard(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.Alerte, dto.AlerteStatsDTO] {
	return s.controleurDashboard(commissariatID).AwaitRefresh(ctx, p)
}

func (s *AlerteService) controleurListe(commissariatID string) *synchro.Controller[entities.Alerte, dto.AlerteStatsDTO] {
	ctrl := s.registry.Obtenir("alertes:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.Alerte, dto.AlerteStatsDTO]{
			Entite:      "alertes",
			Espacement:  s.cfg.Sync.EspacementListe,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerAlertes,
			Stats:       s.client.StatsAlertes,
			ClesItems:   []string{"alertes"},
			Reconcilier: reconcilierAlertes,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.Alerte, dto.AlerteStatsDTO])
}

func (s *AlerteService) controleurDashboard(commissariatID string) *synchro.Controller[entities.Alerte, dto.AlerteStatsDTO] {
	ctrl := s.registry.Obtenir("alertes-dashboard:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.Alerte, dto.AlerteStatsDTO]{
			Entite:      "alertes-dashboard",
			Espacement:  s.cfg.Sync.EspacementDashboard,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerAlertes,
			Stats:       s.client.StatsAlertes,
			Graphique:   s.graphiqueAlertes,
			ClesItems:   []string{"alertes"},
			Reconcilier: reconcilierAlertes,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.Alerte, dto.AlerteStatsDTO])
}

// graphiqueAlertes récupère la liste large (non paginée) pour les courbes
// du tableau de bord. Décorrélé de la pagination : exécuté en page 1
// uniquement, par le contrôleur.
func (s *AlerteService) graphiqueAlertes(ctx context.Context, q url.Values) (json.RawMessage, error) {
	large := url.Values{}
	for cle, valeurs := range q {
		large[cle] = valeurs
	}
	large.Del("periode")
	large.Set("page", "1")
	large.Set("limit", strconv.Itoa(constants.LimiteExport))
	return s.client.ListerAlertes(ctx, large)
}

// reconcilierAlertes préfère l'agrégat serveur ; sinon chaque compteur est
// recalculé depuis la page courante avec le total de pagination comme
// dénominateur (valeurs alors marquées estimées).
func reconcilierAlertes(raw json.RawMessage, items []entities.Alerte, totalFallback int) (dto.AlerteStatsDTO, bool) {
	if champs, ok := synchro.DecoderStats(raw); ok {
		total, okTotal := champs.Entier("total")
		actives, okActives := champs.Entier("actives", "en_cours")
		resolues, okResolues := champs.Entier("resolues")
		archivees, okArchivees := champs.Entier("archivees")
		if okTotal && okActives && okResolues && okArchivees {
			taux, okTaux := champs.Decimal("taux_resolution")
			if !okTaux {
				taux = synchro.Taux(resolues, total)
			}
			return dto.AlerteStatsDTO{
				Total:          total,
				Actives:        actives,
				Resolues:       resolues,
				Archivees:      archivees,
				TauxResolution: taux,
			}, false
		}
	}

	var actives, resolues, archivees int
	for _, alerte := range items {
		switch alerte.Statut {
		case constants.AlerteActive:
			actives++
		case constants.AlerteResolue:
			resolues++
		case constants.AlerteArchivee:
			archivees++
		}
	}
	return dto.AlerteStatsDTO{
		Total:          totalFallback,
		Actives:        actives,
		Resolues:       resolues,
		Archivees:      archivees,
		TauxResolution: synchro.Taux(resolues, totalFallback),
	}, true
}
