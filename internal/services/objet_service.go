package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"police-system/internal/dto"
	"police-system/internal/entities"
	"police-system/internal/synchro"
	"police-system/internal/upstream"
	"police-system/pkg/config"
	"police-system/pkg/constants"
)

// ObjetService expose les contrôleurs des objets perdus et retrouvés.
type ObjetService struct {
	client   *upstream.Client
	registry *synchro.Registry
	cfg      *config.Config
	logger   *zap.Logger
}

func NewObjetService(client *upstream.Client, registry *synchro.Registry, cfg *config.Config, logger *zap.Logger) *ObjetService {
	return &ObjetService{client: client, registry: registry, cfg: cfg, logger: logger}
}

func (s *ObjetService) RafraichirPerdus(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.ObjetPerdu, dto.ObjetPerduStatsDTO] {
	return s.controleurPerdus(commissariatID).AwaitRefresh(ctx, p)
}

func (s *ObjetService) RafraichirRetrouves(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.ObjetRetrouve, dto.ObjetRetrouveStatsDTO] {
	return s.controleurRetrouves(commissariatID).AwaitRefresh(ctx, p)
}

func (s *ObjetService) controleurPerdus(commissariatID string) *synchro.Controller[entities.ObjetPerdu, dto.ObjetPerduStatsDTO] {
	ctrl := s.registry.Obtenir("objets-perdus:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.ObjetPerdu, dto.ObjetPerduStatsDTO]{
			Entite:      "objets-perdus",
			Espacement:  s.cfg.Sync.EspacementListe,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerObjetsPerdus,
			Stats:       s.client.StatsObjetsPerdus,
			ClesItems:   []string{"objets"},
			Reconcilier: reconcilierObjetsPerdus,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.ObjetPerdu, dto.ObjetPerduStatsDTO])
}

func (s *ObjetService) controleurRetrouves(commissariatID string) *synchro.Controller[entities.ObjetRetrouve, dto.ObjetRetrouveStatsDTO] {
	ctrl := s.registry.Obtenir("objets-retrouves:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.ObjetRetrouve, dto.ObjetRetrouveStatsDTO]{
			Entite:      "objets-retrouves",
			Espacement:  s.cfg.Sync.EspacementListe,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerObjetsRetrouves,
			Stats:       s.client.StatsObjetsRetrouves,
			ClesItems:   []string{"objets"},
			Reconcilier: reconcilierObjetsRetrouves,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.ObjetRetrouve, dto.ObjetRetrouveStatsDTO])
}

func reconcilierObjetsPerdus(raw json.RawMessage, items []entities.ObjetPerdu, totalFallback int) (dto.ObjetPerduStatsDTO, bool) {
	if champs, ok := synchro.DecoderStats(raw); ok {
		total, okTotal := champs.Entier("total")
		enRecherche, okRecherche := champs.Entier("en_recherche", "enRecherche")
		retrouves, okRetrouves := champs.Entier("retrouves")
		clotures, okClotures := champs.Entier("clotures")
		if okTotal && okRecherche && okRetrouves && okClotures {
			taux, okTaux := champs.Decimal("taux_resolution")
			if !okTaux {
				taux = synchro.Taux(retrouves, total)
			}
			return dto.ObjetPerduStatsDTO{
				Total:          total,
				EnRecherche:    enRecherche,
				Retrouves:      retrouves,
				Clotures:       clotures,
				TauxResolution: taux,
			}, false
		}
	}

	var enRecherche, retrouves, clotures int
	for _, objet := range items {
		switch objet.Statut {
		case constants.ObjetEnRecherche:
			enRecherche++
		case constants.ObjetRetrouve:
			retrouves++
		case constants.ObjetCloture:
			clotures++
		}
	}
	return dto.ObjetPerduStatsDTO{
		Total:          totalFallback,
		EnRecherche:    enRecherche,
		Retrouves:      retrouves,
		Clotures:       clotures,
		TauxResolution: synchro.Taux(retrouves, totalFallback),
	}, true
}

func reconcilierObjetsRetrouves(raw json.RawMessage, items []entities.ObjetRetrouve, totalFallback int) (dto.ObjetRetrouveStatsDTO, bool) {
	if champs, ok := synchro.DecoderStats(raw); ok {
		total, okTotal := champs.Entier("total")
		enAttente, okAttente := champs.Entier("en_attente", "enAttente")
		restitues, okRestitues := champs.Entier("restitues")
		transferes, okTransferes := champs.Entier("transferes")
		if okTotal && okAttente && okRestitues && okTransferes {
			taux, okTaux := champs.Decimal("taux_restitution")
			if !okTaux {
				taux = synchro.Taux(restitues, total)
			}
			return dto.ObjetRetrouveStatsDTO{
				Total:           total,
				EnAttente:       enAttente,
				Restitues:       restitues,
				Transferes:      transferes,
				TauxRestitution: taux,
			}, false
		}
	}

	var enAttente, restitues, transferes int
	for _, objet := range items {
		switch objet.Statut {
		case constants.ObjetEnAttente:
			enAttente++
		case constants.ObjetRestitue:
			restitues++
		case constants.ObjetTransfere:
			transferes++
		}
	}
	return dto.ObjetRetrouveStatsDTO{
		Total:           totalFallback,
		EnAttente:       enAttente,
		Restitues:       restitues,
		Transferes:      transferes,
		TauxRestitution: synchro.Taux(restitues, totalFallback),
	}, true
}
