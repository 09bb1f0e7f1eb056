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

// ControleService expose le contrôleur de synchronisation des contrôles
// routiers.
type ControleService struct {
	client   *upstream.Client
	registry *synchro.Registry
	cfg      *config.Config
	logger   *zap.Logger
}

func NewControleService(client *upstream.Client, registry *synchro.Registry, cfg *config.Config, logger *zap.Logger) *ControleService {
	return &ControleService{client: client, registry: registry, cfg: cfg, logger: logger}
}

func (s *ControleService) Rafraichir(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.Controle, dto.ControleStatsDTO] {
	return s.controleur(commissariatID).AwaitRefresh(ctx, p)
}

func (s *ControleService) controleur(commissariatID string) *synchro.Controller[entities.Controle, dto.ControleStatsDTO] {
	ctrl := s.registry.Obtenir("controles:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.Controle, dto.ControleStatsDTO]{
			Entite:      "controles",
			Espacement:  s.cfg.Sync.EspacementListe,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerControles,
			Stats:       s.client.StatsControles,
			ClesItems:   []string{"controles"},
			Reconcilier: reconcilierControles,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.Controle, dto.ControleStatsDTO])
}

func reconcilierControles(raw json.RawMessage, items []entities.Controle, totalFallback int) (dto.ControleStatsDTO, bool) {
	if champs, ok := synchro.DecoderStats(raw); ok {
		total, okTotal := champs.Entier("total")
		conformes, okConformes := champs.Entier("conformes")
		avecInfraction, okInfraction := champs.Entier("avec_infraction", "infractions")
		if okTotal && okConformes && okInfraction {
			taux, okTaux := champs.Decimal("taux_conformite")
			if !okTaux {
				taux = synchro.Taux(conformes, total)
			}
			return dto.ControleStatsDTO{
				Total:          total,
				Conformes:      conformes,
				AvecInfraction: avecInfraction,
				TauxConformite: taux,
			}, false
		}
	}

	var conformes, avecInfraction int
	for _, controle := range items {
		switch controle.Issue {
		case constants.ControleConforme:
			conformes++
		case constants.ControleAvecInfraction:
			avecInfraction++
		}
	}
	return dto.ControleStatsDTO{
		Total:          totalFallback,
		Conformes:      conformes,
		AvecInfraction: avecInfraction,
		TauxConformite: synchro.Taux(conformes, totalFallback),
	}, true
}
