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

// InfractionService expose le contrôleur de synchronisation des infractions.
type InfractionService struct {
	client   *upstream.Client
	registry *synchro.Registry
	cfg      *config.Config
	logger   *zap.Logger
}

func NewInfractionService(client *upstream.Client, registry *synchro.Registry, cfg *config.Config, logger *zap.Logger) *InfractionService {
	return &InfractionService{client: client, registry: registry, cfg: cfg, logger: logger}
}

func (s *InfractionService) Rafraichir(ctx context.Context, commissariatID string, p synchro.Params) synchro.Snapshot[entities.Infraction, dto.InfractionStatsDTO] {
	return s.controleur(commissariatID).AwaitRefresh(ctx, p)
}

func (s *InfractionService) controleur(commissariatID string) *synchro.Controller[entities.Infraction, dto.InfractionStatsDTO] {
	ctrl := s.registry.Obtenir("infractions:"+commissariatID, func() synchro.Fermable {
		return synchro.NewController(synchro.Config[entities.Infraction, dto.InfractionStatsDTO]{
			Entite:      "infractions",
			Espacement:  s.cfg.Sync.EspacementListe,
			Limite:      constants.LimiteParPage,
			Timeout:     s.cfg.Upstream.Timeout,
			Liste:       s.client.ListerInfractions,
			Stats:       s.client.StatsInfractions,
			ClesItems:   []string{"infractions"},
			Reconcilier: reconcilierInfractions,
			Logger:      s.logger,
		}, commissariatID)
	})
	return ctrl.(*synchro.Controller[entities.Infraction, dto.InfractionStatsDTO])
}

func reconcilierInfractions(raw json.RawMessage, items []entities.Infraction, totalFallback int) (dto.InfractionStatsDTO, bool) {
	if champs, ok := synchro.DecoderStats(raw); ok {
		total, okTotal := champs.Entier("total")
		payees, okPayees := champs.Entier("payees")
		contestees, okContestees := champs.Entier("contestees")
		impayees, okImpayees := champs.Entier("impayees", "non_payees")
		if okTotal && okPayees && okContestees && okImpayees {
			taux, okTaux := champs.Decimal("taux_paiement")
			if !okTaux {
				taux = synchro.Taux(payees, total)
			}
			return dto.InfractionStatsDTO{
				Total:        total,
				Payees:       payees,
				Contestees:   contestees,
				Impayees:     impayees,
				TauxPaiement: taux,
			}, false
		}
	}

	var payees, contestees, impayees int
	for _, infraction := range items {
		switch infraction.Statut {
		case constants.InfractionPayee:
			payees++
		case constants.InfractionContestee:
			contestees++
		case constants.InfractionImpayee:
			impayees++
		}
	}
	return dto.InfractionStatsDTO{
		Total:        totalFallback,
		Payees:       payees,
		Contestees:   contestees,
		Impayees:     impayees,
		TauxPaiement: synchro.Taux(payees, totalFallback),
	}, true
}
