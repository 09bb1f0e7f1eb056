package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"police-system/internal/dto"
	"police-system/internal/entities"
	"police-system/pkg/constants"
)

func TestReconcilierAlertesPrefereLeServeur(t *testing.T) {
	raw := json.RawMessage(`{"data": {"total": 100, "actives": 40, "resolues": 50, "archivees": 10, "taux_resolution": 50.0}}`)

	stats, estimees := reconcilierAlertes(raw, nil, 0)

	assert.False(t, estimees)
	assert.Equal(t, dto.AlerteStatsDTO{Total: 100, Actives: 40, Resolues: 50, Archivees: 10, TauxResolution: 50.0}, stats)
}

func TestReconcilierAlertesAliasEnCours(t *testing.T) {
	raw := json.RawMessage(`{"total": 10, "en_cours": 4, "resolues": 5, "archivees": 1}`)

	stats, estimees := reconcilierAlertes(raw, nil, 0)

	assert.False(t, estimees)
	assert.Equal(t, 4, stats.Actives)
	// Taux absent côté serveur : calculé depuis les compteurs serveur.
	assert.Equal(t, 50.0, stats.TauxResolution)
}

func TestReconcilierAlertesRecalculLocal(t *testing.T) {
	items := []entities.Alerte{
		{Statut: constants.AlerteActive},
		{Statut: constants.AlerteActive},
		{Statut: constants.AlerteResolue},
		{Statut: constants.AlerteResolue},
		{Statut: constants.AlerteResolue},
		{Statut: constants.AlerteArchivee},
		{Statut: "inconnu"},
	}

	stats, estimees := reconcilierAlertes(nil, items, 7)

	assert.True(t, estimees)
	assert.Equal(t, dto.AlerteStatsDTO{Total: 7, Actives: 2, Resolues: 3, Archivees: 1, TauxResolution: 42.9}, stats)
}

func TestReconcilierAlertesChampsIncomplets(t *testing.T) {
	// Un agrégat serveur auquel il manque un compteur ne vaut rien : bascule
	// entière sur le recalcul local, jamais un panachage des deux sources.
	raw := json.RawMessage(`{"total": 100, "actives": 40}`)
	items := []entities.Alerte{{Statut: constants.AlerteActive}}

	stats, estimees := reconcilierAlertes(raw, items, 50)

	assert.True(t, estimees)
	assert.Equal(t, 50, stats.Total)
	assert.Equal(t, 1, stats.Actives)
}

func TestReconcilierObjetsPerdus(t *testing.T) {
	items := []entities.ObjetPerdu{
		{Statut: constants.ObjetEnRecherche},
		{Statut: constants.ObjetRetrouve},
		{Statut: constants.ObjetRetrouve},
		{Statut: constants.ObjetCloture},
	}

	stats, estimees := reconcilierObjetsPerdus(nil, items, 4)

	assert.True(t, estimees)
	assert.Equal(t, dto.ObjetPerduStatsDTO{Total: 4, EnRecherche: 1, Retrouves: 2, Clotures: 1, TauxResolution: 50.0}, stats)
}

func TestReconcilierObjetsRetrouves(t *testing.T) {
	raw := json.RawMessage(`{"data": {"total": 8, "en_attente": 3, "restitues": 4, "transferes": 1}}`)

	stats, estimees := reconcilierObjetsRetrouves(raw, nil, 0)

	assert.False(t, estimees)
	assert.Equal(t, dto.ObjetRetrouveStatsDTO{Total: 8, EnAttente: 3, Restitues: 4, Transferes: 1, TauxRestitution: 50.0}, stats)
}

func TestReconcilierControles(t *testing.T) {
	items := []entities.Controle{
		{Issue: constants.ControleConforme},
		{Issue: constants.ControleConforme},
		{Issue: constants.ControleAvecInfraction},
	}

	stats, estimees := reconcilierControles(nil, items, 3)

	assert.True(t, estimees)
	assert.Equal(t, dto.ControleStatsDTO{Total: 3, Conformes: 2, AvecInfraction: 1, TauxConformite: 66.7}, stats)
}

func TestReconcilierInfractions(t *testing.T) {
	raw := json.RawMessage(`{"data": {"total": 20, "payees": 12, "contestees": 3, "impayees": 5, "taux_paiement": 60.0}}`)

	stats, estimees := reconcilierInfractions(raw, nil, 0)

	assert.False(t, estimees)
	assert.Equal(t, dto.InfractionStatsDTO{Total: 20, Payees: 12, Contestees: 3, Impayees: 5, TauxPaiement: 60.0}, stats)
}

func TestReconcilierTotalZero(t *testing.T) {
	stats, estimees := reconcilierAlertes(nil, nil, 0)

	assert.True(t, estimees)
	assert.Equal(t, 0.0, stats.TauxResolution)
}
