package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"police-system/internal/entities"
	"police-system/internal/synchro"
	"police-system/internal/upstream"
	"police-system/pkg/constants"
	apperrors "police-system/pkg/errors"
)

// Rapport est un tableau prêt à rendre : en-têtes plus lignes, quel que soit
// le format de sortie demandé par le contrôleur.
type Rapport struct {
	Nom     string
	EnTetes []string
	Lignes  [][]interface{}
}

// ReportService construit les exports par entité. Contrairement aux
// contrôleurs de synchronisation, un export est un appel ponctuel : pas de
// throttling, une seule requête large (page 1, limite d'export).
type ReportService struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewReportService(client *upstream.Client, logger *zap.Logger) *ReportService {
	return &ReportService{client: client, logger: logger.Named("rapports")}
}

// Exporter récupère l'intégralité des éléments filtrés de l'entité et les
// aplatit en lignes. Une entité inconnue est une erreur de requête.
func (s *ReportService) Exporter(ctx context.Context, entite, commissariatID string, p synchro.Params) (*Rapport, error) {
	p.Page = 1
	filtres := synchro.AssemblerFiltres(p, commissariatID, constants.LimiteExport, time.Now())

	switch entite {
	case "alertes":
		items, err := listerPourExport[entities.Alerte](ctx, s, s.client.ListerAlertes, filtres.Liste, []string{"alertes"})
		if err != nil {
			return nil, err
		}
		return rapportAlertes(items), nil
	case "objets-perdus":
		items, err := listerPourExport[entities.ObjetPerdu](ctx, s, s.client.ListerObjetsPerdus, filtres.Liste, []string{"objets"})
		if err != nil {
			return nil, err
		}
		return rapportObjetsPerdus(items), nil
	case "objets-retrouves":
		items, err := listerPourExport[entities.ObjetRetrouve](ctx, s, s.client.ListerObjetsRetrouves, filtres.Liste, []string{"objets"})
		if err != nil {
			return nil, err
		}
		return rapportObjetsRetrouves(items), nil
	case "controles":
		items, err := listerPourExport[entities.Controle](ctx, s, s.client.ListerControles, filtres.Liste, []string{"controles"})
		if err != nil {
			return nil, err
		}
		return rapportControles(items), nil
	case "infractions":
		items, err := listerPourExport[entities.Infraction](ctx, s, s.client.ListerInfractions, filtres.Liste, []string{"infractions"})
		if err != nil {
			return nil, err
		}
		return rapportInfractions(items), nil
	default:
		return nil, apperrors.BadRequest(fmt.Sprintf("Entité d'export inconnue : '%s'", entite))
	}
}

func listerPourExport[T any](ctx context.Context, s *ReportService,
	lister func(context.Context, url.Values) (json.RawMessage, error),
	q url.Values, clesItems []string) ([]T, error) {

	raw, err := lister(ctx, q)
	if err != nil {
		return nil, err
	}
	enveloppe := upstream.NormalizeEnvelope(raw, clesItems, constants.LimiteExport)
	return synchro.DecoderItems[T](enveloppe.Items, s.logger), nil
}

func rapportAlertes(items []entities.Alerte) *Rapport {
	r := &Rapport{
		Nom:     "Alertes",
		EnTetes: []string{"ID", "Titre", "Type", "Niveau", "Statut", "Localisation", "Créée le", "Résolue le"},
	}
	for _, a := range items {
		r.Lignes = append(r.Lignes, []interface{}{
			a.ID, a.Titre, a.Type, a.Niveau, a.Statut, a.Localisation,
			formatDate(a.CreatedAt), formatDate(a.ResolvedAt),
		})
	}
	return r
}

func rapportObjetsPerdus(items []entities.ObjetPerdu) *Rapport {
	r := &Rapport{
		Nom:     "Objets perdus",
		EnTetes: []string{"ID", "Nom", "Catégorie", "Statut", "Lieu de perte", "Déclarant", "Téléphone", "Perdu le", "Déclaré le"},
	}
	for _, o := range items {
		r.Lignes = append(r.Lignes, []interface{}{
			o.ID, o.Nom, o.Categorie, o.Statut, o.LieuPerte, o.Declarant, o.TelephoneDecl,
			formatDate(o.DatePerte), formatDate(o.CreatedAt),
		})
	}
	return r
}

func rapportObjetsRetrouves(items []entities.ObjetRetrouve) *Rapport {
	r := &Rapport{
		Nom:     "Objets retrouvés",
		EnTetes: []string{"ID", "Nom", "Catégorie", "Statut", "Lieu de découverte", "Découvert le", "Enregistré le"},
	}
	for _, o := range items {
		r.Lignes = append(r.Lignes, []interface{}{
			o.ID, o.Nom, o.Categorie, o.Statut, o.LieuDecouverte,
			formatDate(o.DateDecouverte), formatDate(o.CreatedAt),
		})
	}
	return r
}

func rapportControles(items []entities.Controle) *Rapport {
	r := &Rapport{
		Nom:     "Contrôles routiers",
		EnTetes: []string{"ID", "Lieu", "Type", "Issue", "Agent", "Immatriculation", "Effectué le"},
	}
	for _, c := range items {
		r.Lignes = append(r.Lignes, []interface{}{
			c.ID, c.Lieu, c.TypeControle, c.Issue, c.Agent, c.Immatriculation,
			formatDate(c.CreatedAt),
		})
	}
	return r
}

func rapportInfractions(items []entities.Infraction) *Rapport {
	r := &Rapport{
		Nom:     "Infractions",
		EnTetes: []string{"N° PV", "Type", "Statut", "Montant", "Immatriculation", "Contrevenant", "Dressé le", "Payé le"},
	}
	for _, i := range items {
		r.Lignes = append(r.Lignes, []interface{}{
			i.NumeroPV, i.TypeInfraction, i.Statut, i.Montant, i.Immatriculation, i.Contrevenant,
			formatDate(i.CreatedAt), formatDate(i.DatePaiement),
		})
	}
	return r
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}
