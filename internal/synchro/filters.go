package synchro

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"police-system/pkg/constants"
	"police-system/pkg/periode"
)

// Params regroupe les paramètres suivis par un contrôleur. Tout changement
// déclenche un nouveau cycle de synchronisation (cadencé par le throttler).
type Params struct {
	Periode       periode.Cle
	Personnalisee *periode.Personnalisee
	Statut        string
	Type          string
	Recherche     string
	Page          int
}

// Filtres porte les deux jeux de paramètres produits pour un même cycle :
// la liste paginée d'une part, les statistiques agrégées d'autre part.
type Filtres struct {
	Liste url.Values
	Stats url.Values
}

// sentinelles affichées pour « aucun filtre » : jamais transmises.
var sentinelles = map[string]struct{}{
	constants.TousLesStatuts: {},
	constants.TousLesTypes:   {},
	constants.TousLesNiveaux: {},
}

// AssemblerFiltres construit les deux jeux de filtres d'un cycle. La liste
// porte pagination et filtres d'entité ; les stats reprennent le même
// périmètre (commissariat + plage de dates) sans pagination ni recherche,
// plus l'indice de période que le backend utilise pour calculer les
// évolutions d'une période sur l'autre.
func AssemblerFiltres(p Params, commissariatID string, limite int, now time.Time) Filtres {
	plage := periode.ResolveAt(p.Periode, p.Personnalisee, now)

	liste := url.Values{}
	stats := url.Values{}

	liste.Set("commissariat_id", commissariatID)
	stats.Set("commissariat_id", commissariatID)

	if !plage.Vide() {
		debut := plage.Debut.Format(constants.FormatDateHeure)
		fin := plage.Fin.Format(constants.FormatDateHeure)
		liste.Set("date_debut", debut)
		liste.Set("date_fin", fin)
		stats.Set("date_debut", debut)
		stats.Set("date_fin", fin)
	}

	if valeurFiltre(p.Statut) {
		liste.Set("statut", p.Statut)
	}
	if valeurFiltre(p.Type) {
		liste.Set("type", p.Type)
	}
	if recherche := strings.TrimSpace(p.Recherche); recherche != "" {
		liste.Set("recherche", recherche)
	}

	page := p.Page
	if page <= 0 {
		page = 1
	}
	liste.Set("page", strconv.Itoa(page))
	liste.Set("limit", strconv.Itoa(limite))

	if p.Periode != "" {
		stats.Set("periode", string(p.Periode))
	}

	return Filtres{Liste: liste, Stats: stats}
}

// valeurFiltre indique si la valeur doit réellement être transmise : ni
// vide, ni une sentinelle « Tous les ... ».
func valeurFiltre(v string) bool {
	if v == "" {
		return false
	}
	_, sentinelle := sentinelles[v]
	return !sentinelle
}
