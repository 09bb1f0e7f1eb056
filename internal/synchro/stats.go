package synchro

import (
	"encoding/json"
	"math"

	"police-system/internal/upstream"
)

// Outils communs aux réconciliateurs de statistiques. Les statistiques du
// serveur sont préférées quand leurs champs numériques sont exploitables ;
// sinon chaque compteur est recalculé depuis la liste récupérée, avec le
// total de pagination comme dénominateur pour ne pas sous-compter quand la
// liste n'est que la page courante.

// Taux calcule un pourcentage arrondi à une décimale. total == 0 donne 0,
// jamais NaN : ces valeurs sont rendues telles quelles par les écrans.
func Taux(part, total int) float64 {
	if total <= 0 || part < 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// ChampsStats est la lecture tolérante d'une réponse de statistiques :
// un sac de champs numériques dont aucun n'est garanti.
type ChampsStats map[string]json.Number

// DecoderStats déballe l'éventuelle enveloppe {"data": ...} et décode le
// sac de champs. ok vaut false quand la réponse est absente ou inexploitable
// (le réconciliateur bascule alors sur le recalcul local).
func DecoderStats(raw json.RawMessage) (ChampsStats, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var champs ChampsStats
	if err := json.Unmarshal(upstream.UnwrapData(raw), &champs); err != nil {
		return nil, false
	}
	if len(champs) == 0 {
		return nil, false
	}
	return champs, true
}

// Entier renvoie le premier champ présent parmi les clés candidates,
// ramené à un entier fini. Les valeurs non numériques comptent pour
// absentes.
func (c ChampsStats) Entier(cles ...string) (int, bool) {
	for _, cle := range cles {
		valeur, ok := c[cle]
		if !ok {
			continue
		}
		f, err := valeur.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		return int(f), true
	}
	return 0, false
}

// Decimal renvoie un champ flottant fini (taux déjà calculé côté serveur).
func (c ChampsStats) Decimal(cles ...string) (float64, bool) {
	for _, cle := range cles {
		valeur, ok := c[cle]
		if !ok {
			continue
		}
		f, err := valeur.Float64()
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		return f, true
	}
	return 0, false
}

// DenominateurFallback choisit le dénominateur du recalcul local : le total
// de pagination quand il dépasse la longueur de la page courante.
func DenominateurFallback(nbItems, totalPagination int) int {
	if totalPagination > nbItems {
		return totalPagination
	}
	return nbItems
}
