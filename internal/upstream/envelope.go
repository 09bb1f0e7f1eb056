package upstream

import (
	"bytes"
	"encoding/json"

	"police-system/pkg/types"
)

// Le serveur central renvoie ses listes sous quatre formes observées :
//
//	(a) {"data": {"alertes": [...], "pagination": {...}}}      clé nommée + pagination imbriquée
//	(b) {"data": {"objets": [...], "total": N, "page": p, "limit": l}}  champs frères
//	(c) [ ... ]                                                 tableau nu
//	(d) {"data": {"data": [...], "pagination": {...}}}          clé générique
//
// Envelope est la forme canonique que le reste de la passerelle consomme.
type Envelope struct {
	Items      []json.RawMessage
	Pagination types.Pagination
}

// paginationBrute tolère les deux encodages de la pagination : objet
// imbriqué ou champs frères au même niveau que la liste.
type paginationBrute struct {
	Pagination *struct {
		Total      *uint64 `json:"total"`
		TotalCount *uint64 `json:"total_count"`
		Page       int     `json:"page"`
		Limit      int     `json:"limit"`
	} `json:"pagination"`
	Total *uint64 `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// NormalizeEnvelope extrait la forme canonique d'une réponse brute.
// clesItems énumère les clés candidates pour la liste (clé propre à
// l'entité d'abord, puis les clés génériques). limite est la limite fixée
// par le contrôleur : une limite différente renvoyée par le backend est
// ignorée et total_pages est systématiquement recalculé.
//
// Une forme inconnue ne produit jamais d'erreur : liste vide et pagination
// à zéro plutôt qu'une exception propagée jusqu'aux écrans.
func NormalizeEnvelope(raw json.RawMessage, clesItems []string, limite int) Envelope {
	vide := Envelope{Items: []json.RawMessage{}, Pagination: types.NewPagination(0, 1, limite)}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return vide
	}

	// Forme (c) : tableau nu, pagination synthétisée.
	if raw[0] == '[' {
		items := decoderListe(raw)
		if items == nil {
			return vide
		}
		return Envelope{Items: items, Pagination: types.NewPagination(uint64(len(items)), 1, limite)}
	}

	var racine map[string]json.RawMessage
	if err := json.Unmarshal(raw, &racine); err != nil {
		return vide
	}

	// Niveau interne : contenu de "data" quand c'est un objet, sinon la
	// racine elle-même.
	interne := racine
	if data, ok := racine["data"]; ok {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			// "data" est directement la liste.
			items := decoderListe(trimmed)
			if items == nil {
				return vide
			}
			return Envelope{Items: items, Pagination: extrairePagination(raw, len(items), limite)}
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err == nil {
			interne = obj
		}
	}

	items := chercherItems(interne, clesItems)
	if items == nil {
		return vide
	}

	// La pagination peut se trouver au niveau interne ou à la racine.
	if interneRaw, err := json.Marshal(interne); err == nil {
		if pag, ok := lirePagination(interneRaw, limite); ok {
			return Envelope{Items: items, Pagination: pag}
		}
	}
	return Envelope{Items: items, Pagination: extrairePagination(raw, len(items), limite)}
}

// UnwrapData déballe une éventuelle enveloppe {"data": {...}} autour d'un
// objet, typiquement la réponse des endpoints de statistiques.
func UnwrapData(raw json.RawMessage) json.RawMessage {
	var racine map[string]json.RawMessage
	if err := json.Unmarshal(raw, &racine); err != nil {
		return raw
	}
	if data, ok := racine["data"]; ok {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			return data
		}
	}
	return raw
}

func decoderListe(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items
}

// chercherItems essaie les clés candidates dans l'ordre, puis les clés
// génériques habituelles.
func chercherItems(obj map[string]json.RawMessage, clesItems []string) []json.RawMessage {
	cles := append(append([]string{}, clesItems...), "data", "items", "list")
	for _, cle := range cles {
		raw, ok := obj[cle]
		if !ok {
			continue
		}
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			continue
		}
		if items := decoderListe(trimmed); items != nil {
			return items
		}
	}
	return nil
}

// lirePagination renvoie la pagination canonique si le fragment en contient
// une (objet imbriqué ou champs frères).
func lirePagination(raw json.RawMessage, limite int) (types.Pagination, bool) {
	var brute paginationBrute
	if err := json.Unmarshal(raw, &brute); err != nil {
		return types.Pagination{}, false
	}

	if brute.Pagination != nil {
		total := uint64(0)
		switch {
		case brute.Pagination.Total != nil:
			total = *brute.Pagination.Total
		case brute.Pagination.TotalCount != nil:
			total = *brute.Pagination.TotalCount
		}
		return types.NewPagination(total, brute.Pagination.Page, limite), true
	}
	if brute.Total != nil {
		return types.NewPagination(*brute.Total, brute.Page, limite), true
	}
	return types.Pagination{}, false
}

// extrairePagination tente la racine puis synthétise depuis la longueur de
// la liste extraite (page 1, limite demandée).
func extrairePagination(raw json.RawMessage, nbItems, limite int) types.Pagination {
	if pag, ok := lirePagination(raw, limite); ok {
		return pag
	}
	return types.NewPagination(uint64(nbItems), 1, limite)
}
