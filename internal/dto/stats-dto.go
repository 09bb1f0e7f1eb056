package dto

// Agrégats par statut renvoyés aux écrans. Chaque champ est toujours un
// nombre fini : les valeurs manquantes sont ramenées à zéro avant rendu.
// Les taux sont exprimés en pourcentage arrondi à une décimale.

// AlerteStatsDTO : répartition des alertes de sécurité.
type AlerteStatsDTO struct {
	Total          int     `json:"total"`
	Actives        int     `json:"actives"`
	Resolues       int     `json:"resolues"`
	Archivees      int     `json:"archivees"`
	TauxResolution float64 `json:"taux_resolution"`
}

// ObjetPerduStatsDTO : répartition des objets perdus.
type ObjetPerduStatsDTO struct {
	Total          int     `json:"total"`
	EnRecherche    int     `json:"en_recherche"`
	Retrouves      int     `json:"retrouves"`
	Clotures       int     `json:"clotures"`
	TauxResolution float64 `json:"taux_resolution"`
}

// ObjetRetrouveStatsDTO : répartition des objets retrouvés.
type ObjetRetrouveStatsDTO struct {
	Total           int     `json:"total"`
	EnAttente       int     `json:"en_attente"`
	Restitues       int     `json:"restitues"`
	Transferes      int     `json:"transferes"`
	TauxRestitution float64 `json:"taux_restitution"`
}

// ControleStatsDTO : répartition des contrôles routiers.
type ControleStatsDTO struct {
	Total          int     `json:"total"`
	Conformes      int     `json:"conformes"`
	AvecInfraction int     `json:"avec_infraction"`
	TauxConformite float64 `json:"taux_conformite"`
}

// InfractionStatsDTO : répartition des PV par statut de paiement.
type InfractionStatsDTO struct {
	Total        int     `json:"total"`
	Payees       int     `json:"payees"`
	Contestees   int     `json:"contestees"`
	Impayees     int     `json:"impayees"`
	TauxPaiement float64 `json:"taux_paiement"`
}
