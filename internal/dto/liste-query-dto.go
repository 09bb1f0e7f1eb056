package dto

// ListeQueryDTO porte les paramètres de requête communs aux écrans de
// listes. Les champs vides ou égaux aux sentinelles « Tous les ... » sont
// ignorés lors de l'assemblage des filtres.
type ListeQueryDTO struct {
	Periode   string `query:"periode" validate:"omitempty,cle_periode"`
	DateDebut string `query:"date_debut" validate:"omitempty,datetime=2006-01-02"`
	DateFin   string `query:"date_fin" validate:"omitempty,datetime=2006-01-02"`
	Statut    string `query:"statut"`
	Type      string `query:"type"`
	Recherche string `query:"recherche"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
}
