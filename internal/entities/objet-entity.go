package entities

import "time"

// ObjetPerdu : déclaration d'un objet perdu par un administré.
type ObjetPerdu struct {
	ID            uint64     `json:"id"`
	Nom           string     `json:"nom"`
	Description   string     `json:"description"`
	Categorie     string     `json:"categorie"`
	Statut        string     `json:"statut"`
	LieuPerte     string     `json:"lieu_perte"`
	Declarant     string     `json:"declarant"`
	TelephoneDecl string     `json:"telephone_declarant,omitempty"`
	Commissariat  string     `json:"commissariat_id"`
	DatePerte     *time.Time `json:"date_perte,omitempty"`
	CreatedAt     *time.Time `json:"created_at"`
}

// ObjetRetrouve : objet déposé au commissariat en attente de restitution.
type ObjetRetrouve struct {
	ID             uint64     `json:"id"`
	Nom            string     `json:"nom"`
	Description    string     `json:"description"`
	Categorie      string     `json:"categorie"`
	Statut         string     `json:"statut"`
	LieuDecouverte string     `json:"lieu_decouverte"`
	Commissariat   string     `json:"commissariat_id"`
	DateDecouverte *time.Time `json:"date_decouverte,omitempty"`
	CreatedAt      *time.Time `json:"created_at"`
}
